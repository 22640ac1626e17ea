package resources

import "github.com/jakeslee/wpapi/http"

const (
	PostsResource   = "posts"
	ActionComments  = "comments"
	ActionRevisions = "revisions"
	ActionStatuses  = "statuses"
	ActionTypes     = "types"
)

// Posts builds requests under /posts.
type Posts struct {
	http.BaseRequest
	pathState
}

func NewPosts(options *http.RequestOptions) *Posts {
	p := &Posts{}

	p.Init(options).Bind(p.GenerateRequestURI)

	return p
}

func (p *Posts) clone() *Posts {
	c := *p
	c.Bind(c.GenerateRequestURI)

	return &c
}

// ID sets the post, or the comment / revision once an action has been chosen.
func (p *Posts) ID(id interface{}) *Posts {
	c := p.clone()
	c.setID(id)

	return c
}

func (p *Posts) Comments() *Posts {
	return p.withAction(ActionComments)
}

func (p *Posts) Revisions() *Posts {
	return p.withAction(ActionRevisions)
}

// Statuses lists the post statuses. Call it without an ID.
func (p *Posts) Statuses() *Posts {
	return p.withAction(ActionStatuses)
}

// Types lists the post types. Call it without an ID.
func (p *Posts) Types() *Posts {
	return p.withAction(ActionTypes)
}

func (p *Posts) withAction(action string) *Posts {
	c := p.clone()
	c.action = action

	return c
}

func (p *Posts) GenerateRequestURI() string {
	return joinURI(p.Endpoint(), append([]string{PostsResource}, p.segments()...)...)
}
