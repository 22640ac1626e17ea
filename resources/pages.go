package resources

import "github.com/jakeslee/wpapi/http"

const (
	PagesResource = "pages"
)

// Pages builds requests under /pages. A page is addressed by ID or by Path.
type Pages struct {
	http.BaseRequest
	pathState

	path string
}

func NewPages(options *http.RequestOptions) *Pages {
	p := &Pages{}

	p.Init(options).Bind(p.GenerateRequestURI)

	return p
}

func (p *Pages) clone() *Pages {
	c := *p
	c.Bind(c.GenerateRequestURI)

	return &c
}

// ID sets the page, or the comment / revision once an action has been chosen.
func (p *Pages) ID(id interface{}) *Pages {
	c := p.clone()
	c.setID(id)

	if c.action == "" {
		c.path = ""
	}

	return c
}

// Path addresses a page by its slug path, e.g. "about/team".
func (p *Pages) Path(path string) *Pages {
	c := p.clone()
	c.path = path
	c.id = ""

	return c
}

func (p *Pages) Comments() *Pages {
	c := p.clone()
	c.action = ActionComments

	return c
}

func (p *Pages) Revisions() *Pages {
	c := p.clone()
	c.action = ActionRevisions

	return c
}

func (p *Pages) GenerateRequestURI() string {
	target := p.id
	if p.path != "" {
		target = p.path
	}

	return joinURI(p.Endpoint(), PagesResource, target, p.action, p.actionID)
}
