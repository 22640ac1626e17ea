package resources

import "github.com/jakeslee/wpapi/http"

const (
	UsersResource = "users"
	ActionMe      = "me"
)

// Users builds requests under /users.
type Users struct {
	http.BaseRequest

	id string
	me bool
}

func NewUsers(options *http.RequestOptions) *Users {
	u := &Users{}

	u.Init(options).
		SetSupportedMethods(http.Get, http.Head, http.Post).
		Bind(u.GenerateRequestURI)

	return u
}

func (u *Users) clone() *Users {
	c := *u
	c.Bind(c.GenerateRequestURI)

	return &c
}

// ID targets one user. It replaces a previous Me.
func (u *Users) ID(id interface{}) *Users {
	c := u.clone()
	c.id = formatID(id)
	c.me = false

	return c
}

// Me targets the authenticated user. It replaces a previous ID.
func (u *Users) Me() *Users {
	c := u.clone()
	c.id = ""
	c.me = true

	return c
}

func (u *Users) GenerateRequestURI() string {
	if u.me {
		return joinURI(u.Endpoint(), UsersResource, ActionMe)
	}

	return joinURI(u.Endpoint(), UsersResource, u.id)
}
