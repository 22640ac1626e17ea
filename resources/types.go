package resources

import "github.com/jakeslee/wpapi/http"

const (
	TypesResource = "types"
)

// Types builds read-only requests under /types.
type Types struct {
	http.BaseRequest

	name string
}

func NewTypes(options *http.RequestOptions) *Types {
	t := &Types{}

	t.Init(options).
		SetSupportedMethods(http.Get, http.Head).
		Bind(t.GenerateRequestURI)

	return t
}

// Type targets a single post type, e.g. "page".
func (t *Types) Type(name string) *Types {
	c := *t
	c.name = name
	c.Bind(c.GenerateRequestURI)

	return &c
}

func (t *Types) GenerateRequestURI() string {
	return joinURI(t.Endpoint(), TypesResource, t.name)
}
