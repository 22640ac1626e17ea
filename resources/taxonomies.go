package resources

import "github.com/jakeslee/wpapi/http"

const (
	TaxonomiesResource = "taxonomies"
	ActionTerms        = "terms"
)

// Taxonomies builds requests under /taxonomies. Only GET and HEAD are allowed.
type Taxonomies struct {
	http.BaseRequest
	pathState
}

func NewTaxonomies(options *http.RequestOptions) *Taxonomies {
	t := &Taxonomies{}

	t.Init(options).
		SetSupportedMethods(http.Get, http.Head).
		Bind(t.GenerateRequestURI)

	return t
}

func (t *Taxonomies) clone() *Taxonomies {
	c := *t
	c.Bind(c.GenerateRequestURI)

	return &c
}

// ID sets the taxonomy, or the term once Terms has been called.
func (t *Taxonomies) ID(id interface{}) *Taxonomies {
	c := t.clone()
	c.setID(id)

	return c
}

// Terms targets the terms collection of the taxonomy.
func (t *Taxonomies) Terms() *Taxonomies {
	c := t.clone()
	c.action = ActionTerms

	return c
}

func (t *Taxonomies) GenerateRequestURI() string {
	return joinURI(t.Endpoint(), append([]string{TaxonomiesResource}, t.segments()...)...)
}
