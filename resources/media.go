package resources

import "github.com/jakeslee/wpapi/http"

const (
	MediaResource = "media"
)

// Media builds requests under /media.
type Media struct {
	http.BaseRequest

	id string
}

func NewMedia(options *http.RequestOptions) *Media {
	m := &Media{}

	m.Init(options).Bind(m.GenerateRequestURI)

	return m
}

func (m *Media) ID(id interface{}) *Media {
	c := *m
	c.id = formatID(id)
	c.Bind(c.GenerateRequestURI)

	return &c
}

func (m *Media) GenerateRequestURI() string {
	return joinURI(m.Endpoint(), MediaResource, m.id)
}
