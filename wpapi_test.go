package wpapi

import (
	"context"
	gohttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/jakeslee/wpapi/http"
	"github.com/stretchr/testify/suite"
)

func TestWP(t *testing.T) {
	suite.Run(t, new(WPSuite))
}

type WPSuite struct {
	suite.Suite

	hdl gohttp.HandlerFunc
	srv *httptest.Server
	wp  *WP
}

func (s *WPSuite) SetupTest() {
	s.srv = httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) { s.hdl(w, r) }))
	s.wp = NewClient(&Options{
		Endpoint: s.srv.URL + "/wp-json/",
		Username: "admin",
		Password: "secret",
	})
}

func (s *WPSuite) TearDownTest() {
	s.srv.Close()
}

func (s *WPSuite) TestDefaults() {
	wp := NewClient(&Options{Endpoint: "/wp-json/"})

	s.Equal("/wp-json/", wp.Options().Endpoint)
	s.Equal(DefaultTimeout, wp.Options().Timeout)
	s.Equal(http.DefaultUserAgent, wp.Options().UserAgent)
	s.Equal("/wp-json/", wp.Root().GenerateRequestURI())

	s.Equal("", NewClient(nil).Options().Endpoint)
}

func (s *WPSuite) TestResourceFactories() {
	wp := NewClient(&Options{Endpoint: "/wp-json/"})

	s.Equal("/wp-json/taxonomies", wp.Taxonomies().GenerateRequestURI())
	s.Equal("/wp-json/users/me", wp.Users().Me().GenerateRequestURI())
	s.Equal("/wp-json/posts/1", wp.Posts().ID(1).GenerateRequestURI())
	s.Equal("/wp-json/pages/about", wp.Pages().Path("about").GenerateRequestURI())
	s.Equal("/wp-json/media", wp.Media().GenerateRequestURI())
	s.Equal("/wp-json/types/post", wp.Types().Type("post").GenerateRequestURI())
}

func (s *WPSuite) TestTermsRequest() {
	s.hdl = func(w gohttp.ResponseWriter, r *gohttp.Request) {
		s.Equal(gohttp.MethodGet, r.Method)
		s.Equal("/wp-json/taxonomies/category/terms/1337", r.URL.Path)
		_, _ = w.Write([]byte(`{"ID":1337,"name":"News"}`))
	}

	ctx := context.Background()

	future, err := s.wp.Taxonomies().ID("category").Terms().ID(1337).Get(ctx)
	s.Require().NoError(err)

	var term struct {
		ID   int    `json:"ID"`
		Name string `json:"name"`
	}

	s.Require().NoError(http.Decode(ctx, future, &term))
	s.Equal(1337, term.ID)
	s.Equal("News", term.Name)
}

func (s *WPSuite) TestCreateUser() {
	s.hdl = func(w gohttp.ResponseWriter, r *gohttp.Request) {
		s.Equal(gohttp.MethodPost, r.Method)
		s.Equal("/wp-json/users", r.URL.Path)

		user, _, ok := r.BasicAuth()
		s.True(ok)
		s.Equal("admin", user)

		w.WriteHeader(gohttp.StatusCreated)
		_, _ = w.Write([]byte(`{"ID":2}`))
	}

	ctx := context.Background()

	future, err := s.wp.Users().Post(ctx, map[string]string{"username": "editor"})
	s.Require().NoError(err)

	body, err := future.Await(ctx)
	s.Require().NoError(err)
	s.JSONEq(`{"ID":2}`, string(body))
}

func (s *WPSuite) TestSubscribe() {
	s.hdl = func(w gohttp.ResponseWriter, r *gohttp.Request) {
		w.Header().Set("X-WP-Total", "10")
	}

	events := make(chan *http.Event, 1)
	handler := func(event *http.Event) {
		events <- event
	}

	s.Require().NoError(s.wp.Subscribe(handler))

	future, err := s.wp.Posts().Head(context.Background())
	s.Require().NoError(err)

	headers, err := future.Await(context.Background())
	s.Require().NoError(err)
	s.Equal("10", headers.Get("X-WP-Total"))

	event := <-events
	s.Equal(http.Head, event.Method)
	s.Equal(s.srv.URL+"/wp-json/posts", event.URI)
	s.NoError(event.Err)

	s.NoError(s.wp.Unsubscribe(handler))
}

func (s *WPSuite) TestUnsupportedMethodIsSynchronous() {
	called := false
	s.hdl = func(w gohttp.ResponseWriter, r *gohttp.Request) {
		called = true
	}

	_, err := s.wp.Taxonomies().Delete(context.Background())

	var unsupported *http.UnsupportedMethodError
	s.Require().ErrorAs(err, &unsupported)
	s.Contains(err.Error(), "get, head")
	s.False(called)
}
