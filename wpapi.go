// Package wpapi is a fluent client for the WordPress REST API.
//
//	wp := wpapi.NewClient(&wpapi.Options{Endpoint: "https://example.com/wp-json/"})
//	future, err := wp.Taxonomies().ID("category").Terms().Get(ctx)
package wpapi

import (
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/asaskevich/EventBus"
	"github.com/jakeslee/wpapi/http"
	"github.com/jakeslee/wpapi/resources"
	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTimeout = 30 * time.Second
)

func init() {
	logrus.SetFormatter(&nested.Formatter{
		HideKeys: true,
	})
}

type Options struct {
	Endpoint  string        `envconfig:"ENDPOINT" required:"true"`
	Username  string        `envconfig:"USERNAME"`
	Password  string        `envconfig:"PASSWORD"`
	RateLimit int           `envconfig:"RATE_LIMIT"` // requests per second, 0 means unlimited
	Timeout   time.Duration `envconfig:"TIMEOUT"`
	UserAgent string        `envconfig:"USER_AGENT"`

	// Transport replaces the resty based client, mostly for tests.
	Transport http.Transport `ignored:"true"`
}

// WP hands out request builders sharing one configuration and transport.
type WP struct {
	options        *Options
	requestOptions *http.RequestOptions
	bus            EventBus.Bus
}

func NewClient(options *Options) *WP {
	o := &Options{
		Timeout:   DefaultTimeout,
		UserAgent: http.DefaultUserAgent,
	}

	if options != nil {
		_ = copier.CopyWithOption(o, options, copier.Option{
			IgnoreEmpty: true,
		})
	}

	transport := o.Transport
	if transport == nil {
		transport = http.NewClient(&http.ClientOptions{
			Timeout:   o.Timeout,
			UserAgent: o.UserAgent,
			RateLimit: o.RateLimit,
		})
	}

	bus := EventBus.New()

	wp := &WP{
		options: o,
		bus:     bus,
		requestOptions: &http.RequestOptions{
			Endpoint:  o.Endpoint,
			Username:  o.Username,
			Password:  o.Password,
			Transport: transport,
			Bus:       bus,
		},
	}

	logrus.Infof("wpapi client for %s, rate limit: %d/s, timeout: %s", o.Endpoint, o.RateLimit, o.Timeout)

	return wp
}

func (w *WP) Options() *Options {
	return w.options
}

// Subscribe registers fn for every settled request made through this client.
func (w *WP) Subscribe(fn func(event *http.Event)) error {
	return w.bus.Subscribe(http.EventRequestSettled, fn)
}

func (w *WP) Unsubscribe(fn func(event *http.Event)) error {
	return w.bus.Unsubscribe(http.EventRequestSettled, fn)
}

// Root targets the endpoint itself, the API index.
func (w *WP) Root() *http.BaseRequest {
	return http.NewBaseRequest(w.requestOptions)
}

func (w *WP) Taxonomies() *resources.Taxonomies {
	return resources.NewTaxonomies(w.requestOptions)
}

func (w *WP) Users() *resources.Users {
	return resources.NewUsers(w.requestOptions)
}

func (w *WP) Posts() *resources.Posts {
	return resources.NewPosts(w.requestOptions)
}

func (w *WP) Pages() *resources.Pages {
	return resources.NewPages(w.requestOptions)
}

func (w *WP) Media() *resources.Media {
	return resources.NewMedia(w.requestOptions)
}

func (w *WP) Types() *resources.Types {
	return resources.NewTypes(w.requestOptions)
}
