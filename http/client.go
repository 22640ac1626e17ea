package http

import (
	"context"
	"encoding/json"
	gohttp "net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultUserAgent = "wpapi-go/1.0"
)

// Call is a fully shaped request handed to a Transport.
type Call struct {
	Method  Method
	Url     string
	Headers map[string]string
	Body    interface{}
}

// Transport performs the network side of a request.
type Transport interface {
	Do(ctx context.Context, call *Call) (*Response, error)
}

type ClientOptions struct {
	Timeout   time.Duration
	UserAgent string
	RateLimit int // requests per second, 0 means unlimited
}

// Client is the default Transport, backed by resty.
type Client struct {
	client  *resty.Client
	limiter *rate.Limiter
}

func NewClient(options *ClientOptions) *Client {
	if options == nil {
		options = &ClientOptions{}
	}

	client := resty.New()

	// no retries at this layer, a failed call is reported as is
	client.SetRetryCount(0)

	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client.SetHeader("user-agent", userAgent)

	if options.Timeout > 0 {
		client.SetTimeout(options.Timeout)
	}

	c := &Client{
		client: client,
	}

	if options.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(options.RateLimit), options.RateLimit)
	}

	return c
}

func (c *Client) Do(ctx context.Context, call *Call) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	r := c.client.R().
		SetContext(ctx).
		SetHeader("accept", "application/json").
		SetHeaders(call.Headers)

	if call.Body != nil {
		r.SetHeader("content-type", "application/json").SetBody(call.Body)
	}

	resp, err := r.Execute(string(call.Method), call.Url)

	if err != nil {
		return nil, err
	}

	return parseFromHTTPResponse(resp.StatusCode(), resp.Header(), resp.Body()), nil
}

// parseFromHTTPResponse copies a raw response into a Response, attaching a
// ResponseError for non-2xx statuses.
func parseFromHTTPResponse(statusCode int, headers gohttp.Header, body []byte) *Response {
	response := &Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       json.RawMessage(body),
	}

	if statusCode >= 200 && statusCode < 300 {
		return response
	}

	var base BaseResponse

	// WordPress error bodies are {"code": "...", "message": "...", "data": {...}}
	if err := json.Unmarshal(body, &base); err != nil || base.Code == "" {
		base.Code = "ClientError.UnexpectedStatus"
		base.Message = gohttp.StatusText(statusCode)
	}

	response.Error = NewResponseError(statusCode, base.Code, base.Message)

	return response
}
