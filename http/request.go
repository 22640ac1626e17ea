package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	gohttp "net/http"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/sirupsen/logrus"
)

type Method string

const (
	Get     Method = "GET"
	Post    Method = "POST"
	Put     Method = "PUT"
	Delete  Method = "DELETE"
	Patch   Method = "PATCH"
	Head    Method = "HEAD"
	Options Method = "OPTIONS"
)

// AllMethods is the verb set a BaseRequest permits until narrowed.
var AllMethods = []Method{Head, Get, Put, Post, Patch, Delete}

var defaultTransport Transport = NewClient(nil)

// RequestOptions is the configuration shared by every builder created from it.
type RequestOptions struct {
	Endpoint string
	Username string
	Password string

	Transport Transport
	Bus       EventBus.Bus
}

// Request is implemented by BaseRequest and every resource builder embedding it.
type Request interface {
	GenerateRequestURI() string
	CheckMethodSupport(method Method) error
	SupportedMethods() []Method
}

type BaseRequest struct {
	options          *RequestOptions
	supportedMethods []Method
	generator        func() string
}

func NewBaseRequest(options *RequestOptions) *BaseRequest {
	return new(BaseRequest).Init(options)
}

func (receiver *BaseRequest) Init(options *RequestOptions) *BaseRequest {
	if options == nil {
		options = &RequestOptions{}
	}

	receiver.options = options
	receiver.supportedMethods = AllMethods

	return receiver
}

// SetSupportedMethods narrows the verbs this request accepts.
func (receiver *BaseRequest) SetSupportedMethods(methods ...Method) *BaseRequest {
	receiver.supportedMethods = methods

	return receiver
}

// Bind routes GenerateRequestURI, and therefore every verb, to generator.
func (receiver *BaseRequest) Bind(generator func() string) *BaseRequest {
	receiver.generator = generator

	return receiver
}

func (receiver *BaseRequest) Options() *RequestOptions {
	return receiver.options
}

func (receiver *BaseRequest) Endpoint() string {
	return receiver.options.Endpoint
}

// GenerateRequestURI returns the configured endpoint, unless a resource builder bound its own generator.
func (receiver *BaseRequest) GenerateRequestURI() string {
	if receiver.generator != nil {
		return receiver.generator()
	}

	return receiver.options.Endpoint
}

func (receiver *BaseRequest) SupportedMethods() []Method {
	methods := make([]Method, len(receiver.supportedMethods))
	copy(methods, receiver.supportedMethods)

	return methods
}

func (receiver *BaseRequest) CheckMethodSupport(method Method) error {
	for _, supported := range receiver.supportedMethods {
		if strings.EqualFold(string(supported), string(method)) {
			return nil
		}
	}

	return &UnsupportedMethodError{
		Method:    method,
		Supported: receiver.SupportedMethods(),
	}
}

// Get requests the resource and resolves to the response body.
func (receiver *BaseRequest) Get(ctx context.Context, callbacks ...Callback[json.RawMessage]) (*Future[json.RawMessage], error) {
	if err := receiver.CheckMethodSupport(Get); err != nil {
		return nil, err
	}

	call := &Call{
		Method: Get,
		Url:    receiver.GenerateRequestURI(),
	}

	return dispatch(ctx, receiver, call, bodyOf, callbacks), nil
}

// Head requests the resource and resolves to the response headers.
func (receiver *BaseRequest) Head(ctx context.Context, callbacks ...Callback[gohttp.Header]) (*Future[gohttp.Header], error) {
	if err := receiver.CheckMethodSupport(Head); err != nil {
		return nil, err
	}

	call := &Call{
		Method: Head,
		Url:    receiver.GenerateRequestURI(),
	}

	return dispatch(ctx, receiver, call, headersOf, callbacks), nil
}

// Post sends data with basic auth; nil data is sent as an empty object.
func (receiver *BaseRequest) Post(ctx context.Context, data interface{}, callbacks ...Callback[json.RawMessage]) (*Future[json.RawMessage], error) {
	return receiver.send(ctx, Post, data, callbacks)
}

// Put sends data with basic auth; nil data is sent as an empty object.
func (receiver *BaseRequest) Put(ctx context.Context, data interface{}, callbacks ...Callback[json.RawMessage]) (*Future[json.RawMessage], error) {
	return receiver.send(ctx, Put, data, callbacks)
}

func (receiver *BaseRequest) Delete(ctx context.Context, callbacks ...Callback[json.RawMessage]) (*Future[json.RawMessage], error) {
	if err := receiver.CheckMethodSupport(Delete); err != nil {
		return nil, err
	}

	call := &Call{
		Method:  Delete,
		Url:     receiver.GenerateRequestURI(),
		Headers: receiver.authHeaders(),
	}

	return dispatch(ctx, receiver, call, bodyOf, callbacks), nil
}

// Patch only checks method support. The API leaves PATCH semantics undefined, so
// no request is made and callbacks are never invoked.
func (receiver *BaseRequest) Patch(_ context.Context, _ interface{}, _ ...Callback[json.RawMessage]) error {
	return receiver.CheckMethodSupport(Patch)
}

// Then is shorthand for Get followed by Future.Then.
func (receiver *BaseRequest) Then(ctx context.Context, fn func(body json.RawMessage, err error)) (*Future[json.RawMessage], error) {
	future, err := receiver.Get(ctx)
	if err != nil {
		return nil, err
	}

	return future.Then(fn), nil
}

func (receiver *BaseRequest) send(ctx context.Context, method Method, data interface{}, callbacks []Callback[json.RawMessage]) (*Future[json.RawMessage], error) {
	if err := receiver.CheckMethodSupport(method); err != nil {
		return nil, err
	}

	if data == nil {
		data = map[string]interface{}{}
	}

	call := &Call{
		Method:  method,
		Url:     receiver.GenerateRequestURI(),
		Headers: receiver.authHeaders(),
		Body:    data,
	}

	return dispatch(ctx, receiver, call, bodyOf, callbacks), nil
}

func (receiver *BaseRequest) authHeaders() map[string]string {
	credential := receiver.options.Username + ":" + receiver.options.Password

	return map[string]string{
		"authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(credential)),
	}
}

func (receiver *BaseRequest) transport() Transport {
	if receiver.options.Transport != nil {
		return receiver.options.Transport
	}

	return defaultTransport
}

func bodyOf(response *Response) json.RawMessage {
	return response.Body
}

func headersOf(response *Response) gohttp.Header {
	return response.Headers
}

// dispatch runs call on its own goroutine. Callbacks see the same value and
// error the future settles with, and all of them return before it settles.
func dispatch[T any](ctx context.Context, r *BaseRequest, call *Call, transform func(*Response) T, callbacks []Callback[T]) *Future[T] {
	future := newFuture[T]()
	transport := r.transport()
	bus := r.options.Bus

	logrus.Debugf("dispatch %s %s", call.Method, call.Url)

	go func() {
		var result T

		response, err := transport.Do(ctx, call)

		if response != nil {
			result = transform(response)

			if err == nil {
				err = response.Error
			}
		}

		if err != nil {
			logrus.Warnf("%s %s error: %s", call.Method, call.Url, err)
		}

		for _, callback := range callbacks {
			if callback != nil {
				callback(err, result)
			}
		}

		future.settle(result, err)

		publish(bus, &Event{
			Method: call.Method,
			URI:    call.Url,
			Err:    err,
		})
	}()

	return future
}
