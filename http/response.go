package http

import (
	"context"
	"encoding/json"
	gohttp "net/http"
)

// Response is what a Transport returns for a completed exchange.
type Response struct {
	StatusCode int
	Headers    gohttp.Header
	Body       json.RawMessage
	Error      error
}

// BaseResponse is the error envelope of the WordPress REST API.
type BaseResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Callback is an optional completion hook for a verb method.
type Callback[T any] func(err error, result T)

// Future settles exactly once with the transformed result of one request.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

func (f *Future[T]) settle(value T, err error) {
	f.value = value
	f.err = err

	close(f.done)
}

// Done is closed when the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// Then runs fn in its own goroutine once the future settles.
func (f *Future[T]) Then(fn func(result T, err error)) *Future[T] {
	go func() {
		<-f.done
		fn(f.value, f.err)
	}()

	return f
}

// Decode awaits a body future and unmarshals it into out.
func Decode(ctx context.Context, f *Future[json.RawMessage], out interface{}) error {
	body, err := f.Await(ctx)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, out)
}
