package http

import (
	"fmt"
	"strings"
)

// UnsupportedMethodError is returned by a verb method before any request is made
// when the builder does not permit that verb.
type UnsupportedMethodError struct {
	Method    Method
	Supported []Method
}

func (e *UnsupportedMethodError) Error() string {
	names := make([]string, 0, len(e.Supported))
	for _, m := range e.Supported {
		names = append(names, strings.ToLower(string(m)))
	}

	return fmt.Sprintf("[UnsupportedMethod] %s is not supported, supported methods: %s",
		strings.ToLower(string(e.Method)), strings.Join(names, ", "))
}

// ResponseError is set on a Response whose status code is not 2xx.
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("[WPAPIError] Status=%d, Code=%s, Message=%s", e.StatusCode, e.Code, e.Message)
}

func NewResponseError(statusCode int, code, message string) error {
	return &ResponseError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}
