package client

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericErrorMessage is shown when the server gives no usable message.
const GenericErrorMessage = "Something went wrong. Please try again."

// ErrMalformedResponse means the server answered with a body that does not
// match the expected envelope or payload shape.
var ErrMalformedResponse = errors.New("malformed response from server")

// APIError is a request the server rejected.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
	TraceID string
}

func (e *APIError) Error() string {
	if e.TraceID != "" {
		return fmt.Sprintf("%s (status %d, trace %s)", e.Message, e.Status, e.TraceID)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

func (e *APIError) Forbidden() bool {
	return e.Status == http.StatusForbidden
}

func (e *APIError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// AsAPIError unwraps err into an *APIError when it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
