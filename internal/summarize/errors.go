package summarize

import "errors"

// DefaultErrorMessage is used when a failed response carries no message.
const DefaultErrorMessage = "Something went wrong, please try again."

var (
	ErrNoFile  = errors.New("no audio file")
	ErrTimeout = errors.New("the request took too long, please try again")
)

// APIError is a non-2xx response from the endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the server message alone so it can be shown to the user as is.
func (e *APIError) Error() string {
	return e.Message
}
