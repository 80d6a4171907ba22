package errs

import "errors"

var (
	ErrValidateBadRequest error = errors.New("struct validation error")
)

// APIError carries the error message returned by the FlatPeak API
// verbatim. The API signals failures with a JSON body whose `object`
// field equals "error".
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
