package errs

import "errors"

var (
	ErrMissingPublishableKey error = errors.New("publishable key is not set")
	ErrMissingSecretKey      error = errors.New("secret key is not set")
	ErrMissingHost           error = errors.New("host is not set")
)
