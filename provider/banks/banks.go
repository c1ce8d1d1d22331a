package banks

import "errors"

var (
	errMissingAPIKey  = errors.New("missing API key")
	errNotImplemented = errors.New("response parsing not implemented")
)
