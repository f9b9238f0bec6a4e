package catalog

import "errors"

// Sentinel kinds for catalog fetch errors.
var (
	ErrMissingCredentials = errors.New("missing catalog credentials")
	ErrUpstreamStatus     = errors.New("upstream request failed")
	ErrDecodeResponse     = errors.New("decode catalog response failed")
)
