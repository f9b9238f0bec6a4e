package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrBadPrice   = errors.New("price must look like \"min-max\"")
)
