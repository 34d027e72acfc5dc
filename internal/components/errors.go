package components

import "errors"

var (
	ErrMissingCamera = errors.New("camera reference not set")
	ErrMissingBody   = errors.New("rigidbody not found")
)
