package dispatch

import "errors"

// ErrInvalidBatch indicates the invocation envelope failed validation.
// Nothing is processed when it is returned.
var ErrInvalidBatch = errors.New("invalid batch")
