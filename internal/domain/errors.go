package domain

import "errors"

// Domain errors
var (
	ErrNoFileSelected    = errors.New("no file selected")
	ErrOperationInFlight = errors.New("operation already in progress")
)
