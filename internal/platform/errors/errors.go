package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("action not available in current step")
	ErrStorage           = errors.New("storage error")
	ErrIO                = errors.New("io error")
)
