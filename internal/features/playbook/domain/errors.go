package domain

import "errors"

var (
	ErrMissingProduct          = errors.New("product is required")
	ErrMissingValueProposition = errors.New("value proposition is required")
	ErrInvalidTone             = errors.New("invalid tone")
	ErrInvalidStage            = errors.New("invalid stage")
	ErrPolisherDisabled        = errors.New("email polisher is not configured")
)
