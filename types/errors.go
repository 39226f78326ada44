package types

import "errors"

var (
	ErrInvalidAlias           = errors.New("must not contain whitespace")
	ErrInvalidArity           = errors.New("must be zero or greater")
	ErrValidtorStopValidation = errors.New("stop validation")
)
