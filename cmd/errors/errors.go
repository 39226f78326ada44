package errors

import "errors"

var (
	ErrSubcommandRequired = errors.New("you must provide a subcommand")
	ErrParseFailed        = errors.New("arguments did not parse")
)
