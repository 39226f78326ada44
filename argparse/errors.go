package argparse

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateAlias       = errors.New("duplicate alias")
	ErrUnknownParent        = errors.New("unknown parent template")
	ErrUnrecognizedArgument = errors.New("unrecognized argument")
	ErrOutOfContext         = errors.New("out of context argument")
	ErrMissingValues        = errors.New("missing values")

	ErrNoAliases     = errors.New("template must have at least one alias")
	ErrEmptyAlias    = errors.New("alias cannot be empty")
	ErrNegativeArity = errors.New("number of values cannot be negative")

	// ErrHelp is returned by Parse when --help or -h was found. The scan stops
	// at that token and no result is produced.
	ErrHelp = errors.New("help requested")
)

// DuplicateAliasError is returned at registration when an alias is already
// indexed by another template.
type DuplicateAliasError struct {
	Alias    string
	Existing ID
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %s already exists", e.Alias)
}

func (e *DuplicateAliasError) Unwrap() error {
	return ErrDuplicateAlias
}

type UnknownParentError struct {
	Parent ID
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("parent template %d does not exist", e.Parent)
}

func (e *UnknownParentError) Unwrap() error {
	return ErrUnknownParent
}

// UnrecognizedArgumentError is returned when a token matches no alias and was
// not consumed as a value of a preceding flag.
type UnrecognizedArgumentError struct {
	Token    string
	Position int
}

func (e *UnrecognizedArgumentError) Error() string {
	return fmt.Sprintf("unrecognized argument %s at position %d", e.Token, e.Position)
}

func (e *UnrecognizedArgumentError) Unwrap() error {
	return ErrUnrecognizedArgument
}

// OutOfContextError is returned when a subcommand appears while its parent is
// not part of the active context.
type OutOfContextError struct {
	Alias    string
	Position int
	Parent   string
}

func (e *OutOfContextError) Error() string {
	return fmt.Sprintf("%s is a subcommand of %s and %s is not present in the command", e.Alias, e.Parent, e.Parent)
}

func (e *OutOfContextError) Unwrap() error {
	return ErrOutOfContext
}

type MissingValuesError struct {
	Alias    string
	Position int
	Expected int
	Found    int
}

func (e *MissingValuesError) Error() string {
	return fmt.Sprintf("in argument %s, expected %d value/s, received %d", e.Alias, e.Expected, e.Found)
}

func (e *MissingValuesError) Unwrap() error {
	return ErrMissingValues
}
