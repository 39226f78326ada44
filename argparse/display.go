package argparse

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
)

var (
	errorLabel = color.New(color.FgRed).Sprint
	expected   = color.New(color.FgGreen).Sprint
	received   = color.New(color.FgYellow).Sprint
)

// FormatError renders a parse or registration error for a terminal. Colour
// is dropped when stdout is not a terminal.
func FormatError(err error) string {
	var (
		dup     *DuplicateAliasError
		parent  *UnknownParentError
		unknown *UnrecognizedArgumentError
		context *OutOfContextError
		missing *MissingValuesError
	)

	var msg string
	switch {
	case errors.As(err, &missing):
		msg = fmt.Sprintf("In argument '%s', expected '%s' value/s, received '%s'.",
			errorLabel(missing.Alias), expected(missing.Expected), received(missing.Found))
	case errors.As(err, &context):
		msg = fmt.Sprintf("Out of context argument, because '%s' is a subcommand of '%s' and '%s' is not present in the command.",
			received(context.Alias), expected(context.Parent), expected(context.Parent))
	case errors.As(err, &unknown):
		msg = fmt.Sprintf("Unrecognized argument '%s' at position %s.",
			received(unknown.Token), expected(unknown.Position))
	case errors.As(err, &dup):
		msg = fmt.Sprintf("Alias '%s' is already registered.", received(dup.Alias))
	case errors.As(err, &parent):
		msg = fmt.Sprintf("Parent template '%s' does not exist.", received(parent.Parent))
	default:
		msg = err.Error()
	}

	return fmt.Sprintf("%s: %s", errorLabel("ERROR"), msg)
}
