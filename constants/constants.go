package constants

import "os"

const (
	DefaultManifest = "hp.yaml"
	ProgramName     = "hp"
)

var inTerm = func() bool {
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}()

var stdinUsed = func() bool {
	if fi, err := os.Stdin.Stat(); err != nil {
		return false
	} else if fi.Mode()&os.ModeNamedPipe != 0 {
		return true
	} else {
		return false
	}
}()

// InTerm reports whether stdout is a terminal.
func InTerm() bool {
	return inTerm
}

// StdinUsed reports whether something is piped into stdin.
func StdinUsed() bool {
	return stdinUsed
}
