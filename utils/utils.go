package utils

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile reads path, or stdin when path is "-".
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return []byte{}, nil
	}

	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func MergeRelativePath(wd string, path string) string {
	if path == "" || path == "-" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(wd, path)
}

// SplitArgs splits a typed argument line on whitespace. Quoting is not
// interpreted.
func SplitArgs(line string) []string {
	return strings.Fields(line)
}
