package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	data, err := ReadFile("")
	require.NoError(t, err)
	assert.Empty(t, data)

	path := filepath.Join(t.TempDir(), "hp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0644))

	data, err = ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: x\n", string(data))
}

func TestMergeRelativePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/work", "hp.yaml"), MergeRelativePath("/work", "hp.yaml"))
	assert.Equal(t, "/etc/hp.yaml", MergeRelativePath("/work", "/etc/hp.yaml"))
	assert.Equal(t, "-", MergeRelativePath("/work", "-"))
}

func TestSplitArgs(t *testing.T) {
	assert.Equal(t, []string{"-c", "--add", "2", "2"}, SplitArgs("  -c --add\t2 2 "))
	assert.Empty(t, SplitArgs("   "))
}
