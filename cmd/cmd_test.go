package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	cmdErrors "github.com/seventv/hashparse/cmd/errors"
	"github.com/seventv/hashparse/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testManifest = `
name: myprog
description: An example program.
templates:
  - aliases: ["--say"]
    values: 1
    help: Print the value.
  - aliases: ["-c"]
    help: Count something.
    subcommands:
      - aliases: ["--add"]
        values: 2
`

func writeManifest(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestCalc(t *testing.T) {
	out, err := execute(t, "calc", "add", "2", "2", "mul", "3")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)

	out, err = execute(t, "calc", "+", "1.5", "/", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.5\n", out)
}

func TestCalc_Help(t *testing.T) {
	out, err := execute(t, "calc", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "calc: argparse example calculator program.")
	assert.Contains(t, out, "Arguments:")
}

func TestCalc_Invalid(t *testing.T) {
	_, err := execute(t, "calc", "pow", "2")
	assert.ErrorIs(t, err, cmdErrors.ErrParseFailed)
}

func TestCheck(t *testing.T) {
	path := writeManifest(t)

	out, err := execute(t, "check", "--term", "-f", path, "--", "--say", "hi", "-c", "--add", "1", "2")
	require.NoError(t, err)

	var report checkReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	assert.Equal(t, "myprog", report.Program)
	assert.Equal(t, []string{"--say", "hi", "-c", "--add", "1", "2"}, report.Args)
	require.Len(t, report.Matches, 3)
	assert.Equal(t, "--say", report.Matches[0].Alias)
	assert.Equal(t, []string{"hi"}, report.Matches[0].Values)
	assert.Equal(t, "--add", report.Matches[2].Alias)
	assert.Equal(t, 3, report.Matches[2].Position)
	assert.Equal(t, []string{"1", "2"}, report.Matches[2].Values)
}

func TestCheck_NoArguments(t *testing.T) {
	path := writeManifest(t)

	out, err := execute(t, "check", "--term", "-f", path)
	require.NoError(t, err)

	var report checkReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Empty(t, report.Matches)
}

func TestCheck_Errors(t *testing.T) {
	path := writeManifest(t)

	_, err := execute(t, "check", "--term", "-f", path, "--", "--add", "1", "2")
	assert.ErrorIs(t, err, cmdErrors.ErrParseFailed)

	_, err = execute(t, "check", "--term", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, manifest.ErrNotFound)
}

func TestCheck_Help(t *testing.T) {
	path := writeManifest(t)

	out, err := execute(t, "check", "--term", "-f", path, "--", "-c", "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "myprog: An example program.")
}

func TestUsage(t *testing.T) {
	path := writeManifest(t)

	out, err := execute(t, "usage", "-f", path)
	require.NoError(t, err)

	m, err := manifest.Load(path)
	require.NoError(t, err)
	p, err := m.Build()
	require.NoError(t, err)

	assert.Equal(t, p.Usage()+"\n", out)
}

func TestRoot_RequiresSubcommand(t *testing.T) {
	_, err := execute(t, "--term")
	assert.ErrorIs(t, err, cmdErrors.ErrSubcommandRequired)
}
