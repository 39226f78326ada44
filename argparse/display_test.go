package argparse

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestFormatError(t *testing.T) {
	noColor(t)

	cases := []struct {
		err  error
		want string
	}{
		{
			err:  &MissingValuesError{Alias: "--say", Expected: 1, Found: 0},
			want: "ERROR: In argument '--say', expected '1' value/s, received '0'.",
		},
		{
			err:  &OutOfContextError{Alias: "--add", Parent: "-c"},
			want: "ERROR: Out of context argument, because '--add' is a subcommand of '-c' and '-c' is not present in the command.",
		},
		{
			err:  &UnrecognizedArgumentError{Token: "foo", Position: 3},
			want: "ERROR: Unrecognized argument 'foo' at position 3.",
		},
		{
			err:  fmt.Errorf("templates: %w", &DuplicateAliasError{Alias: "-n"}),
			want: "ERROR: Alias '-n' is already registered.",
		},
		{
			err:  &UnknownParentError{Parent: 7},
			want: "ERROR: Parent template '7' does not exist.",
		},
		{
			err:  errors.New("boom"),
			want: "ERROR: boom",
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatError(c.err))
	}
}

func withExit(t *testing.T) *int {
	code := -1
	prev := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = prev })
	return &code
}

func TestParseOrExit(t *testing.T) {
	noColor(t)

	newParser := func() (*Parser, *bytes.Buffer, *bytes.Buffer) {
		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
		p := NewParser("prog", "test program").SetOutput(out, errOut)
		_, err := p.Add("--say", 1, "Say something.")
		require.NoError(t, err)
		return p, out, errOut
	}

	t.Run("success", func(t *testing.T) {
		code := withExit(t)
		p, out, errOut := newParser()

		res := p.ParseOrExit([]string{"--say", "hi"})
		require.NotNil(t, res)
		assert.Equal(t, []string{"hi"}, res.Values("--say"))
		assert.Equal(t, -1, *code)
		assert.Empty(t, out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("help", func(t *testing.T) {
		code := withExit(t)
		p, out, _ := newParser()

		res := p.ParseOrExit([]string{"--help"})
		assert.Nil(t, res)
		assert.Equal(t, 0, *code)
		assert.Equal(t, p.Usage()+"\n", out.String())
	})

	t.Run("error", func(t *testing.T) {
		code := withExit(t)
		p, _, errOut := newParser()

		res := p.ParseOrExit([]string{"--say"})
		assert.Nil(t, res)
		assert.Equal(t, 1, *code)
		assert.Equal(t, "ERROR: In argument '--say', expected '1' value/s, received '0'.\n", errOut.String())
	})
}
