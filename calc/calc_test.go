package calc

import (
	"math"
	"testing"

	"github.com/seventv/hashparse/argparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cases := []struct {
		args []string
		want float64
	}{
		{nil, 0},
		{[]string{"add", "1", "2", "3"}, 6},
		{[]string{"+", "2", "2", "*", "3"}, 12},
		{[]string{"add", "10", "sub", "4", "1"}, 5},
		{[]string{"add", "9", "/", "3", "div", "2"}, 1.5},
		{[]string{"mul", "5"}, 0},
		{[]string{"add", "1", "add", "1", "add", "1"}, 3},
		{[]string{"add", "-", "4"}, -4},
	}

	c := New()
	for _, tc := range cases {
		got, err := c.Run(tc.args)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, got, tc.args)
	}
}

func TestRun_DivideByZero(t *testing.T) {
	got, err := New().Run([]string{"add", "1", "div", "0"})
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

func TestRun_Errors(t *testing.T) {
	c := New()

	_, err := c.Run([]string{"add", "one"})
	assert.EqualError(t, err, `add: "one" is not a number`)

	_, err = c.Run([]string{"pow", "2"})
	assert.ErrorIs(t, err, argparse.ErrUnrecognizedArgument)

	_, err = c.Run([]string{"add", "1", "--help"})
	assert.ErrorIs(t, err, argparse.ErrHelp)

	// state does not leak between runs
	got, err := c.Run([]string{"add", "2"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestUsage(t *testing.T) {
	usage := New().Usage()

	assert.Contains(t, usage, "calc: argparse example calculator program.")
	assert.Contains(t, usage, "add | + [99 optional values]")
	assert.Contains(t, usage, "div | / [99 optional values]")
}
