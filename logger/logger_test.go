package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLevels(t *testing.T) {
	prevColor := color.NoColor
	color.NoColor = true
	prevOut := Out
	t.Cleanup(func() {
		color.NoColor = prevColor
		setup(prevOut, false)
	})

	buf := &bytes.Buffer{}
	SetOutput(buf)

	Infof("parsed %d arguments", 3)
	Debugf("hidden")
	assert.Equal(t, "> parsed 3 arguments\n", buf.String())

	buf.Reset()
	SetDebug(true)
	Debugf("matched %s", "--say")
	assert.Contains(t, buf.String(), ": matched --say")
	assert.Contains(t, buf.String(), "DEBUG")

	buf.Reset()
	zap.S().Debugf("engine trace")
	assert.Contains(t, buf.String(), "engine trace")
}
