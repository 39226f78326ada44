package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"github.com/seventv/hashparse/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Out is where log lines end up. On a terminal it is a live writer so that a
// line ending in "\r\n" can be replaced by the next one.
var Out io.Writer

var (
	debug        bool
	previousLine = struct {
		Data       []byte
		WasRewrite bool
	}{}
)

type writer struct {
	out *uilive.Writer
}

func (w *writer) Write(msg []byte) (int, error) {
	defer w.out.Flush()

	if len(msg) > 2 && msg[len(msg)-2] == '\r' {
		msg[len(msg)-2] = '\n'
		msg = msg[:len(msg)-1]

		previousLine.Data = msg
		previousLine.WasRewrite = true

		return w.out.Write(msg)
	}

	previousLine.Data = nil
	previousLine.WasRewrite = false

	return w.out.Bypass().Write(msg)
}

// Rewrite pins the last rewritable line so the next log line does not
// replace it.
func Rewrite() {
	if len(previousLine.Data) != 0 && previousLine.WasRewrite {
		_, _ = Out.Write(previousLine.Data)
		previousLine.WasRewrite = false
	}
}

func init() {
	out := color.Output
	if constants.InTerm() {
		uilive.Out = out
		out = &writer{out: uilive.New()}
	}

	setup(out, false)
}

func setup(out io.Writer, dbg bool) {
	Out = out
	debug = dbg

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000")
	cfg.ConsoleSeparator = " "
	cfg.StacktraceKey = ""
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if dbg {
		lvl = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.CallerKey = ""
		cfg.LevelKey = ""
		cfg.TimeKey = ""
	}

	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(out),
		lvl,
	))

	zap.ReplaceGlobals(logger)
}

// SetDebug switches the global logger to debug level, which also enables
// the parse engine's match tracing.
func SetDebug(dbg bool) {
	setup(Out, dbg)
}

// SetOutput redirects the global logger, keeping the current level.
func SetOutput(out io.Writer) {
	setup(out, debug)
}

var marker = color.New(color.Bold, color.FgBlack).Sprint

func Debugf(format string, args ...any) {
	zap.S().Debugf("%s %s", marker(":"), color.MagentaString(format, args...))
}

func Infof(format string, args ...any) {
	zap.S().Infof("%s %s", marker(">"), color.WhiteString(format, args...))
}

func Warnf(format string, args ...any) {
	zap.S().Warnf("%s %s", marker("->"), color.YellowString(format, args...))
}

// Error logs pre-formatted text, for example the output of
// argparse.FormatError, without recolouring it.
func Error(args ...any) {
	zap.S().Errorf("%s %s", marker("=>"), fmt.Sprint(args...))
}

func Errorf(format string, args ...any) {
	zap.S().Errorf("%s %s", marker("=>"), color.RedString(format, args...))
}
