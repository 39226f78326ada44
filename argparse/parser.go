package argparse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var exit = os.Exit

// Parser is a Registry together with the program metadata shown by --help.
type Parser struct {
	*Registry

	name        string
	description string
	author      string
	usage       string
	help        string

	out    io.Writer
	errOut io.Writer
}

// NewParser creates a parser. An empty name defaults to the executable name.
func NewParser(name string, description string) *Parser {
	if name == "" {
		if exe, err := os.Executable(); err == nil {
			name = filepath.Base(exe)
		}
	}

	return &Parser{
		Registry:    NewRegistry(),
		name:        name,
		description: description,
		out:         os.Stdout,
		errOut:      os.Stderr,
	}
}

func (p *Parser) Name() string {
	return p.name
}

func (p *Parser) SetAuthor(author string) *Parser {
	p.author = author
	return p
}

// SetUsage replaces the generated usage line of the help text.
func (p *Parser) SetUsage(usage string) *Parser {
	p.usage = usage
	return p
}

// SetHelp replaces the whole generated help text.
func (p *Parser) SetHelp(help string) *Parser {
	p.help = help
	return p
}

// SetOutput sets where ParseOrExit writes help and errors.
func (p *Parser) SetOutput(out io.Writer, errOut io.Writer) *Parser {
	p.out = out
	p.errOut = errOut
	return p
}

// Add registers a top-level template with a single alias and required values.
func (p *Parser) Add(alias string, values int, help string) (ID, error) {
	return p.Register(Template{
		Aliases: []string{alias},
		Values:  values,
		Help:    help,
	})
}

func (p *Parser) AddTemplate(t Template) (ID, error) {
	return p.Register(t)
}

// AddSubcommand registers a single alias template under parent.
func (p *Parser) AddSubcommand(parent ID, alias string, values int, help string) (ID, error) {
	return p.AttachChild(parent, Template{
		Aliases: []string{alias},
		Values:  values,
		Help:    help,
	})
}

func (p *Parser) AddSubcommandTemplate(parent ID, t Template) (ID, error) {
	return p.AttachChild(parent, t)
}

func (p *Parser) Parse(args []string) (*Result, error) {
	zap.S().Debugf("parsing %d arguments for %s", len(args), p.name)

	res, err := p.Registry.parse(args, func(e *entry, o *Occurrence) {
		zap.S().Debugf("matched %s at %d (template %d, occurrence %d) values=%v", o.Alias, o.Position, o.ID, o.Index, o.Values)
	})
	if err != nil {
		zap.S().Debugf("parse stopped: %s", err.Error())
		return nil, err
	}

	return res, nil
}

// ParseProcess parses the arguments of the running process, without the
// program path.
func (p *Parser) ParseProcess() (*Result, error) {
	return p.Parse(os.Args[1:])
}

// ParseOrExit parses args and exits the process when help was requested
// (status 0) or the arguments are invalid (status 1).
func (p *Parser) ParseOrExit(args []string) *Result {
	res, err := p.Parse(args)
	if errors.Is(err, ErrHelp) {
		fmt.Fprintln(p.out, p.Usage())
		exit(0)
		return nil
	}

	if err != nil {
		fmt.Fprintln(p.errOut, FormatError(err))
		exit(1)
		return nil
	}

	return res
}
