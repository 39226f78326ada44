// Package manifest declares an argparse.Parser in YAML:
//
//	name: myprog
//	description: An example program.
//	author: Me
//	templates:
//	  - aliases: ["--say"]
//	    values: 1
//	    help: Print the value.
//	  - aliases: ["-c"]
//	    help: Count something.
//	    subcommands:
//	      - aliases: ["--add"]
//	        values: 2
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/seventv/hashparse/argparse"
	"github.com/seventv/hashparse/types"
	"github.com/seventv/hashparse/utils"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("manifest not found")

type Manifest struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Author      string     `yaml:"author,omitempty"`
	Usage       string     `yaml:"usage,omitempty"`
	Help        string     `yaml:"help,omitempty"` // replaces the generated help text
	Templates   []Template `yaml:"templates"`
}

type Template struct {
	Aliases     []string   `yaml:"aliases"`
	Values      int        `yaml:"values,omitempty"`
	Optional    bool       `yaml:"optional,omitempty"`
	Help        string     `yaml:"help,omitempty"`
	Subcommands []Template `yaml:"subcommands,omitempty"`
}

// Load reads a manifest from path, or from stdin when path is "-".
func Load(path string) (*Manifest, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, err
	}

	return Parse(data)
}

func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

var (
	aliasValidator = types.MultiValidator(
		types.EmptyValidator[string]("alias", false),
		types.AliasValidator("alias"),
	)
	arityValidator = types.ArityValidator("values")
)

// Validate checks every template's aliases and arity. Alias collisions are
// reported by Build, where the registry detects them.
func (m *Manifest) Validate() error {
	var walk func(path string, ts []Template) error
	walk = func(path string, ts []Template) error {
		for i, t := range ts {
			p := fmt.Sprintf("%s[%d]", path, i)

			if len(t.Aliases) == 0 {
				return fmt.Errorf("%s: %w", p, argparse.ErrNoAliases)
			}

			for _, alias := range t.Aliases {
				if err := aliasValidator.Validate(alias); err != nil {
					return fmt.Errorf("%s: %w", p, err)
				}
			}

			if err := arityValidator.Validate(t.Values); err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}

			if err := walk(p+".subcommands", t.Subcommands); err != nil {
				return err
			}
		}

		return nil
	}

	return walk("templates", m.Templates)
}

func (t Template) template() argparse.Template {
	return argparse.Template{
		Aliases:  t.Aliases,
		Values:   t.Values,
		Optional: t.Optional,
		Help:     t.Help,
	}
}

// Build registers every template of the manifest in a new parser.
func (m *Manifest) Build() (*argparse.Parser, error) {
	parser := argparse.NewParser(m.Name, m.Description).
		SetAuthor(m.Author).
		SetUsage(m.Usage).
		SetHelp(m.Help)

	var add func(path string, parent argparse.ID, ts []Template) error
	add = func(path string, parent argparse.ID, ts []Template) error {
		for i, t := range ts {
			p := fmt.Sprintf("%s[%d]", path, i)

			var (
				id  argparse.ID
				err error
			)
			if parent == argparse.HelpID {
				id, err = parser.AddTemplate(t.template())
			} else {
				id, err = parser.AddSubcommandTemplate(parent, t.template())
			}
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}

			if err := add(p+".subcommands", id, t.Subcommands); err != nil {
				return err
			}
		}

		return nil
	}

	// HelpID is never a real parent, so it marks the top level here
	if err := add("templates", argparse.HelpID, m.Templates); err != nil {
		return nil, err
	}

	return parser, nil
}
