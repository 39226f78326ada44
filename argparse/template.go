package argparse

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
)

// ID identifies a registered template. It is assigned by the registry and is
// used to attach subcommands and to query results.
type ID int

// HelpID is the identity of the built-in --help / -h template.
const HelpID ID = 0

var helpAliases = []string{"--help", "-h"}

// Action is called once for every occurrence of a template, with the values
// consumed by that occurrence.
type Action func(values []string)

// Template declares one recognizable flag.
type Template struct {
	Aliases  []string
	Values   int
	Optional bool
	Help     string
	OnParse  Action
}

// NewTemplate returns a template matching the given aliases.
func NewTemplate(aliases ...string) Template {
	return Template{Aliases: aliases}
}

func (t Template) String() string {
	if len(t.Aliases) == 0 {
		return ""
	}

	return t.Aliases[0]
}

// display is the alias list and value hint used by the help listing.
func (t Template) display() string {
	s := strings.Join(t.Aliases, " | ")
	if t.Values > 0 {
		if t.Optional {
			s += fmt.Sprintf(" [%d optional values]", t.Values)
		} else {
			s += fmt.Sprintf(" [%d values]", t.Values)
		}
	}

	return s
}

func (t Template) validate() (Template, error) {
	if t.Values < 0 {
		return t, ErrNegativeArity
	}

	if len(t.Aliases) == 0 {
		return t, ErrNoAliases
	}

	seen := make(map[string]bool, len(t.Aliases))
	aliases := make([]string, 0, len(t.Aliases))
	for _, alias := range t.Aliases {
		if alias == "" {
			return t, ErrEmptyAlias
		}

		if !seen[alias] {
			seen[alias] = true
			aliases = append(aliases, alias)
		}
	}

	t.Aliases = aliases

	return t, nil
}

type entry struct {
	Template

	id       ID
	parent   ID
	isChild  bool
	depth    int
	children []ID
}

func clone[T any](v T) T {
	var n T
	if err := copier.CopyWithOption(&n, v, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}

	return n
}
