package argparse

import (
	"strings"
)

const indentWidth = 4

func makePadding(n int) string {
	if n < 0 {
		n = 0
	}

	return strings.Repeat(" ", n)
}

type helpLine struct {
	text  string
	help  string
	level int
}

// helpLines walks the template forest depth first, in registration order.
func (p *Parser) helpLines() []helpLine {
	lines := make([]helpLine, 0, len(p.order))

	var walk func(id ID, level int)
	walk = func(id ID, level int) {
		t, _ := p.Template(id)
		lines = append(lines, helpLine{
			text:  t.display(),
			help:  t.Help,
			level: level,
		})

		for _, child := range p.Children(id) {
			walk(child, level+1)
		}
	}

	for _, id := range p.Roots() {
		walk(id, 0)
	}

	return lines
}

// Usage renders the help listing. If SetHelp was used its text is returned
// unchanged.
func (p *Parser) Usage() string {
	if p.help != "" {
		return p.help
	}

	lines := p.helpLines()

	helpText := strings.Join([]string{helpAliases[1], helpAliases[0]}, ", ")

	width := len(helpText)
	for _, l := range lines {
		if w := l.level*indentWidth + len(l.text); w > width {
			width = w
		}
	}

	var b strings.Builder

	if p.name != "" {
		b.WriteString(p.name)
		if p.description != "" {
			b.WriteString(": ")
			b.WriteString(p.description)
		}
		b.WriteString("\n")
	} else if p.description != "" {
		b.WriteString(p.description)
		b.WriteString("\n")
	}

	if p.author != "" {
		b.WriteString("Author: ")
		b.WriteString(p.author)
		b.WriteString("\n")
	}

	b.WriteString("Usage:\n    ")
	if p.usage != "" {
		b.WriteString(p.usage)
	} else {
		b.WriteString("$ ")
		b.WriteString(p.name)
		b.WriteString(" -[-command] [value/s...]")
	}
	b.WriteString("\n")

	b.WriteString("Arguments:\n")
	for _, l := range lines {
		lvl := makePadding(l.level * indentWidth)

		b.WriteString(makePadding(indentWidth))
		b.WriteString(lvl)
		b.WriteString(l.text)
		if l.help != "" {
			b.WriteString(makePadding(width - len(lvl) - len(l.text)))
			b.WriteString("    ")
			b.WriteString(l.help)
		}
		b.WriteString("\n")
	}

	b.WriteString(makePadding(indentWidth))
	b.WriteString(helpText)
	b.WriteString(makePadding(width - len(helpText)))
	b.WriteString("    Print this help message!")

	return b.String()
}
