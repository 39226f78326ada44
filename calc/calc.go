// Package calc is a small calculator driven entirely by argparse callbacks.
// Each operator consumes up to maxOperands numbers and folds them into a
// running total that starts at zero:
//
//	$ hp calc add 2 2 mul 3
//	12
package calc

import (
	"fmt"
	"strconv"

	"github.com/seventv/hashparse/argparse"
)

const maxOperands = 99

type operator struct {
	aliases []string
	help    string
	apply   func(acc, v float64) float64
}

var operators = []operator{
	{[]string{"add", "+"}, "Add the numbers supplied.", func(acc, v float64) float64 { return acc + v }},
	{[]string{"sub", "-"}, "Subtract the numbers supplied.", func(acc, v float64) float64 { return acc - v }},
	{[]string{"mul", "*"}, "Multiply by the numbers supplied.", func(acc, v float64) float64 { return acc * v }},
	{[]string{"div", "/"}, "Divide by the numbers supplied.", func(acc, v float64) float64 { return acc / v }},
}

type Calculator struct {
	parser *argparse.Parser

	total float64
	err   error
}

func New() *Calculator {
	c := &Calculator{
		parser: argparse.NewParser("calc", "argparse example calculator program.").SetAuthor("Example"),
	}

	for _, op := range operators {
		op := op
		_, err := c.parser.AddTemplate(argparse.Template{
			Aliases:  op.aliases,
			Values:   maxOperands,
			Optional: true,
			Help:     op.help,
			OnParse: func(values []string) {
				c.fold(op, values)
			},
		})
		if err != nil {
			// the operator table is static
			panic(err)
		}
	}

	return c
}

func (c *Calculator) fold(op operator, values []string) {
	if c.err != nil {
		return
	}

	for _, value := range values {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			c.err = fmt.Errorf("%s: %q is not a number", op.aliases[0], value)
			return
		}

		c.total = op.apply(c.total, v)
	}
}

// Run evaluates args from a zero total. It returns argparse.ErrHelp when help
// was requested.
func (c *Calculator) Run(args []string) (float64, error) {
	c.total, c.err = 0, nil

	if _, err := c.parser.Parse(args); err != nil {
		return 0, err
	}

	if c.err != nil {
		return 0, c.err
	}

	return c.total, nil
}

func (c *Calculator) Usage() string {
	return c.parser.Usage()
}
