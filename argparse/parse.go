package argparse

// Parse matches args against the registered templates in a single forward
// pass. Every token must either be a registered alias or a value consumed by
// the preceding flag.
//
// A subcommand is only accepted while its parent is part of the active
// context. Matching a template that has subcommands makes it the active
// parent, matching one of its subcommands keeps it active, and matching an
// unrelated top-level template clears the context.
//
// Values are consumed up to the template's arity and stop early at any token
// that is a registered alias, so a value can never look like a flag.
//
// On --help or -h the scan stops and ErrHelp is returned, also when the help
// alias sits where a value was expected.
func (r *Registry) Parse(args []string) (*Result, error) {
	return r.parse(args, nil)
}

type matchHook func(e *entry, o *Occurrence)

func (r *Registry) parse(args []string, hook matchHook) (*Result, error) {
	res := newResult()

	// lineage[d] is the active parent at depth d
	var lineage []ID

	for i := 0; i < len(args); {
		arg := args[i]

		id, ok := r.byAlias[arg]
		if !ok {
			return nil, &UnrecognizedArgumentError{Token: arg, Position: i}
		}

		if id == HelpID {
			return nil, ErrHelp
		}

		e := r.entries[id]

		if e.isChild {
			d := e.depth - 1
			if d >= len(lineage) || lineage[d] != e.parent {
				parent, _ := r.Parent(id)
				t, _ := r.Template(parent)

				return nil, &OutOfContextError{
					Alias:    arg,
					Position: i,
					Parent:   t.String(),
				}
			}

			lineage = lineage[:d+1]
		} else {
			lineage = lineage[:0]
		}

		if len(e.children) != 0 {
			lineage = append(lineage, id)
		}

		values := make([]string, 0, min(e.Values, len(args)-i-1))
		for j := i + 1; j < len(args) && len(values) < e.Values; j++ {
			if next, isAlias := r.byAlias[args[j]]; isAlias {
				if next == HelpID {
					return nil, ErrHelp
				}
				break
			}

			values = append(values, args[j])
		}

		if !e.Optional && len(values) < e.Values {
			return nil, &MissingValuesError{
				Alias:    arg,
				Position: i,
				Expected: e.Values,
				Found:    len(values),
			}
		}

		if e.OnParse != nil {
			e.OnParse(append([]string(nil), values...))
		}

		o := &Occurrence{
			ID:       id,
			Alias:    arg,
			Position: i,
			Values:   values,
		}
		res.record(o, e.Aliases)

		if hook != nil {
			hook(e, o)
		}

		i += 1 + len(values)
	}

	return res, nil
}
