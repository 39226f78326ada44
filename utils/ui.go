package utils

import (
	"sort"

	"github.com/manifoldco/promptui"
	"github.com/seventv/hashparse/types"
)

// Selector shows an interactive list and returns the index of the picked
// option in options.
func Selector(label string, search bool, options []types.Selectable) (int, error) {
	type selection struct {
		Label    string
		Selected string
		Details  string
		idx      int

		Match func(input string) bool
	}

	items := make([]selection, 0, len(options))
	for idx, s := range options {
		items = append(items, selection{
			Label:    s.Label(),
			Selected: s.Selected(),
			Details:  s.Details(),
			Match:    s.Match,
			idx:      idx,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Label < items[j].Label
	})

	prompt := promptui.Select{
		Label:        label,
		Items:        items,
		HideSelected: true,
		HideHelp:     !search,
		Templates: &promptui.SelectTemplates{
			Label:    "{{ .Label }}",
			Active:   "➔ {{ .Label }}",
			Inactive: "  {{ .Label }}",
			Details:  "{{ .Details }}",
		},
	}

	if search {
		prompt.Searcher = func(input string, index int) bool {
			return items[index].Match(input)
		}
	}

	i, _, err := prompt.Run()
	if err != nil {
		return -1, err
	}

	return items[i].idx, nil
}

type PromptMessage[T comparable] struct {
	Label    string
	Default  string
	Validate types.Validator[T]
}

// Prompt asks for a single line. The line is converted and validated with
// p.Validate while typing.
func Prompt[T comparable](p PromptMessage[T]) (string, error) {
	prompt := promptui.Prompt{
		Label:   p.Label,
		Default: p.Default,
	}

	if p.Validate != nil {
		prompt.Validate = func(s string) error {
			t, err := p.Validate.Convert(s)
			if err != nil {
				return err
			}

			return p.Validate.Validate(t)
		}
	}

	return prompt.Run()
}
