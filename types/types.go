package types

// Selectable is an item that can be picked from an interactive list.
type Selectable interface {
	Label() string
	Selected() string
	Details() string
	Match(input string) bool
}
