package argparse

// Occurrence is one match of a template during a parse.
type Occurrence struct {
	ID       ID       `yaml:"id"`
	Alias    string   `yaml:"alias"`
	Position int      `yaml:"position"`
	Index    int      `yaml:"index"`
	Values   []string `yaml:"values"`
}

// Result is the outcome of a successful parse. Only the most recent
// occurrence of each template is reachable through Has and Get; every
// occurrence is available from Occurrences.
//
// A Result has no reference to the registry it was parsed against and is
// never modified after Parse returns.
type Result struct {
	byAlias map[string]*Occurrence
	byID    map[ID]*Occurrence
	all     []*Occurrence
}

func newResult() *Result {
	return &Result{
		byAlias: map[string]*Occurrence{},
		byID:    map[ID]*Occurrence{},
	}
}

// record stores o as the latest occurrence for every alias of its template.
func (r *Result) record(o *Occurrence, aliases []string) {
	o.Index = 0
	if prev, ok := r.byID[o.ID]; ok {
		o.Index = prev.Index + 1
	}

	r.byID[o.ID] = o
	for _, alias := range aliases {
		r.byAlias[alias] = o
	}

	r.all = append(r.all, o)
}

// Has reports whether the template owning alias was matched.
func (r *Result) Has(alias string) bool {
	_, ok := r.byAlias[alias]
	return ok
}

// Get returns the most recent occurrence of the template owning alias.
func (r *Result) Get(alias string) (Occurrence, bool) {
	o, ok := r.byAlias[alias]
	if !ok {
		return Occurrence{}, false
	}

	return clone(*o), true
}

func (r *Result) HasID(id ID) bool {
	_, ok := r.byID[id]
	return ok
}

func (r *Result) GetID(id ID) (Occurrence, bool) {
	o, ok := r.byID[id]
	if !ok {
		return Occurrence{}, false
	}

	return clone(*o), true
}

// Values is shorthand for the values of Get(alias). It returns nil when the
// alias was not matched.
func (r *Result) Values(alias string) []string {
	o, ok := r.Get(alias)
	if !ok {
		return nil
	}

	return o.Values
}

// Occurrences returns every match in encounter order.
func (r *Result) Occurrences() []Occurrence {
	out := make([]Occurrence, 0, len(r.all))
	for _, o := range r.all {
		out = append(out, clone(*o))
	}

	return out
}

// Len is the number of distinct templates matched.
func (r *Result) Len() int {
	return len(r.byID)
}
