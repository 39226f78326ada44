package argparse

// Registry owns every registered template and indexes all of their aliases
// in a single namespace. Subcommands share that namespace; whether a
// subcommand is legal at a given point is decided while parsing.
//
// A Registry must not be modified while it is being parsed against. Once
// registration is finished it can be parsed against concurrently.
type Registry struct {
	byAlias  map[string]ID
	entries  map[ID]*entry
	parentOf map[ID]ID

	// registration order, used by the help listing
	order  []ID
	lastID ID
}

func NewRegistry() *Registry {
	r := &Registry{
		byAlias:  map[string]ID{},
		entries:  map[ID]*entry{},
		parentOf: map[ID]ID{},
	}

	for _, alias := range helpAliases {
		r.byAlias[alias] = HelpID
	}

	return r
}

// Register adds a top-level template and returns its identity.
func (r *Registry) Register(t Template) (ID, error) {
	return r.add(t, nil)
}

// AttachChild registers t as a subcommand of parent.
func (r *Registry) AttachChild(parent ID, t Template) (ID, error) {
	p, ok := r.entries[parent]
	if !ok {
		return 0, &UnknownParentError{Parent: parent}
	}

	return r.add(t, p)
}

func (r *Registry) add(t Template, parent *entry) (ID, error) {
	t, err := t.validate()
	if err != nil {
		return 0, err
	}

	for _, alias := range t.Aliases {
		if existing, ok := r.byAlias[alias]; ok {
			return 0, &DuplicateAliasError{Alias: alias, Existing: existing}
		}
	}

	r.lastID++
	e := &entry{
		Template: t,
		id:       r.lastID,
	}

	if parent != nil {
		e.parent = parent.id
		e.isChild = true
		e.depth = parent.depth + 1
		parent.children = append(parent.children, e.id)
		r.parentOf[e.id] = parent.id
	}

	for _, alias := range t.Aliases {
		r.byAlias[alias] = e.id
	}

	r.entries[e.id] = e
	r.order = append(r.order, e.id)

	return e.id, nil
}

// Lookup resolves an alias to the identity of its template. The help aliases
// resolve to HelpID.
func (r *Registry) Lookup(alias string) (ID, bool) {
	id, ok := r.byAlias[alias]
	return id, ok
}

func (r *Registry) IsChildOf(child ID, parent ID) bool {
	p, ok := r.parentOf[child]
	return ok && p == parent
}

func (r *Registry) Parent(id ID) (ID, bool) {
	p, ok := r.parentOf[id]
	return p, ok
}

func (r *Registry) Children(id ID) []ID {
	e, ok := r.entries[id]
	if !ok || len(e.children) == 0 {
		return nil
	}

	return append([]ID(nil), e.children...)
}

// Template returns a copy of the registered template.
func (r *Registry) Template(id ID) (Template, bool) {
	e, ok := r.entries[id]
	if !ok {
		return Template{}, false
	}

	t := e.Template
	t.Aliases = append([]string(nil), t.Aliases...)

	return t, true
}

// Roots returns the top-level templates in registration order.
func (r *Registry) Roots() []ID {
	roots := []ID{}
	for _, id := range r.order {
		if !r.entries[id].isChild {
			roots = append(roots, id)
		}
	}

	return roots
}

// Len is the number of registered templates, not counting help.
func (r *Registry) Len() int {
	return len(r.entries)
}
