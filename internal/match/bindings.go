package match

// Bindings maps the names bound by a successful match to their values, in
// the order the pattern declares them.
type Bindings struct {
	names  []string
	values []any
}

// Lookup returns the value bound to name.
func (b Bindings) Lookup(name string) (any, bool) {
	for i, n := range b.names {
		if n == name {
			return b.values[i], true
		}
	}

	return nil, false
}

// Get returns the value bound to name, or nil when name is not bound.
func (b Bindings) Get(name string) any {
	v, _ := b.Lookup(name)
	return v
}

// Names returns the bound names in declaration order.
func (b Bindings) Names() []string {
	return append([]string(nil), b.names...)
}

// Len returns the number of bound names.
func (b Bindings) Len() int {
	return len(b.names)
}

// Map returns the bindings as a map.
func (b Bindings) Map() map[string]any {
	m := make(map[string]any, len(b.names))
	for i, n := range b.names {
		m[n] = b.values[i]
	}

	return m
}

func (b *Bindings) add(name string, v any) {
	b.names = append(b.names, name)
	b.values = append(b.values, v)
}

// truncate drops everything bound after the first n entries.
func (b *Bindings) truncate(n int) {
	b.names = b.names[:n]
	b.values = b.values[:n]
}

// ordered returns a copy of b with entries arranged in the given name order.
func (b Bindings) ordered(names []string) Bindings {
	var out Bindings

	for _, n := range names {
		if v, ok := b.Lookup(n); ok {
			out.add(n, v)
		}
	}

	return out
}
