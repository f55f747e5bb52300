package manifest

// Counts totals the records of a scope tree.
type Counts struct {
	Requires int
	Contexts int
	Asyncs   int
}

// Visit calls fn for s and every nested scope, depth first, parents before
// children. depth is 0 for s.
func (s *Scope) Visit(fn func(depth int, s *Scope)) {
	s.visit(0, fn)
}

func (s *Scope) visit(depth int, fn func(int, *Scope)) {
	fn(depth, s)

	for i := range s.Asyncs {
		s.Asyncs[i].Scope.visit(depth+1, fn)
	}
}

// Count totals the records of s and every nested scope.
func (s *Scope) Count() Counts {
	var c Counts

	s.Visit(func(_ int, sc *Scope) {
		c.Requires += len(sc.Requires)
		c.Contexts += len(sc.Contexts)
		c.Asyncs += len(sc.Asyncs)
	})

	return c
}

// Names lists the named dependencies of s and every nested scope in visit
// order. Sentinels and dynamic references are skipped.
func (s *Scope) Names() []string {
	var names []string

	s.Visit(func(_ int, sc *Scope) {
		for _, d := range sc.Requires {
			if d.Name != "" {
				names = append(names, d.Name)
			}
		}
	})

	return names
}
