package cgen

// binding records one declared variable and the C type fixed at its first
// declaration. The declared type never changes for the rest of the run;
// reassignment emits a bare assignment.
type binding struct {
	name  string
	ctype CType
}

// scope tracks declarations along a parent chain. Each conditional branch
// and loop body gets a child scope, so a name first assigned inside a branch
// is declared inside that branch and a sibling branch declares it again,
// matching C block scoping in the output.
type scope struct {
	parent *scope
	vars   map[string]*binding
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, vars: map[string]*binding{}}
}

func (s *scope) lookup(name string) (*binding, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if b, ok := cur.vars[name]; ok {
			return b, true
		}
	}
	return nil, false
}

// declare records a declaration in this scope. Idempotent: the first
// declaration of a name wins, later calls are no-ops.
func (s *scope) declare(name string, t CType) {
	if _, ok := s.lookup(name); ok {
		return
	}
	s.vars[name] = &binding{name: name, ctype: t}
}

func (s *scope) isDeclared(name string) bool {
	_, ok := s.lookup(name)
	return ok
}
