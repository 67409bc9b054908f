package navigator

// Visited tracks the identities of the ancestors on the current
// root-to-node path. Exactly the ancestors of the node being visited are
// present at any point; finished siblings are always removed.
type Visited struct {
	ids map[uintptr]struct{}
}

// NewVisited creates an empty set. One set is allocated per root call and
// shared by every navigator the walk spawns.
func NewVisited() *Visited {
	return &Visited{ids: make(map[uintptr]struct{})}
}

// Push records an identity for the duration of a subtree. The release
// function must run when the frame unwinds, on failure paths included. The
// second return is false when the identity is already on the path, i.e. the
// graph cycles back into an ancestor.
func (s *Visited) Push(id uintptr) (release func(), ok bool) {
	if _, cyclic := s.ids[id]; cyclic {
		return nil, false
	}
	s.ids[id] = struct{}{}
	return func() { delete(s.ids, id) }, true
}

// Len returns the current path depth contribution.
func (s *Visited) Len() int { return len(s.ids) }
