package grove

// List is a composite node that owns an ordered collection of children. The
// children stay sorted by ascending Layer after every Add; children on the
// same layer keep their insertion order.
type List struct {
	Node
	children []Object
}

// NewList creates an empty list.
func NewList(layer int, id ID) *List {
	return &List{Node: Node{Layer: layer, ID: id}}
}

// Add appends child and re-sorts the children by layer.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this list (cycle).
func (l *List) Add(child Object) {
	attach(l, child)
	l.children = append(l.children, child)
	sortByLayer(l.children)
}

// Remove detaches the first occurrence of child. It reports whether a child
// was removed.
func (l *List) Remove(child Object) bool {
	for i, c := range l.children {
		if c == child {
			copy(l.children[i:], l.children[i+1:])
			l.children[len(l.children)-1] = nil
			l.children = l.children[:len(l.children)-1]
			child.Base().parent = nil
			return true
		}
	}
	return false
}

// At returns the child at index i, or nil when i is out of range.
func (l *List) At(i int) Object {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i]
}

// Len returns the number of children.
func (l *List) Len() int { return len(l.children) }

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (l *List) Children() []Object { return l.children }

// Clear detaches every child.
func (l *List) Clear() {
	for i, c := range l.children {
		if c != nil {
			c.Base().parent = nil
		}
		l.children[i] = nil
	}
	l.children = l.children[:0]
}

// Find searches the subtree depth-first, pre-order: each child's own ID is
// checked before descending into it. Returns nil when nothing matches.
func (l *List) Find(id ID) Object {
	return findIn(l.children, id)
}

// HandleInput dispatches to children in reverse order so the topmost child
// sees input first.
func (l *List) HandleInput(in Input, dt float64) {
	for i := len(l.children) - 1; i >= 0; i-- {
		if c := l.children[i]; c != nil {
			c.HandleInput(in, dt)
		}
	}
}

// Update dispatches to children in order.
func (l *List) Update(dt float64) {
	for _, c := range l.children {
		if c != nil {
			c.Update(dt)
		}
	}
}

// Draw dispatches to effectively visible children in order.
func (l *List) Draw(r Renderer) {
	for _, c := range l.children {
		if c != nil && c.Base().Visible() {
			c.Draw(r)
		}
	}
}

// Reset restores this list's visibility and resets every child, visible or not.
func (l *List) Reset() {
	l.Node.Reset()
	for _, c := range l.children {
		if c != nil {
			c.Reset()
		}
	}
}

func findIn(children []Object, id ID) Object {
	if id == NoID {
		return nil
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Base().ID == id {
			return c
		}
		if sub, ok := c.(Container); ok {
			if found := sub.Find(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// FindAs looks up id under c and asserts the result to T.
func FindAs[T Object](c Container, id ID) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	t, ok := c.Find(id).(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// sortByLayer is a stable insertion sort by Layer. Children are almost always
// sorted already, so this is linear in practice.
func sortByLayer(s []Object) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j].Base().Layer > key.Base().Layer {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
