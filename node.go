package grove

// --- Capabilities ---

// InputHandler reacts to the per-tick input snapshot.
type InputHandler interface {
	HandleInput(in Input, dt float64)
}

// Updater advances simulation state by dt seconds.
type Updater interface {
	Update(dt float64)
}

// Drawer submits draw calls to a Renderer.
type Drawer interface {
	Draw(r Renderer)
}

// Resetter restores runtime state so the object can be replayed.
type Resetter interface {
	Reset()
}

// Loop is anything that takes part in the per-tick game loop. Top-level
// states registered with a StateManager only need to satisfy Loop.
type Loop interface {
	InputHandler
	Updater
	Drawer
	Resetter
}

// Object is a scene graph element. Every concrete node type embeds Node,
// which provides Base and default no-op behavior for the Loop methods.
type Object interface {
	Loop
	Base() *Node
}

// Container is an Object that owns children and supports lookup by ID.
type Container interface {
	Object
	Find(id ID) Object
	Children() []Object
}

// --- Node ---

// Node is the base of every scene graph element: layer, id, local position,
// velocity, local visibility, and a back-reference to the owning container.
// The zero value is a visible, detached node at the origin.
type Node struct {
	Layer    int
	ID       ID
	Position Vec2
	Velocity Vec2

	parent Container
	hidden bool
}

// NewNode creates a node with the given layer and id.
func NewNode(layer int, id ID) *Node {
	return &Node{Layer: layer, ID: id}
}

// Base returns n. Embedding types inherit it, which makes them Objects.
func (n *Node) Base() *Node { return n }

// Parent returns the owning container, or nil when detached.
func (n *Node) Parent() Container { return n.parent }

// Root returns the outermost container above n, or nil when n is detached.
func (n *Node) Root() Container {
	var root Container
	for p := n.parent; p != nil; p = p.Base().parent {
		root = p
	}
	return root
}

// Visible reports the effective visibility: the local flag AND the effective
// visibility of every ancestor. Not cached.
func (n *Node) Visible() bool {
	if n.hidden {
		return false
	}
	if n.parent == nil {
		return true
	}
	return n.parent.Base().Visible()
}

// LocalVisible reports the node's own visibility flag, ignoring ancestors.
func (n *Node) LocalVisible() bool { return !n.hidden }

// SetVisible sets the local visibility flag.
func (n *Node) SetVisible(v bool) { n.hidden = !v }

// WorldPosition returns Position plus the world position of the parent chain.
func (n *Node) WorldPosition() Vec2 {
	if n.parent == nil {
		return n.Position
	}
	return n.parent.Base().WorldPosition().Add(n.Position)
}

// HandleInput is a no-op.
func (n *Node) HandleInput(Input, float64) {}

// Update advances Position by Velocity*dt.
func (n *Node) Update(dt float64) {
	n.Position.AddTo(n.Velocity.Scale(dt))
}

// Draw is a no-op.
func (n *Node) Draw(Renderer) {}

// Reset restores local visibility.
func (n *Node) Reset() { n.hidden = false }

// --- Helpers ---

// remover is implemented by containers that can detach a child.
type remover interface {
	Remove(child Object) bool
}

// attach links child under parent. Panics on nil children and cycles; a child
// owned by another container is removed from it first.
func attach(parent Container, child Object) {
	if child == nil {
		panic("grove: cannot add nil child")
	}
	if isAncestor(child, parent) {
		panic("grove: adding child would create a cycle")
	}
	cb := child.Base()
	if cb.parent != nil {
		if r, ok := cb.parent.(remover); ok {
			r.Remove(child)
		}
	}
	cb.parent = parent
	if globalDebug {
		debugCheckTreeDepth(cb)
		debugCheckChildCount(parent)
	}
}

// isAncestor reports whether candidate is node itself or one of its ancestors.
func isAncestor(candidate Object, node Container) bool {
	cb := candidate.Base()
	for p := Container(node); p != nil; p = p.Base().parent {
		if p.Base() == cb {
			return true
		}
	}
	return false
}
