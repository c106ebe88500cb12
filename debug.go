package grove

import (
	"go.uber.org/zap"
)

var (
	log         = zap.NewNop()
	globalDebug bool
)

// SetLogger installs the logger used for the package's diagnostics.
// A nil logger silences them.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l.Named("grove")
}

// SetDebug turns tree sanity checks on or off. The checks log warnings and
// cost a walk up the parent chain on every Add.
func SetDebug(on bool) { globalDebug = on }

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n.parent; p != nil; p = p.Base().parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		log.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth), zap.Int("threshold", debugMaxTreeDepth), zap.Int("id", int(n.ID)))
	}
}

// debugCheckChildCount warns if a container has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c Container) {
	if n := len(c.Children()); n > debugMaxChildCount {
		log.Warn("container child count exceeds threshold",
			zap.Int("children", n), zap.Int("threshold", debugMaxChildCount), zap.Int("id", int(c.Base().ID)))
	}
}
