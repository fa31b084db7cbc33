package flowchart

// NodesGroup wraps a subgraph so it looks atomic to its surroundings: one
// head (entry) and a set of tails (exit points). Its externally visible
// name is its head's name, so a parent connecting to the group draws an
// edge into the head; connecting the group onward attaches the target to
// every current tail.
type NodesGroup struct {
	head   Element
	tails  []Element
	sealed bool
}

// NewGroup builds a group around head with the given tails.
func NewGroup(head Element, tails ...Element) *NodesGroup {
	return &NodesGroup{head: head, tails: tails}
}

// Name proxies to the head so the group can be a connection target.
func (g *NodesGroup) Name() string {
	if g.head == nil {
		return ""
	}
	return g.head.Name()
}

// Head returns the entry element.
func (g *NodesGroup) Head() Element { return g.head }

// SetHead replaces the entry element. Simplification rewrites use this to
// swap a condition subgraph for a single merged node.
func (g *NodesGroup) SetHead(head Element) {
	if head != nil {
		g.head = head
	}
}

// Tails returns the current exit points.
func (g *NodesGroup) Tails() []Element { return g.tails }

// AppendTail adds one exit point.
func (g *NodesGroup) AppendTail(e Element) {
	if e != nil {
		g.tails = append(g.tails, e)
	}
}

// ExtendTails adds several exit points.
func (g *NodesGroup) ExtendTails(es ...Element) {
	for _, e := range es {
		g.AppendTail(e)
	}
}

// ResetTails discards the exit set and replaces it.
func (g *NodesGroup) ResetTails(es ...Element) {
	g.tails = nil
	g.ExtendTails(es...)
}

// Seal makes the group terminal: Connect becomes a no-op. Used for the
// return construct, which must not flow onward.
func (g *NodesGroup) Seal() { g.sealed = true }

// Connect attaches target to every tail of the group.
func (g *NodesGroup) Connect(target Element, labels ...string) {
	if g.sealed {
		return
	}
	for _, t := range g.tails {
		if t != nil {
			t.Connect(target, labels...)
		}
	}
}

func (g *NodesGroup) render(r *renderer) {
	if g.head != nil {
		g.head.render(r)
	}
}
