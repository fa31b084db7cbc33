// Package flowchart models a control-flow graph of typed boxes and renders
// it as flowchart.js DSL text: a block of node definition lines, a blank
// line, then a block of connection lines.
//
// The graph may contain cycles (loop bodies reconnect to their condition);
// rendering walks it depth-first behind a per-render visitation token, so
// every node is emitted exactly once and re-rendering an unmutated graph
// yields identical text.
package flowchart

import (
	"strings"

	"github.com/google/uuid"
)

// Flowchart is a rendered view over a graph rooted at one element.
type Flowchart struct {
	root Element
}

// New wraps the graph rooted at root. A nil root is a valid empty
// flowchart rendering to "".
func New(root Element) *Flowchart {
	return &Flowchart{root: root}
}

// Root returns the graph entry element, nil for an empty flowchart.
func (f *Flowchart) Root() Element { return f.root }

// Render walks the graph once and returns the DSL text: definitions in
// visitation order, a blank line, then connections in visitation order.
func (f *Flowchart) Render() string {
	if f.root == nil {
		return ""
	}
	r := newRenderer()
	f.root.render(r)
	return r.defs.String() + "\n" + r.conns.String()
}

// renderer accumulates the two output blocks of one render pass. Its token
// is fresh per pass: stale marks from an earlier render never short-circuit
// the walk, and back-edges terminate it instead of recursing forever.
type renderer struct {
	token string
	defs  strings.Builder
	conns strings.Builder
}

func newRenderer() *renderer {
	return &renderer{token: uuid.NewString()}
}
