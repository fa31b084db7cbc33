package flowchart

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// NodeType constants map to the flowchart.js node syntax types.
const (
	TypeStart       NodeType = "start"
	TypeEnd         NodeType = "end"
	TypeOperation   NodeType = "operation"
	TypeInputOutput NodeType = "inputoutput"
	TypeSubroutine  NodeType = "subroutine"
	TypeCondition   NodeType = "condition"
)

// NodeType is the flowchart.js node syntax type tag of a Node.
type NodeType string

// Param is one key=value render parameter on a node definition line,
// e.g. `cond3(align-next=no)=>condition: if a > 0`.
type Param struct {
	Key   string
	Value string
}

// Element is anything that can be wired into a flowchart graph: a concrete
// Node, a condition branch relay (Transparent), or a NodesGroup behaving as
// a single node towards its surroundings.
type Element interface {
	// Name returns the DSL identifier. A Transparent relay has no identity
	// of its own and returns "".
	Name() string

	// Connect appends an outgoing edge towards target. Optional labels
	// annotate the edge, e.g. "left" to hint the exit direction.
	Connect(target Element, labels ...string)

	render(r *renderer)
}

// Node is one box in the flowchart: a process-wide unique identity, a label
// text, a type tag and an ordered list of outgoing connections.
//
// Identity (id and name) is fixed at creation by the Factory; text and
// wiring may still change until the graph is rendered.
type Node struct {
	id      uint64
	name    string
	typ     NodeType
	text    string
	conns   []Connection
	params  []Param
	exitDir string
	sealed  bool
	mark    string
}

// Name returns the DSL identifier, e.g. "op4".
func (n *Node) Name() string { return n.name }

// Type returns the flowchart.js type tag.
func (n *Node) Type() NodeType { return n.typ }

// Text returns the label text.
func (n *Node) Text() string { return n.text }

// SetText replaces the label text.
func (n *Node) SetText(text string) { n.text = text }

// Rename lets a simplification rewrite take over the identifier of the node
// it replaces, so the rewritten construct keeps its external name.
func (n *Node) Rename(name string) { n.name = name }

// Connect appends an edge from n to target. Sealed nodes (return, break,
// continue) silently refuse further connections.
func (n *Node) Connect(target Element, labels ...string) {
	if n.sealed {
		return
	}
	n.conns = append(n.conns, Connection{Target: target, Labels: labels})
}

// Connections returns the outgoing edges in declaration order.
func (n *Node) Connections() []Connection { return n.conns }

// Seal marks the node terminal: any later Connect is a no-op.
func (n *Node) Seal() { n.sealed = true }

// SetParam records a (key=value) render parameter. Empty keys or values are
// dropped.
func (n *Node) SetParam(key, value string) {
	if key == "" || value == "" {
		return
	}
	for i := range n.params {
		if n.params[i].Key == key {
			n.params[i].Value = value
			return
		}
	}
	n.params = append(n.params, Param{Key: key, Value: value})
}

// SetExitDirection sets the preferred direction ("left", "right", "top",
// "bottom") appended to every edge leaving this node.
func (n *Node) SetExitDirection(dir string) { n.exitDir = dir }

// definition renders the single node definition line:
//
//	name(param=value,...)=>type: text
func (n *Node) definition() string {
	var params string
	if len(n.params) > 0 {
		kv := make([]string, 0, len(n.params))
		for _, p := range n.params {
			kv = append(kv, p.Key+"="+p.Value)
		}
		params = "(" + strings.Join(kv, ",") + ")"
	}
	return fmt.Sprintf("%s%s=>%s: %s\n", n.name, params, n.typ, n.text)
}

// edgeLine renders one connection line, or "" when the target is missing or
// has no name to point at.
func (n *Node) edgeLine(c Connection) string {
	if c.Target == nil {
		return ""
	}
	target := c.Target.Name()
	if target == "" {
		return ""
	}
	labels := c.Labels
	if n.exitDir != "" {
		labels = append(append([]string{}, labels...), n.exitDir)
	}
	return n.name + renderLabels(labels) + "->" + target + "\n"
}

func (n *Node) render(r *renderer) {
	if n.mark == r.token {
		return
	}
	n.mark = r.token
	if n.name != "" {
		r.defs.WriteString(n.definition())
	}
	for _, c := range n.conns {
		r.conns.WriteString(n.edgeLine(c))
	}
	for _, c := range n.conns {
		if c.Target != nil {
			c.Target.render(r)
		}
	}
}

// Factory allocates node identities. It owns the monotonically increasing
// id counter, so independent builds never share state; the counter is
// atomic in case a hosting application builds graphs concurrently.
type Factory struct {
	ids atomic.Uint64
}

// NewFactory returns a Factory counting ids from zero.
func NewFactory() *Factory { return &Factory{} }

func (f *Factory) next() uint64 { return f.ids.Add(1) - 1 }

func (f *Factory) node(prefix string, typ NodeType, text string) Node {
	id := f.next()
	return Node{
		id:   id,
		name: fmt.Sprintf("%s%d", prefix, id),
		typ:  typ,
		text: text,
	}
}

// Start creates a `start` node labeled "start <name>".
func (f *Factory) Start(name string) *Node {
	n := f.node("st", TypeStart, "start "+name)
	return &n
}

// End creates an `end` node labeled "end <name>".
func (f *Factory) End(name string) *Node {
	n := f.node("e", TypeEnd, "end "+name)
	return &n
}

// Operation creates an `operation` node.
func (f *Factory) Operation(text string) *Node {
	n := f.node("op", TypeOperation, text)
	return &n
}

// Input creates an `inputoutput` node labeled "input: <content>".
func (f *Factory) Input(content string) *Node {
	n := f.node("io", TypeInputOutput, "input: "+content)
	return &n
}

// Output creates an `inputoutput` node labeled "output: <content>".
func (f *Factory) Output(content string) *Node {
	n := f.node("io", TypeInputOutput, "output: "+content)
	return &n
}

// Subroutine creates a `subroutine` node.
func (f *Factory) Subroutine(text string) *Node {
	n := f.node("sub", TypeSubroutine, text)
	return &n
}

// Condition creates a `condition` node with yes/no branches.
func (f *Factory) Condition(cond string) *ConditionNode {
	return &ConditionNode{Node: f.node("cond", TypeCondition, cond)}
}
