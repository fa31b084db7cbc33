package flowchart

// Transparent is a zero-definition relay hanging off a condition node. It
// gives an empty branch a connectable point: the branch edge
// `cond(yes)->...` only materializes once something is connected as the
// child. A Transparent owns no definition line and no identity of its own.
type Transparent struct {
	owner *Node
	label string
	child Element
	extra []string
	mark  string
}

// Name returns "": transparent relays emit no definition and nothing ever
// points at them by name.
func (t *Transparent) Name() string { return "" }

// Child returns the branch target, or nil while the branch is empty.
func (t *Transparent) Child() Element { return t.child }

// Connect sets (or replaces) the branch target. Extra labels, such as the
// "left" hint on loop back-edges, are appended after the branch label.
func (t *Transparent) Connect(target Element, labels ...string) {
	t.child = target
	t.extra = append(t.extra, labels...)
}

func (t *Transparent) render(r *renderer) {
	if t.mark == r.token {
		return
	}
	t.mark = r.token
	if t.child == nil {
		return
	}
	if name := t.child.Name(); name != "" {
		labels := append([]string{t.label}, t.extra...)
		r.conns.WriteString(t.owner.name + renderLabels(labels) + "->" + name + "\n")
	}
	t.child.render(r)
}

// ConditionNode is a condition box with the two distinguished "yes"/"no"
// branches. Branch targets may stay unresolved (placeholders) until both
// sides of the construct are known.
type ConditionNode struct {
	Node
	yes *Transparent
	no  *Transparent
}

// YesBranch returns the "yes" relay, creating it on first use.
func (c *ConditionNode) YesBranch() *Transparent {
	if c.yes == nil {
		c.yes = &Transparent{owner: &c.Node, label: "yes"}
		c.conns = append(c.conns, Connection{Target: c.yes})
	}
	return c.yes
}

// NoBranch returns the "no" relay, creating it on first use.
func (c *ConditionNode) NoBranch() *Transparent {
	if c.no == nil {
		c.no = &Transparent{owner: &c.Node, label: "no"}
		c.conns = append(c.conns, Connection{Target: c.no})
	}
	return c.no
}

// ConnectYes attaches target to the "yes" branch.
func (c *ConditionNode) ConnectYes(target Element, labels ...string) {
	c.YesBranch().Connect(target, labels...)
}

// ConnectNo attaches target to the "no" branch.
func (c *ConditionNode) ConnectNo(target Element, labels ...string) {
	c.NoBranch().Connect(target, labels...)
}

// YesTarget returns the "yes" branch target, nil when absent.
func (c *ConditionNode) YesTarget() Element {
	if c.yes == nil {
		return nil
	}
	return c.yes.child
}

// NoTarget returns the "no" branch target, nil when absent.
func (c *ConditionNode) NoTarget() Element {
	if c.no == nil {
		return nil
	}
	return c.no.child
}

// NoAlignNext writes the `align-next=no` render parameter, a cosmetic hint
// keeping the auto edge of this condition from colliding with a directly
// following condition.
func (c *ConditionNode) NoAlignNext() {
	c.SetParam("align-next", "no")
}
