package compiler

import (
	"go/ast"
	"strings"

	"github.com/cdfmlr/goflowchart/pkg/flowchart"
)

// parseIf builds a condition subgraph. Both branches become tails of the
// group: an occupied branch contributes its exits, an empty one its branch
// relay, so either way the statement after the if receives both paths.
// An `else if` chains recursively off the "no" branch.
func (c *compiler) parseIf(s *ast.IfStmt) parsed {
	cond := c.factory.Condition("if " + c.condText(s.Init, s.Cond))
	group := flowchart.NewGroup(cond)

	if body := c.parseBody(s.Body.List); body != nil {
		cond.ConnectYes(body)
		group.ExtendTails(body.Tails()...)
	} else {
		group.AppendTail(cond.YesBranch())
	}

	switch e := s.Else.(type) {
	case nil:
		group.AppendTail(cond.NoBranch())
	case *ast.BlockStmt:
		if body := c.parseBody(e.List); body != nil {
			cond.ConnectNo(body)
			group.ExtendTails(body.Tails()...)
		} else {
			group.AppendTail(cond.NoBranch())
		}
	case *ast.IfStmt:
		elif := c.parseIf(e)
		cond.ConnectNo(elif.el)
		if sub, ok := elif.el.(*flowchart.NodesGroup); ok {
			group.ExtendTails(sub.Tails()...)
		} else {
			group.AppendTail(elif.el)
		}
	}

	if c.opts.Simplify && s.Else == nil {
		c.simplifyIf(group, cond)
	}

	p := parsed{el: group}
	if head, ok := group.Head().(*flowchart.ConditionNode); ok && s.Else == nil {
		p.align = head
	}
	return p
}

func (c *compiler) condText(init ast.Stmt, cond ast.Expr) string {
	if cond == nil {
		return c.text(init)
	}
	if init == nil {
		return c.text(cond)
	}
	return c.text(init) + "; " + c.text(cond)
}

// simplifyIf collapses an else-less conditional whose body is exactly one
// plain box into a single "{body} if {cond}" operation. The merged node
// takes over the condition's identifier so existing edges into the
// construct stay valid. Conditional or multi-box bodies are left alone.
func (c *compiler) simplifyIf(group *flowchart.NodesGroup, cond *flowchart.ConditionNode) {
	if cond.NoTarget() != nil {
		return
	}
	leaf, ok := soloLeaf(cond.YesTarget())
	if !ok || len(leaf.Connections()) != 0 {
		return
	}

	merged := c.factory.Operation(leaf.Text() + " if " + strings.TrimPrefix(cond.Text(), "if "))
	merged.Rename(cond.Name())
	group.SetHead(merged)
	group.ResetTails(merged)
}

// soloLeaf unwraps a branch child down to its single plain box. The body
// parser always hands branches a group, so a one-statement body arrives as
// a group whose head is the box and whose sole tail is that same box.
func soloLeaf(el flowchart.Element) (*flowchart.Node, bool) {
	switch v := el.(type) {
	case *flowchart.Node:
		return v, true
	case *flowchart.NodesGroup:
		head, ok := v.Head().(*flowchart.Node)
		if !ok {
			return nil, false
		}
		tails := v.Tails()
		if len(tails) != 1 || tails[0] != flowchart.Element(head) {
			return nil, false
		}
		return head, true
	}
	return nil, false
}
