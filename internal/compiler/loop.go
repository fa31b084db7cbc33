package compiler

import (
	"fmt"
	"go/ast"
	"strings"

	"github.com/cdfmlr/goflowchart/pkg/flowchart"
)

func (c *compiler) parseFor(s *ast.ForStmt) parsed {
	return c.loopGroup(forHeaderText(c, s), s.Body)
}

func (c *compiler) parseRange(s *ast.RangeStmt) parsed {
	return c.loopGroup(rangeHeaderText(c, s), s.Body)
}

// loopGroup builds a loop subgraph: the header becomes a condition whose
// "yes" branch enters the body, every body exit wires back to the condition
// with a "left" layout hint, and the "no" branch is the group's only tail.
// An empty body still gets a box so the back-edge has somewhere to live.
func (c *compiler) loopGroup(header string, body *ast.BlockStmt) parsed {
	cond := c.factory.Condition(header)
	group := flowchart.NewGroup(cond)

	if bodyGroup := c.parseBody(bodyStmts(body)); bodyGroup != nil {
		cond.ConnectYes(bodyGroup)
		for _, tail := range bodyGroup.Tails() {
			if tail != nil {
				connectBack(tail, cond)
			}
		}
	} else {
		noop := c.factory.Subroutine("no-op")
		cond.ConnectYes(noop)
		connectBack(noop, cond)
	}

	group.AppendTail(cond.NoBranch())

	if c.opts.Simplify {
		c.simplifyLoop(group, cond)
	}
	return parsed{el: group}
}

// simplifyLoop collapses a loop whose body is exactly one plain box, with
// the back-edge as its only connection, into a "{body} while {cond}"
// operation carrying the condition's identifier.
func (c *compiler) simplifyLoop(group *flowchart.NodesGroup, cond *flowchart.ConditionNode) {
	leaf, ok := soloLeaf(cond.YesTarget())
	if !ok {
		return
	}
	conns := leaf.Connections()
	if len(conns) != 1 || conns[0].Target != flowchart.Element(cond) {
		return
	}

	merged := c.factory.Operation(leaf.Text() + " while " + strings.TrimPrefix(cond.Text(), "for "))
	merged.Rename(cond.Name())
	group.SetHead(merged)
	group.ResetTails(merged)
}

// connectBack wires a body exit to the loop condition. Plain boxes carry
// the layout hint as their exit direction; branch relays and groups take it
// as an edge label, since only concrete nodes own an exit direction.
func connectBack(tail flowchart.Element, cond *flowchart.ConditionNode) {
	if n, ok := tail.(*flowchart.Node); ok {
		n.SetExitDirection("left")
		n.Connect(cond)
		return
	}
	tail.Connect(cond, "left")
}

// forHeaderText keeps the three-clause form only when a clause besides the
// condition is present, so `for a < 3` does not grow stray semicolons.
func forHeaderText(c *compiler, s *ast.ForStmt) string {
	if s.Init == nil && s.Post == nil {
		if s.Cond == nil {
			return "for"
		}
		return "for " + c.text(s.Cond)
	}
	var init, cond, post string
	if s.Init != nil {
		init = c.text(s.Init)
	}
	if s.Cond != nil {
		cond = c.text(s.Cond)
	}
	if s.Post != nil {
		post = c.text(s.Post)
	}
	return fmt.Sprintf("for %s; %s; %s", init, cond, post)
}

func rangeHeaderText(c *compiler, s *ast.RangeStmt) string {
	if s.Key == nil {
		return "for range " + c.text(s.X)
	}
	lhs := c.text(s.Key)
	if s.Value != nil {
		lhs += ", " + c.text(s.Value)
	}
	return fmt.Sprintf("for %s %s range %s", lhs, s.Tok, c.text(s.X))
}
