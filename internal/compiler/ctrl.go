package compiler

import (
	"go/ast"

	"github.com/cdfmlr/goflowchart/pkg/flowchart"
)

// parseReturn builds the sealed return shape: output(values) -> end, or a
// bare end for a valueless return. Sealing keeps later statements in the
// enclosing body from chaining onto a path that already left the function.
func (c *compiler) parseReturn(s *ast.ReturnStmt) parsed {
	end := c.factory.End("function return")
	// The end node doubles as the group tail; enclosing bodies reach it
	// directly, so it must refuse connections itself.
	end.Seal()

	head := flowchart.Element(end)
	if len(s.Results) > 0 {
		out := c.factory.Output(c.exprList(s.Results))
		out.Connect(end)
		head = out
	}

	group := flowchart.NewGroup(head, end)
	group.Seal()
	return parsed{el: group}
}

// parseBranch charts break, continue and goto as sealed boxes. The jump
// target is not wired up; the box records that flow leaves here.
func (c *compiler) parseBranch(s *ast.BranchStmt) parsed {
	sub := c.factory.Subroutine(c.text(s))
	sub.Seal()
	return parsed{el: sub}
}
