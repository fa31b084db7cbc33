package compiler

import (
	"go/ast"
	"strings"

	"github.com/cdfmlr/goflowchart/pkg/flowchart"
)

// parseSwitch lowers a switch to a chain of conditions: each case becomes
// "if {subject} match case {exprs}" hanging off the previous case's "no"
// branch, with the default clause (or an empty relay) closing the chain.
// A tagless switch keeps each case's boolean expressions as the condition.
func (c *compiler) parseSwitch(s *ast.SwitchStmt) parsed {
	subject := ""
	if s.Tag != nil {
		subject = c.text(s.Tag)
	}
	return c.matchChain(s.Init, subject, s.Body.List)
}

// parseTypeSwitch lowers a type switch the same way, with the guard
// (`v := x.(type)`) as the match subject.
func (c *compiler) parseTypeSwitch(s *ast.TypeSwitchStmt) parsed {
	return c.matchChain(s.Init, c.text(s.Assign), s.Body.List)
}

func (c *compiler) matchChain(init ast.Stmt, subject string, clauses []ast.Stmt) parsed {
	var (
		head  flowchart.Element
		prev  *flowchart.ConditionNode
		tails []flowchart.Element
		dflt  *ast.CaseClause
	)

	var initOp *flowchart.Node
	if init != nil {
		initOp = c.factory.Operation(c.text(init))
		head = initOp
	}

	for _, raw := range clauses {
		clause, ok := raw.(*ast.CaseClause)
		if !ok {
			continue
		}
		if clause.List == nil {
			dflt = clause
			continue
		}

		cond := c.factory.Condition(c.caseText(subject, clause.List))
		switch {
		case prev != nil:
			prev.ConnectNo(cond)
		case initOp != nil:
			initOp.Connect(cond)
		default:
			head = cond
		}

		if body := c.parseBody(clause.Body); body != nil {
			cond.ConnectYes(body)
			tails = append(tails, body.Tails()...)
		} else {
			tails = append(tails, cond.YesBranch())
		}
		prev = cond
	}

	// Degenerate switches (default only, or no clauses at all) have no
	// branching left; chart whatever remains in sequence.
	if prev == nil {
		return c.degenerateSwitch(initOp, dflt)
	}

	if dflt != nil {
		if body := c.parseBody(dflt.Body); body != nil {
			prev.ConnectNo(body)
			tails = append(tails, body.Tails()...)
		} else {
			tails = append(tails, prev.NoBranch())
		}
	} else {
		tails = append(tails, prev.NoBranch())
	}

	group := flowchart.NewGroup(head)
	group.ExtendTails(tails...)
	return parsed{el: group}
}

func (c *compiler) degenerateSwitch(initOp *flowchart.Node, dflt *ast.CaseClause) parsed {
	var body *flowchart.NodesGroup
	if dflt != nil {
		body = c.parseBody(dflt.Body)
	}
	switch {
	case initOp != nil && body != nil:
		initOp.Connect(body)
		group := flowchart.NewGroup(initOp)
		group.ExtendTails(body.Tails()...)
		return parsed{el: group}
	case initOp != nil:
		return parsed{el: initOp}
	case body != nil:
		return parsed{el: body}
	default:
		return parsed{}
	}
}

// caseText labels one case condition. Under a match subject the case
// patterns stay comma-listed; in a tagless switch each expression is its
// own boolean alternative, so they join with "||".
func (c *compiler) caseText(subject string, exprs []ast.Expr) string {
	if subject == "" {
		parts := make([]string, 0, len(exprs))
		for _, e := range exprs {
			parts = append(parts, c.text(e))
		}
		return "if " + strings.Join(parts, " || ")
	}
	return "if " + subject + " match case " + c.exprList(exprs)
}
