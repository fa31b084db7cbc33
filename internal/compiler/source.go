package compiler

import (
	"bytes"
	"go/ast"
	"go/printer"
	"strings"
)

// text renders an AST node back to source and collapses it onto one line,
// since DSL label text may not contain newlines. node is any printable
// go/ast node (statement, expression, declaration).
func (c *compiler) text(node any) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, c.fset, node); err != nil {
		return ""
	}
	return oneline(buf.String())
}

func (c *compiler) exprList(exprs []ast.Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, c.text(e))
	}
	return strings.Join(parts, ", ")
}

// oneline squeezes all whitespace runs, including newlines and the
// printer's indentation, into single spaces.
func oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
