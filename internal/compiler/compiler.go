// Package compiler turns Go source text into a flowchart graph. It parses
// the source with go/parser, walks the statement list, and emits one graph
// element per construct: plain statements become single boxes, conditionals
// and loops become condition subgraphs, returns become sealed output/end
// pairs. The resulting graph renders as flowchart.js DSL via pkg/flowchart.
package compiler

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/cdfmlr/goflowchart/pkg/flowchart"
)

// Options controls how source is translated.
type Options struct {
	// Field selects one function to chart, as a dotted path: "Foo" for a
	// top-level function, "Bar.Method" for a method, "Foo.inner" for a
	// closure assigned to a variable inside Foo. Empty charts the whole
	// source.
	Field string

	// Inner charts the selected function's body only, without the
	// start/input/end frame around it. Ignored when Field is empty.
	Inner bool

	// Simplify collapses one-statement conditionals and loops into single
	// "{body} if {cond}" / "{body} while {cond}" boxes.
	Simplify bool

	// CondsAlign marks directly adjacent else-less conditionals with the
	// align-next=no render hint so flowchart.js stacks them vertically.
	CondsAlign bool
}

// Compile parses src, either a full Go file or a bare statement snippet,
// and builds its flowchart. A Field that resolves to nothing yields a valid
// empty flowchart, not an error; source that does not parse at all is the
// only error case.
func Compile(src string, opts Options) (*flowchart.Flowchart, error) {
	c := &compiler{
		fset:    token.NewFileSet(),
		factory: flowchart.NewFactory(),
		opts:    opts,
	}

	file, snippet, err := parseSource(c.fset, src)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	if opts.Field != "" {
		target, ok := findField(file, snippet, opts.Field)
		if !ok {
			return flowchart.New(nil), nil
		}
		if opts.Inner {
			return flowchart.New(asElement(c.parseBody(bodyStmts(target.body)))), nil
		}
		return flowchart.New(c.funcGroup(target.name, target.typ, target.body)), nil
	}

	if snippet {
		return flowchart.New(asElement(c.parseBody(snippetStmts(file)))), nil
	}
	return flowchart.New(asElement(c.parseDecls(file.Decls))), nil
}

// parseSource parses src as a file, then retries with a synthetic package
// clause (bare declaration lists) and a synthetic wrapper function (bare
// statement lists). On total failure the original file-level error is
// reported.
func parseSource(fset *token.FileSet, src string) (*ast.File, bool, error) {
	file, err := parser.ParseFile(fset, "src.go", src, parser.SkipObjectResolution)
	if err == nil {
		return file, false, nil
	}

	prefixed := "package main\n\n" + src
	if file, perr := parser.ParseFile(fset, "src.go", prefixed, parser.SkipObjectResolution); perr == nil {
		return file, false, nil
	}

	wrapped := "package main\n\nfunc _() {\n" + src + "\n}\n"
	if file, werr := parser.ParseFile(fset, "src.go", wrapped, parser.SkipObjectResolution); werr == nil {
		return file, true, nil
	}
	return nil, false, err
}

// snippetStmts digs the original statements back out of the synthetic
// wrapper function.
func snippetStmts(file *ast.File) []ast.Stmt {
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Body != nil {
			return fn.Body.List
		}
	}
	return nil
}

func bodyStmts(body *ast.BlockStmt) []ast.Stmt {
	if body == nil {
		return nil
	}
	return body.List
}

// asElement narrows a possibly-nil group to a graph root. A nil *NodesGroup
// must become a nil interface, or the empty chart would render a panic
// instead of "".
func asElement(g *flowchart.NodesGroup) flowchart.Element {
	if g == nil {
		return nil
	}
	return g
}

// compiler carries the per-compile state: the position table of the parsed
// source and the node factory whose ids are private to this build.
type compiler struct {
	fset    *token.FileSet
	factory *flowchart.Factory
	opts    Options
}

// parsed is one translated statement: its graph element plus, when it is an
// else-less conditional, the condition node eligible for alignment hints.
type parsed struct {
	el    flowchart.Element
	align *flowchart.ConditionNode
}

// parseBody translates a statement list into one group: the first element
// is the head, each element connects to the next, and the tails are the
// exits of the last one. An empty or all-skipped list yields nil.
func (c *compiler) parseBody(stmts []ast.Stmt) *flowchart.NodesGroup {
	items := make([]parsed, 0, len(stmts))
	for _, s := range stmts {
		if p := c.parseStmt(s); p.el != nil {
			items = append(items, p)
		}
	}
	return c.chain(items)
}

// parseDecls translates top-level declarations the same way a statement
// list is: functions become framed subgraphs, other declarations single
// operation boxes.
func (c *compiler) parseDecls(decls []ast.Decl) *flowchart.NodesGroup {
	items := make([]parsed, 0, len(decls))
	for _, decl := range decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			items = append(items, parsed{el: c.funcGroup(declName(d), d.Type, d.Body)})
		case *ast.GenDecl:
			if d.Tok == token.IMPORT {
				continue
			}
			items = append(items, parsed{el: c.factory.Operation(c.text(d))})
		}
	}
	return c.chain(items)
}

func (c *compiler) chain(items []parsed) *flowchart.NodesGroup {
	if len(items) == 0 {
		return nil
	}
	if c.opts.CondsAlign {
		for i := 0; i+1 < len(items); i++ {
			if items[i].align != nil && items[i+1].align != nil {
				items[i].align.NoAlignNext()
			}
		}
	}

	group := flowchart.NewGroup(items[0].el)
	prev := items[0].el
	for _, it := range items[1:] {
		prev.Connect(it.el)
		prev = it.el
	}
	switch last := prev.(type) {
	case *flowchart.NodesGroup:
		group.ExtendTails(last.Tails()...)
	default:
		group.AppendTail(prev)
	}
	return group
}

// parseStmt dispatches one statement to its construct handler. Statements
// with no control-flow structure of their own degrade to a single box
// carrying their source text.
func (c *compiler) parseStmt(s ast.Stmt) parsed {
	switch st := s.(type) {
	case nil, *ast.EmptyStmt:
		return parsed{}
	case *ast.IfStmt:
		return c.parseIf(st)
	case *ast.ForStmt:
		return c.parseFor(st)
	case *ast.RangeStmt:
		return c.parseRange(st)
	case *ast.SwitchStmt:
		return c.parseSwitch(st)
	case *ast.TypeSwitchStmt:
		return c.parseTypeSwitch(st)
	case *ast.ReturnStmt:
		return c.parseReturn(st)
	case *ast.BranchStmt:
		return c.parseBranch(st)
	case *ast.ExprStmt:
		if call, ok := st.X.(*ast.CallExpr); ok {
			return parsed{el: c.factory.Subroutine(c.text(call))}
		}
		return parsed{el: c.factory.Operation(c.text(st))}
	case *ast.GoStmt, *ast.DeferStmt:
		return parsed{el: c.factory.Subroutine(c.text(st))}
	case *ast.AssignStmt:
		if name, lit, ok := closureAssign(st); ok {
			return parsed{el: c.funcGroup(name, lit.Type, lit.Body)}
		}
		return parsed{el: c.factory.Operation(c.text(st))}
	case *ast.BlockStmt:
		if g := c.parseBody(st.List); g != nil {
			return parsed{el: g}
		}
		return parsed{}
	case *ast.LabeledStmt:
		return c.parseStmt(st.Stmt)
	default:
		return parsed{el: c.factory.Operation(c.text(st))}
	}
}

// closureAssign recognizes `name := func(...) {...}` so the closure charts
// as a framed function subgraph rather than one opaque box.
func closureAssign(s *ast.AssignStmt) (string, *ast.FuncLit, bool) {
	if len(s.Lhs) != 1 || len(s.Rhs) != 1 {
		return "", nil, false
	}
	id, ok := s.Lhs[0].(*ast.Ident)
	if !ok {
		return "", nil, false
	}
	lit, ok := s.Rhs[0].(*ast.FuncLit)
	if !ok {
		return "", nil, false
	}
	return id.Name, lit, true
}
