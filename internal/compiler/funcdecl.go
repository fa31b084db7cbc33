package compiler

import (
	"go/ast"
	"strings"

	"github.com/cdfmlr/goflowchart/pkg/flowchart"
)

// funcGroup frames a function as start -> input(params) -> body -> end.
// The start and end boxes carry the function name; an empty body wires the
// input box straight to the end.
func (c *compiler) funcGroup(name string, typ *ast.FuncType, body *ast.BlockStmt) *flowchart.NodesGroup {
	start := c.factory.Start(name)
	args := c.factory.Input(paramNames(typ))
	start.Connect(args)

	bodyGroup := c.parseBody(bodyStmts(body))
	end := c.factory.End(name)

	if bodyGroup != nil {
		args.Connect(bodyGroup)
		bodyGroup.Connect(end)
	} else {
		args.Connect(end)
	}
	return flowchart.NewGroup(start, end)
}

// declName labels a function declaration, qualifying methods with their
// receiver type: "Reader.ReadAll".
func declName(fn *ast.FuncDecl) string {
	name := fn.Name.Name
	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		if recv := receiverTypeName(fn.Recv.List[0].Type); recv != "" {
			return recv + "." + name
		}
	}
	return name
}

// receiverTypeName unwraps pointers and type parameter lists down to the
// receiver's base type identifier.
func receiverTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverTypeName(t.X)
	case *ast.IndexExpr:
		return receiverTypeName(t.X)
	case *ast.IndexListExpr:
		return receiverTypeName(t.X)
	default:
		return ""
	}
}

// paramNames lists the parameter names of a signature for the input box,
// marking variadics with the "..." suffix. Unnamed parameters fall back to
// their type text.
func paramNames(typ *ast.FuncType) string {
	if typ == nil || typ.Params == nil {
		return ""
	}
	var parts []string
	for _, field := range typ.Params.List {
		_, variadic := field.Type.(*ast.Ellipsis)
		if len(field.Names) == 0 {
			parts = append(parts, typeText(field.Type))
			continue
		}
		for _, n := range field.Names {
			name := n.Name
			if variadic {
				name += "..."
			}
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}

func typeText(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeText(t.X)
	case *ast.SelectorExpr:
		return typeText(t.X) + "." + t.Sel.Name
	case *ast.Ellipsis:
		return typeText(t.Elt) + "..."
	default:
		return ""
	}
}
