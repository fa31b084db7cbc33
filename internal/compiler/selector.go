package compiler

import (
	"go/ast"
	"strings"
)

// fieldTarget is the function a dotted field path resolved to.
type fieldTarget struct {
	name string
	typ  *ast.FuncType
	body *ast.BlockStmt
}

// findField resolves a dotted path against the parsed source. The first
// segment names a top-level function, or the first two a receiver type and
// its method; every remaining segment descends into a closure assigned to a
// variable of that name. Any unresolved segment yields ok=false.
func findField(file *ast.File, snippet bool, field string) (fieldTarget, bool) {
	path := splitField(field)
	if len(path) == 0 {
		return fieldTarget{}, false
	}

	decls := file.Decls
	if snippet {
		// Inside a snippet only closures exist; resolve the whole path
		// against the wrapper body.
		if fn, ok := wrapperFunc(file); ok {
			return descend(fieldTarget{name: "", body: fn.Body}, path)
		}
		return fieldTarget{}, false
	}

	for _, decl := range decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		if fn.Recv == nil && fn.Name.Name == path[0] {
			return descend(fieldTarget{name: path[0], typ: fn.Type, body: fn.Body}, path[1:])
		}
		if fn.Recv != nil && len(path) >= 2 &&
			len(fn.Recv.List) > 0 &&
			receiverTypeName(fn.Recv.List[0].Type) == path[0] &&
			fn.Name.Name == path[1] {
			target := fieldTarget{name: path[0] + "." + path[1], typ: fn.Type, body: fn.Body}
			return descend(target, path[2:])
		}
	}
	return fieldTarget{}, false
}

func splitField(field string) []string {
	var path []string
	for _, seg := range strings.Split(field, ".") {
		if seg = strings.TrimSpace(seg); seg != "" {
			path = append(path, seg)
		}
	}
	return path
}

func wrapperFunc(file *ast.File) (*ast.FuncDecl, bool) {
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Body != nil {
			return fn, true
		}
	}
	return nil, false
}

// descend follows the remaining path segments through closures assigned to
// variables: `seg := func(...) {...}` or `var seg = func(...) {...}`.
func descend(target fieldTarget, rest []string) (fieldTarget, bool) {
	for _, seg := range rest {
		lit, ok := closureNamed(target.body, seg)
		if !ok {
			return fieldTarget{}, false
		}
		name := seg
		if target.name != "" {
			name = target.name + "." + seg
		}
		target = fieldTarget{name: name, typ: lit.Type, body: lit.Body}
	}
	return target, true
}

func closureNamed(body *ast.BlockStmt, name string) (*ast.FuncLit, bool) {
	if body == nil {
		return nil, false
	}
	for _, s := range body.List {
		switch st := s.(type) {
		case *ast.AssignStmt:
			for i, lhs := range st.Lhs {
				id, ok := lhs.(*ast.Ident)
				if !ok || id.Name != name || i >= len(st.Rhs) {
					continue
				}
				if lit, ok := st.Rhs[i].(*ast.FuncLit); ok {
					return lit, true
				}
			}
		case *ast.DeclStmt:
			gen, ok := st.Decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gen.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for i, n := range vs.Names {
					if n.Name != name || i >= len(vs.Values) {
						continue
					}
					if lit, ok := vs.Values[i].(*ast.FuncLit); ok {
						return lit, true
					}
				}
			}
		}
	}
	return nil, false
}
