package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
)

// Format renders cfg as CUE source that Parse accepts.
func Format(cfg Config) ([]byte, error) {
	v := cuecontext.New().Encode(cfg)
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	switch n := v.Syntax(cue.Concrete(true)).(type) {
	case *ast.File:
		return format.Node(n)
	case *ast.StructLit:
		return format.Node(&ast.File{Decls: n.Elts})
	default:
		return nil, fmt.Errorf("encode config: unexpected syntax %T", n)
	}
}
