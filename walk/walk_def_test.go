package walk

import (
	"testing"

	"sablec/ast"
	"sablec/common"
	"sablec/report"
	"sablec/types"

	"github.com/go-test/deep"
)

func TestFuncDefinition(t *testing.T) {
	w := NewWalker()

	err := w.Analyze(program(
		fnDef(1, "add", "i32", []*ast.Param{param(1, "a", "i32"), param(1, "b", "i32")},
			&ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(2), Value: binary(2, "+", ident(2, "a"), ident(2, "b"))},
		),
	))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	sym, ok := w.lookup("add")
	if !ok {
		t.Fatal("`add` was not declared")
	}

	i32 := types.TypeInfo{Kind: types.KindInt, Width: 32, Signed: true}
	want := &common.Symbol{
		Name:    "add",
		DefSpan: report.SpanOnLine(1),
		Type:    i32,
		Signature: &types.FuncType{
			ParamTypes: []types.TypeInfo{i32, i32},
			ReturnType: i32,
		},
		DefKind:     common.DefKindFunc,
		Initialized: true,
	}

	if diff := deep.Equal(sym, want); diff != nil {
		t.Error(diff)
	}
}

func TestFuncNameConflicts(t *testing.T) {
	cases := []struct {
		name string
		prog *ast.Program
		line int
	}{
		{
			"redefinition",
			program(
				fnDef(1, "f", "void", nil),
				fnDef(2, "f", "void", nil),
			),
			2,
		},
		{
			// Function names are checked against the whole visible chain,
			// unlike value declarations.
			"conflict with value binding",
			program(
				letDecl(1, "f", "i32", intLit(1, "1")),
				fnDef(2, "f", "void", nil),
			),
			2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expectError(t, NewWalker().Analyze(c.prog), report.ErrDuplicateSymbol, c.line)
		})
	}
}

func TestParamHandling(t *testing.T) {
	// Duplicate parameters collide in the body scope only, with their own
	// error kind.
	err := NewWalker().Analyze(program(
		fnDef(1, "f", "void", []*ast.Param{param(1, "n", "i32"), param(1, "n", "bool")}),
	))
	expectError(t, err, report.ErrDuplicateParameter, 1)

	// A parameter may shadow a global of the same name.
	err = NewWalker().Analyze(program(
		letDecl(1, "n", "string", strLit(1, "outer")),
		fnDef(2, "f", "i32", []*ast.Param{param(2, "n", "i32")},
			&ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(3), Value: ident(3, "n")},
		),
	))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestParamsScopedToBody(t *testing.T) {
	w := NewWalker()

	err := w.Analyze(program(
		fnDef(1, "f", "void", []*ast.Param{param(1, "n", "i32")}),
	))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if _, ok := w.lookup("n"); ok {
		t.Error("parameter `n` escaped its function body scope")
	}

	// A later global reference to the parameter name must fail.
	err = w.Analyze(program(letDecl(2, "a", "", ident(2, "n"))))
	expectError(t, err, report.ErrUndeclaredIdentifier, 2)
}

func TestFuncSignatureRestrictions(t *testing.T) {
	cases := []struct {
		name string
		prog *ast.Program
		kind report.ErrorKind
	}{
		{
			"auto return type",
			program(fnDef(1, "f", "auto", nil)),
			report.ErrMissingType,
		},
		{
			"auto parameter type",
			program(fnDef(1, "f", "void", []*ast.Param{param(1, "n", "auto")})),
			report.ErrMissingType,
		},
		{
			"unknown return type",
			program(fnDef(1, "f", "float", nil)),
			report.ErrUnknownType,
		},
		{
			"unknown parameter type",
			program(fnDef(1, "f", "void", []*ast.Param{param(1, "n", "int")})),
			report.ErrUnknownType,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expectError(t, NewWalker().Analyze(c.prog), c.kind, 1)
		})
	}
}

func TestFuncBodyLocalsScoped(t *testing.T) {
	w := NewWalker()

	err := w.Analyze(program(
		fnDef(1, "f", "void", nil,
			letDecl(2, "local", "i32", intLit(2, "1")),
		),
		// The same name is free again at the global scope.
		letDecl(3, "local", "bool", boolLit(3, "true")),
	))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	sym, _ := w.lookup("local")
	if sym.Type.Kind != types.KindBool {
		t.Errorf("expected the global `local` binding, got %s", sym.Type.Repr())
	}
}
