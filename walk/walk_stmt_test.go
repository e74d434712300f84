package walk

import (
	"testing"

	"sablec/ast"
	"sablec/common"
	"sablec/report"
	"sablec/types"

	"github.com/go-test/deep"
)

func TestLetDeclaration(t *testing.T) {
	w := NewWalker()

	if err := w.Analyze(program(letDecl(1, "a", "i32", intLit(1, "42")))); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	sym, ok := w.lookup("a")
	if !ok {
		t.Fatal("`a` was not declared")
	}

	want := &common.Symbol{
		Name:        "a",
		DefSpan:     report.SpanOnLine(1),
		Type:        types.TypeInfo{Kind: types.KindInt, Width: 32, Signed: true},
		DefKind:     common.DefKindValue,
		Initialized: true,
	}

	if diff := deep.Equal(sym, want); diff != nil {
		t.Error(diff)
	}
}

func TestLetInference(t *testing.T) {
	cases := []struct {
		name string
		init ast.ASTExpr
		want types.TypeInfo
	}{
		{"int", intLit(1, "42"), types.IntLit},
		{"float", floatLit(1, "3.14"), types.FloatLit},
		{"string", strLit(1, "hi"), types.String},
		{"bool", boolLit(1, "true"), types.Bool},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWalker()

			if err := w.Analyze(program(letDecl(1, "a", "", c.init))); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			sym, _ := w.lookup("a")
			if !sym.Type.Equals(c.want) {
				t.Errorf("expected `a` to infer %s, got %s", c.want.Repr(), sym.Type.Repr())
			}
		})
	}
}

func TestLetWithoutInitializer(t *testing.T) {
	w := NewWalker()

	// Annotated but uninitialized is legal; the symbol is simply not
	// definitely initialized yet.
	if err := w.Analyze(program(letDecl(1, "a", "i64", nil))); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	sym, _ := w.lookup("a")
	if sym.Initialized {
		t.Error("`a` has no initializer but was marked initialized")
	}

	// Without an annotation there is nothing to infer from.
	err := NewWalker().Analyze(program(letDecl(2, "b", "", nil)))
	expectError(t, err, report.ErrMissingType, 2)
}

func TestDeclarationErrors(t *testing.T) {
	cases := []struct {
		name string
		prog *ast.Program
		kind report.ErrorKind
		line int
	}{
		{
			"duplicate in same scope",
			program(
				letDecl(1, "x", "", intLit(1, "1")),
				letDecl(2, "x", "", intLit(2, "2")),
			),
			report.ErrDuplicateSymbol, 2,
		},
		{
			"var requires initializer",
			program(varDecl(1, "y", "i32", nil)),
			report.ErrMissingInitializer, 1,
		},
		{
			"const requires initializer",
			program(constDecl(1, "z", "bool", nil)),
			report.ErrMissingInitializer, 1,
		},
		{
			"annotation mismatch",
			program(varDecl(3, "y", "i32", strLit(3, "hello"))),
			report.ErrTypeMismatch, 3,
		},
		{
			"width mismatch",
			program(letDecl(1, "a", "i64", intLit(1, "1"))),
			report.ErrTypeMismatch, 1,
		},
		{
			"signedness mismatch",
			program(letDecl(1, "a", "u32", intLit(1, "1"))),
			report.ErrTypeMismatch, 1,
		},
		{
			"unknown annotation",
			program(letDecl(1, "a", "i7", intLit(1, "1"))),
			report.ErrUnknownType, 1,
		},
		{
			"void initializer",
			program(
				fnDef(1, "f", "void", nil),
				letDecl(2, "a", "", call(2, "f")),
			),
			report.ErrTypeMismatch, 2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expectError(t, NewWalker().Analyze(c.prog), c.kind, c.line)
		})
	}
}

func TestMutabilityFlags(t *testing.T) {
	w := NewWalker()

	err := w.Analyze(program(
		letDecl(1, "a", "", intLit(1, "1")),
		varDecl(2, "b", "", intLit(2, "2")),
		constDecl(3, "c", "", intLit(3, "3")),
	))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for _, c := range []struct {
		name    string
		mutable bool
		defKind int
	}{
		{"a", false, common.DefKindValue},
		{"b", true, common.DefKindValue},
		{"c", false, common.DefKindConst},
	} {
		sym, _ := w.lookup(c.name)
		if sym.Type.Mutable != c.mutable {
			t.Errorf("expected `%s` mutability to be %v", c.name, c.mutable)
		}

		if sym.DefKind != c.defKind {
			t.Errorf("expected `%s` to have def kind %d, got %d", c.name, c.defKind, sym.DefKind)
		}
	}
}

// -----------------------------------------------------------------------------

func TestBlockShadowing(t *testing.T) {
	// An inner scope may rebind an outer name with a different type and the
	// binding dies with the scope.
	w := NewWalker()

	err := w.Analyze(program(
		letDecl(1, "x", "i32", intLit(1, "1")),
		block(2,
			letDecl(3, "x", "string", strLit(3, "shadowed")),
			letDecl(4, "y", "", binary(4, "==", ident(4, "x"), strLit(4, "shadowed"))),
		),
	))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	sym, ok := w.lookup("x")
	if !ok || sym.Type.Kind != types.KindInt {
		t.Error("the outer `x` binding did not survive the block")
	}

	if _, ok := w.lookup("y"); ok {
		t.Error("`y` escaped its block scope")
	}
}

func TestReturnStatements(t *testing.T) {
	cases := []struct {
		name string
		prog *ast.Program
		kind report.ErrorKind
		line int
	}{
		{
			"outside function",
			program(&ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(1)}),
			report.ErrReturnOutsideFunction, 1,
		},
		{
			"bare return from value function",
			program(fnDef(1, "f", "i32", nil,
				&ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(2)},
			)),
			report.ErrTypeMismatch, 2,
		},
		{
			"value return from void function",
			program(fnDef(1, "f", "void", nil,
				&ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(2), Value: intLit(2, "1")},
			)),
			report.ErrTypeMismatch, 2,
		},
		{
			"return type mismatch",
			program(fnDef(1, "f", "i32", nil,
				&ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(2), Value: boolLit(2, "true")},
			)),
			report.ErrTypeMismatch, 2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expectError(t, NewWalker().Analyze(c.prog), c.kind, c.line)
		})
	}

	// Matching returns are accepted, bare and valued alike.
	err := NewWalker().Analyze(program(
		fnDef(1, "f", "void", nil, &ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(2)}),
		fnDef(3, "g", "i32", nil, &ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(4), Value: intLit(4, "0")}),
	))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}
