package walk

import (
	"sablec/ast"
	"sablec/common"
	"sablec/report"
	"sablec/types"
)

// declSpec carries the per-keyword behavior of the three value declaration
// forms: everything else about them is shared.
type declSpec struct {
	label       string // the declaring keyword, for diagnostics
	defKind     int
	mutable     bool
	requireInit bool
}

var (
	letSpec   = declSpec{label: "let", defKind: common.DefKindValue}
	varSpec   = declSpec{label: "var", defKind: common.DefKindValue, mutable: true, requireInit: true}
	constSpec = declSpec{label: "const", defKind: common.DefKindConst, requireInit: true}
)

// walkLetDecl walks a `let` declaration.
func (w *Walker) walkLetDecl(ld *ast.LetDecl) {
	w.declareValue(ld.Span(), ld.Name, ld.TypeSpelling, ld.Initializer, letSpec)
}

// walkVarDecl walks a `var` declaration.
func (w *Walker) walkVarDecl(vd *ast.VarDecl) {
	w.declareValue(vd.Span(), vd.Name, vd.TypeSpelling, vd.Initializer, varSpec)
}

// walkConstDecl walks a `const` declaration.
func (w *Walker) walkConstDecl(cd *ast.ConstDecl) {
	w.declareValue(cd.Span(), cd.Name, cd.TypeSpelling, cd.Initializer, constSpec)
}

// declareValue implements the declaration algorithm shared by let, var, and
// const bindings.
func (w *Walker) declareValue(span *report.TextSpan, name, typeSpelling string, init ast.ASTExpr, spec declSpec) {
	// Only the current scope blocks redeclaration; shadowing an outer binding
	// is name resolution, not a collision.
	if _, ok := w.lookupCurrent(name); ok {
		w.error(report.ErrDuplicateSymbol, span, "`%s` is already declared in this scope", name)
	}

	declared := types.Auto
	if typeSpelling != "" {
		declared = w.resolveSpelling(typeSpelling, span)
	}

	if init == nil {
		if spec.requireInit {
			w.error(report.ErrMissingInitializer, span, "%s declaration of `%s` requires an initializer", spec.label, name)
		}

		// An uninitialized let must carry a concrete annotation: inference
		// has nothing to work from.
		if declared.Kind == types.KindAuto {
			w.error(report.ErrMissingType, span, "`%s` needs a type annotation or an initializer", name)
		}
	} else {
		initType := w.walkExpr(init)

		if initType.Kind == types.KindVoid {
			w.error(report.ErrTypeMismatch, init.Span(), "initializer of `%s` yields no value", name)
		}

		if declared.Kind == types.KindAuto {
			declared = initType
		} else if !types.Compatible(declared, initType) {
			w.error(
				report.ErrTypeMismatch,
				span,
				"cannot initialize `%s` of type %s with a value of type %s",
				name,
				declared.Repr(),
				initType.Repr(),
			)
		}
	}

	declared.Mutable = spec.mutable

	w.declare(&common.Symbol{
		Name:        name,
		DefSpan:     span,
		Type:        declared,
		DefKind:     spec.defKind,
		Initialized: init != nil,
	})
}

// -----------------------------------------------------------------------------

// walkReturnStmt walks a return statement.
func (w *Walker) walkReturnStmt(rs *ast.ReturnStmt) {
	if w.enclosingReturnType == nil {
		w.error(report.ErrReturnOutsideFunction, rs.Span(), "return statement outside of a function body")
	}

	rtype := *w.enclosingReturnType

	if rs.Value == nil {
		if rtype.Kind != types.KindVoid {
			w.error(report.ErrTypeMismatch, rs.Span(), "function must return a value of type %s", rtype.Repr())
		}

		return
	}

	valueType := w.walkExpr(rs.Value)

	if rtype.Kind == types.KindVoid {
		w.error(report.ErrTypeMismatch, rs.Value.Span(), "void function cannot return a value")
	}

	if !types.Compatible(rtype, valueType) {
		w.error(
			report.ErrTypeMismatch,
			rs.Value.Span(),
			"cannot return %s from a function returning %s",
			valueType.Repr(),
			rtype.Repr(),
		)
	}
}

// walkBlock walks a freestanding block statement, which opens an anonymous
// lexical scope.
func (w *Walker) walkBlock(b *ast.Block) {
	w.pushScope()
	defer w.popScope()

	for _, stmt := range b.Stmts {
		w.walk(stmt)
	}
}
