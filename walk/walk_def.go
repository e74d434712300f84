package walk

import (
	"sablec/ast"
	"sablec/common"
	"sablec/report"
	"sablec/types"
)

// walkFuncDef walks a function definition.
func (w *Walker) walkFuncDef(fd *ast.FuncDef) {
	// Function names may not shadow anything: uniqueness is checked against
	// the entire visible scope chain, not just the current scope, so that a
	// callable name is never silently rebound.
	if _, ok := w.lookup(fd.Name); ok {
		w.error(report.ErrDuplicateSymbol, fd.Span(), "function `%s` conflicts with a visible declaration", fd.Name)
	}

	returnType := w.resolveSpelling(fd.ReturnSpelling, fd.Span())
	if returnType.Kind == types.KindAuto {
		// There is no initializer to infer a signature from.
		w.error(report.ErrMissingType, fd.Span(), "return type of `%s` cannot be `auto`", fd.Name)
	}

	paramTypes := make([]types.TypeInfo, len(fd.Params))
	for i, param := range fd.Params {
		pt := w.resolveSpelling(param.TypeSpelling, param.Span())
		if pt.Kind == types.KindAuto {
			w.error(report.ErrMissingType, param.Span(), "parameter `%s` cannot be `auto`", param.Name)
		}

		paramTypes[i] = pt
	}

	w.declare(&common.Symbol{
		Name:    fd.Name,
		DefSpan: fd.Span(),
		Type:    returnType,
		Signature: &types.FuncType{
			ParamTypes: paramTypes,
			ReturnType: returnType,
		},
		DefKind:     common.DefKindFunc,
		Initialized: true,
	})

	// The body scope must be popped even if walking a statement aborts, so
	// that the scope stack stays balanced for any later reuse of the walker.
	prevReturnType := w.enclosingReturnType
	w.enclosingReturnType = &returnType
	w.pushScope()
	defer func() {
		w.popScope()
		w.enclosingReturnType = prevReturnType
	}()

	// Parameters land in the body scope as initialized value symbols; only
	// this new scope decides parameter name collisions.
	for i, param := range fd.Params {
		psym := &common.Symbol{
			Name:        param.Name,
			DefSpan:     param.Span(),
			Type:        paramTypes[i],
			DefKind:     common.DefKindValue,
			Initialized: true,
		}

		if !w.declare(psym) {
			w.error(report.ErrDuplicateParameter, param.Span(), "multiple parameters named `%s`", param.Name)
		}
	}

	for _, stmt := range fd.Body {
		w.walk(stmt)
	}
}
