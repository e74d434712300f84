package walk

import (
	"sablec/ast"
	"sablec/common"
	"sablec/report"
	"sablec/types"
)

// walkExpr resolves the static type of an expression subtree.
func (w *Walker) walkExpr(expr ast.ASTExpr) types.TypeInfo {
	switch v := expr.(type) {
	case *ast.Literal:
		return walkLiteral(v)
	case *ast.Identifier:
		sym, ok := w.lookup(v.Name)
		if !ok {
			w.error(report.ErrUndeclaredIdentifier, v.Span(), "`%s` is not declared in any visible scope", v.Name)
		}

		if sym.DefKind == common.DefKindFunc {
			w.error(report.ErrTypeMismatch, v.Span(), "function `%s` cannot be used as a value", v.Name)
		}

		return sym.Type
	case *ast.UnaryOp:
		return w.walkUnaryOp(v)
	case *ast.BinaryOp:
		return w.walkBinaryOp(v)
	case *ast.Call:
		return w.walkCall(v)
	default:
		w.ice(report.ErrUnhandledNodeKind, expr.Span(), "no handler for expression of type %T", expr)
		return types.TypeInfo{} // unreachable
	}
}

// walkLiteral maps a literal to its canonical builtin type.
func walkLiteral(lit *ast.Literal) types.TypeInfo {
	switch lit.Kind {
	case ast.IntLit:
		return types.IntLit
	case ast.FloatLit:
		return types.FloatLit
	case ast.StringLit:
		return types.String
	default:
		return types.Bool
	}
}

// -----------------------------------------------------------------------------

// The operator classes of the closed operator set.
var (
	arithOps   = map[string]struct{}{"+": {}, "-": {}, "*": {}, "/": {}, "%": {}}
	compareOps = map[string]struct{}{"==": {}, "!=": {}, "<": {}, ">": {}, "<=": {}, ">=": {}}
	logicalOps = map[string]struct{}{"&&": {}, "||": {}}
)

// walkUnaryOp walks a unary operator application.
func (w *Walker) walkUnaryOp(uop *ast.UnaryOp) types.TypeInfo {
	operand := w.walkExpr(uop.Operand)

	switch uop.Op {
	case "-":
		if !operand.IsNumeric() || (operand.Kind == types.KindInt && !operand.Signed) {
			w.error(report.ErrOperandTypeMismatch, uop.Span(), "operator `-` requires a signed numeric operand, not %s", operand.Repr())
		}

		return operand
	case "!":
		if operand.Kind != types.KindBool {
			w.error(report.ErrOperandTypeMismatch, uop.Span(), "operator `!` requires a bool operand, not %s", operand.Repr())
		}

		return operand
	default:
		w.ice(report.ErrUnhandledNodeKind, uop.Span(), "unknown unary operator `%s`", uop.Op)
		return types.TypeInfo{} // unreachable
	}
}

// walkBinaryOp walks a binary operator application.
func (w *Walker) walkBinaryOp(bop *ast.BinaryOp) types.TypeInfo {
	lhs := w.walkExpr(bop.Lhs)
	rhs := w.walkExpr(bop.Rhs)

	if _, ok := arithOps[bop.Op]; ok {
		// Arithmetic is strict: both operands must already be exactly the
		// same Int or Float type.  There is no promotion across widths or
		// signedness.
		if !lhs.IsNumeric() {
			w.error(report.ErrOperandTypeMismatch, bop.Lhs.Span(), "operator `%s` requires numeric operands, not %s", bop.Op, lhs.Repr())
		}

		if bop.Op == "%" && lhs.Kind != types.KindInt {
			w.error(report.ErrOperandTypeMismatch, bop.Lhs.Span(), "operator `%%` requires integer operands, not %s", lhs.Repr())
		}

		if !lhs.Equals(rhs) {
			w.error(
				report.ErrOperandTypeMismatch,
				bop.Span(),
				"mismatched operand types %s and %s for operator `%s`",
				lhs.Repr(),
				rhs.Repr(),
				bop.Op,
			)
		}

		return lhs
	}

	if _, ok := compareOps[bop.Op]; ok {
		if lhs.Kind == types.KindVoid || rhs.Kind == types.KindVoid {
			w.error(report.ErrOperandTypeMismatch, bop.Span(), "cannot compare void values")
		}

		if !types.Compatible(lhs, rhs) {
			w.error(report.ErrOperandTypeMismatch, bop.Span(), "cannot compare %s with %s", lhs.Repr(), rhs.Repr())
		}

		return types.Bool
	}

	if _, ok := logicalOps[bop.Op]; ok {
		if lhs.Kind != types.KindBool {
			w.error(report.ErrOperandTypeMismatch, bop.Lhs.Span(), "operator `%s` requires bool operands, not %s", bop.Op, lhs.Repr())
		}

		if rhs.Kind != types.KindBool {
			w.error(report.ErrOperandTypeMismatch, bop.Rhs.Span(), "operator `%s` requires bool operands, not %s", bop.Op, rhs.Repr())
		}

		return types.Bool
	}

	w.ice(report.ErrUnhandledNodeKind, bop.Span(), "unknown binary operator `%s`", bop.Op)
	return types.TypeInfo{} // unreachable
}

// -----------------------------------------------------------------------------

// walkCall walks a function call expression.
func (w *Walker) walkCall(call *ast.Call) types.TypeInfo {
	callee, ok := call.Func.(*ast.Identifier)
	if !ok {
		w.error(report.ErrNotCallable, call.Func.Span(), "called expression is not a function")
	}

	sym, found := w.lookup(callee.Name)
	if !found {
		w.error(report.ErrUndeclaredIdentifier, callee.Span(), "`%s` is not declared in any visible scope", callee.Name)
	}

	if sym.DefKind != common.DefKindFunc {
		w.error(report.ErrNotCallable, callee.Span(), "`%s` is not a function", callee.Name)
	}

	sig := sym.Signature
	if len(call.Args) != sig.Arity() {
		w.error(
			report.ErrArityMismatch,
			call.Span(),
			"`%s` takes %d argument(s) but %d were given",
			callee.Name,
			sig.Arity(),
			len(call.Args),
		)
	}

	for i, arg := range call.Args {
		argType := w.walkExpr(arg)

		if !types.Compatible(sig.ParamTypes[i], argType) {
			w.error(
				report.ErrTypeMismatch,
				arg.Span(),
				"argument %d of `%s` must be %s, not %s",
				i+1,
				callee.Name,
				sig.ParamTypes[i].Repr(),
				argType.Repr(),
			)
		}
	}

	return sig.ReturnType
}
