package walk

import (
	"sablec/ast"
	"sablec/common"
	"sablec/report"
	"sablec/types"
)

// Walker is responsible for walking the AST of one compilation unit and
// performing semantic analysis on it: lexical scoping, redeclaration
// detection, static type assignment and checking, and definite-initialization
// tracking.
type Walker struct {
	// The stack of lexical scopes used to declare and look up symbols.  The
	// bottom entry is the global scope, created once with the walker and
	// alive for its whole lifetime.
	scopes []map[string]*common.Symbol

	// The return type of the enclosing function.  If this is nil, then there
	// is no enclosing function: ie. return statements are not valid.
	enclosingReturnType *types.TypeInfo
}

// NewWalker creates a new walker with a fresh global scope.  A walker holds
// private mutable state with no internal synchronization: it analyzes one
// compilation unit at a time, and concurrent analysis of independent units
// requires independent walkers.
func NewWalker() *Walker {
	return &Walker{
		scopes: []map[string]*common.Symbol{make(map[string]*common.Symbol)},
	}
}

// Analyze semantically analyzes the AST rooted at the given node.  It returns
// nil if the program is well formed, and otherwise the first violation
// detected, always a *report.AnalysisError.  Analysis is fail-fast: there is
// no error accumulation and no resumption.  The scope stack is balanced again
// by the time Analyze returns, error or not, so the walker may be reused;
// global symbols persist across calls.
func (w *Walker) Analyze(root ast.ASTNode) (err error) {
	// Analysis errors abort the walk via panic and are converted back into an
	// ordinary error value here; anything else keeps propagating.
	defer func() {
		if x := recover(); x != nil {
			if aerr, ok := x.(*report.AnalysisError); ok {
				err = aerr
			} else {
				panic(x)
			}
		}
	}()

	w.walk(root)
	return nil
}

// walk routes an AST node to its handler.  An expression in statement
// position is routed through the expression resolver with its yielded type
// discarded.
func (w *Walker) walk(node ast.ASTNode) {
	switch v := node.(type) {
	case *ast.Program:
		for _, decl := range v.Decls {
			w.walk(decl)
		}
	case *ast.FuncDef:
		w.walkFuncDef(v)
	case *ast.LetDecl:
		w.walkLetDecl(v)
	case *ast.VarDecl:
		w.walkVarDecl(v)
	case *ast.ConstDecl:
		w.walkConstDecl(v)
	case *ast.ReturnStmt:
		w.walkReturnStmt(v)
	case *ast.Block:
		w.walkBlock(v)
	case ast.ASTExpr:
		w.walkExpr(v)
	default:
		// A node kind with no handler is an analyzer defect: skipping it
		// silently would let an unchecked construct pass analysis.
		w.ice(report.ErrUnhandledNodeKind, node.Span(), "no handler for node of type %T", node)
	}
}

// -----------------------------------------------------------------------------

// error raises an analysis error on the given span, aborting the walk of the
// whole compilation unit.
func (w *Walker) error(kind report.ErrorKind, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(kind, span, msg, args...))
}

// ice raises an internal analysis error: a defect in the analyzer itself, not
// a violation in the analyzed source.
func (w *Walker) ice(kind report.ErrorKind, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(kind, span, msg, args...))
}

// resolveSpelling resolves a type annotation spelling through the type
// system, raising UnknownType at the given span if the spelling is not in the
// builtin catalog.
func (w *Walker) resolveSpelling(text string, span *report.TextSpan) types.TypeInfo {
	ti, ok := types.ResolveSpelling(text)
	if !ok {
		w.error(report.ErrUnknownType, span, "unknown type: `%s`", text)
	}

	return ti
}
