package walk

import (
	"sablec/common"
	"sablec/report"
)

// lookup looks up a symbol by name and returns it if it exists.  Scopes are
// scanned innermost to outermost so that inner bindings shadow outer ones.
func (w *Walker) lookup(name string) (*common.Symbol, bool) {
	for i := len(w.scopes) - 1; i > -1; i-- {
		if sym, ok := w.scopes[i][name]; ok {
			return sym, true
		}
	}

	return nil, false
}

// lookupCurrent looks up a symbol by name in the current innermost scope
// only.  This is the check that decides redeclaration for variables and
// parameters: bindings in outer scopes never block a new declaration.
func (w *Walker) lookupCurrent(name string) (*common.Symbol, bool) {
	sym, ok := w.currentScope()[name]
	return sym, ok
}

// declare declares a symbol in the current innermost scope.  It returns false
// if that exact scope already binds the name; the caller raises the error so
// that the diagnostic carries the right kind for the construct.
func (w *Walker) declare(sym *common.Symbol) bool {
	curr := w.currentScope()
	if _, ok := curr[sym.Name]; ok {
		return false
	}

	curr[sym.Name] = sym
	return true
}

// -----------------------------------------------------------------------------

// pushScope pushes a new empty scope onto the scope stack.
func (w *Walker) pushScope() {
	w.scopes = append(w.scopes, make(map[string]*common.Symbol))
}

// popScope removes the innermost scope from the scope stack, destroying every
// symbol declared in it.  Popping with nothing on the stack is a scope
// underflow: an analyzer defect that is unreachable from any input, valid or
// not.
func (w *Walker) popScope() {
	if len(w.scopes) == 0 {
		w.ice(report.ErrScopeUnderflow, nil, "popScope called with an empty scope stack")
	}

	w.scopes = w.scopes[:len(w.scopes)-1]
}

// currentScope returns the innermost scope on the stack.
func (w *Walker) currentScope() map[string]*common.Symbol {
	if len(w.scopes) == 0 {
		w.ice(report.ErrScopeUnderflow, nil, "no scope is active")
	}

	return w.scopes[len(w.scopes)-1]
}
