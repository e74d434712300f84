package common

import (
	"sablec/report"
	"sablec/types"
)

// Symbol represents a semantic symbol: one declared name as the analyzer
// records it.  Symbols are owned exclusively by the scope that declares them;
// lookups hand out the pointer for reading only and a symbol never outlives
// its declaring scope.
type Symbol struct {
	// The name of the symbol.
	Name string

	// Where the symbol was declared.
	DefSpan *report.TextSpan

	// The resolved type of the value stored in the symbol.  For functions
	// this is the return type; the full signature lives in Signature.  By the
	// time a symbol is registered in a scope this is always concrete: never
	// Auto.
	Type types.TypeInfo

	// The function signature.  Only set when DefKind is DefKindFunc.
	Signature *types.FuncType

	// The symbol's kind.  This must be one of the enumerated definition kinds
	// below.
	DefKind int

	// Whether the symbol has definitely been given a value.  Parameters and
	// every declaration with an initializer are initialized; only a `let`
	// without an initializer is not.
	Initialized bool
}

// Enumeration of the different symbol kinds.
const (
	DefKindValue = iota // Variables declared with `let` or `var`, and parameters
	DefKindConst        // Constants declared with `const`
	DefKindFunc         // Functions
)
