package ast

// ASTExpr is the interface for all expression nodes.  Expressions do not
// store their resolved types: the analyzer computes types in a single
// fail-fast pass and nothing downstream of it consumes the tree.
type ASTExpr interface {
	ASTNode

	// exprNode marks the closed set of expression variants.
	exprNode()
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase
}

func (eb ExprBase) exprNode() {}

// -----------------------------------------------------------------------------

// LitKind enumerates the kinds of literal the Sable parser produces.
type LitKind int

// Enumeration of the different literal kinds.
const (
	IntLit LitKind = iota
	FloatLit
	StringLit
	BoolLit
)

// Literal represents a literal value.
type Literal struct {
	ExprBase

	// The kind of the literal.  This must be one of the enumerated literal
	// kinds above.
	Kind LitKind

	// The literal text as written in source.  The analyzer only needs the
	// kind; the text is carried for diagnostics.
	Text string
}

// Identifier represents a reference to a declared name.
type Identifier struct {
	ExprBase

	// The referenced name.
	Name string
}

// -----------------------------------------------------------------------------

// UnaryOp represents a unary operator application such as `-x` or `!ok`.
type UnaryOp struct {
	ExprBase

	// The operator spelling: `-` or `!`.
	Op string

	// The operand expression.
	Operand ASTExpr
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	// The operator spelling, eg. `+`, `<=`, `&&`.
	Op string

	// The left and right operand expressions.
	Lhs, Rhs ASTExpr
}

// Call represents a function call expression.
type Call struct {
	ExprBase

	// The callee expression.
	Func ASTExpr

	// The ordered argument expressions.
	Args []ASTExpr
}
