package ast

// LetDecl represents a `let` declaration: an immutable binding whose
// initializer is optional provided a type annotation is present.
type LetDecl struct {
	ASTBase

	// The name being declared.
	Name string

	// The spelling of the type annotation, or empty if the type is to be
	// inferred from the initializer.
	TypeSpelling string

	// The initializer expression.  May be nil.
	Initializer ASTExpr
}

// VarDecl represents a `var` declaration: a mutable binding that must be
// initialized.
type VarDecl struct {
	ASTBase

	// The name being declared.
	Name string

	// The spelling of the type annotation, or empty if the type is to be
	// inferred from the initializer.
	TypeSpelling string

	// The initializer expression.  Required; a nil initializer is a semantic
	// error, not a construction error, so diagnostics carry the right line.
	Initializer ASTExpr
}

// ConstDecl represents a `const` declaration: an immutable binding that must
// be initialized.
type ConstDecl struct {
	ASTBase

	// The name being declared.
	Name string

	// The spelling of the type annotation, or empty if the type is to be
	// inferred from the initializer.
	TypeSpelling string

	// The initializer expression.  Required, as for VarDecl.
	Initializer ASTExpr
}

// -----------------------------------------------------------------------------

// ReturnStmt represents a return statement.
type ReturnStmt struct {
	ASTBase

	// The returned expression, or nil for a bare `return;`.
	Value ASTExpr
}

// Block represents a freestanding `{ ... }` block statement, which opens an
// anonymous lexical scope.
type Block struct {
	ASTBase

	// The ordered statements of the block.
	Stmts []ASTNode
}
