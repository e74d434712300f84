package ast

// Program is the root node of one analyzed compilation unit: the ordered list
// of its top-level declarations.
type Program struct {
	ASTBase

	// The top-level declarations of the unit in source order.
	Decls []ASTNode
}

// -----------------------------------------------------------------------------

// FuncDef is the AST node for a function definition.
type FuncDef struct {
	ASTBase

	// The name of the function.
	Name string

	// The spelling of the declared return type, eg. `void` or `i32`.  Type
	// spellings are resolved during analysis, not parsing.
	ReturnSpelling string

	// The ordered parameters of the function.
	Params []*Param

	// The ordered statements of the function body.
	Body []ASTNode
}

// Param is the AST node for a single function parameter.
type Param struct {
	ASTBase

	// The name of the parameter.
	Name string

	// The spelling of the parameter's declared type.
	TypeSpelling string
}
