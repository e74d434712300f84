package ast

import "sablec/report"

// ASTNode is the abstract interface for all AST nodes.  The node family is
// closed: the analyzer dispatches on the concrete node type, and a node type
// it does not recognize is an internal error, never a silent skip.
type ASTNode interface {
	// The text span over which the AST node occurs.
	Span() *report.TextSpan
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOnLine creates a new AST base spanning the given 1-based line.
func NewASTBaseOnLine(line int) ASTBase {
	return ASTBase{span: report.SpanOnLine(line)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}
