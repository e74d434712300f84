package report

// TextSpan represents a range or "span" of source text.  It is used to specify
// erroneous or otherwise significant source text in a Sable program.  Text
// spans are inclusive on both sides: the starting position is the position of
// the first character in the span and the ending position is the position of
// the last character in the span.  Line numbers are 1-based: the external
// parser numbers the first source line 1 and all diagnostics repeat its
// numbering unchanged.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// SpanOnLine returns a new text span covering the given 1-based source line.
// The serialized AST interchange format only records line granularity, so this
// is the span constructor used for every node loaded from it.
func SpanOnLine(line int) *TextSpan {
	return &TextSpan{StartLine: line, EndLine: line}
}
