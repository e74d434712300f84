package types

import (
	"fmt"
	"strings"
)

// TypeKind enumerates the kinds of static type the Sable analyzer reasons
// about.  This must be one of the enumerated kind values below.
type TypeKind int

// Enumeration of the different type kinds.
const (
	// KindUnknown is the zero-value kind for types that carry no information.
	// The analyzer never assigns it to a symbol; it exists so that a zero
	// TypeInfo is recognizably meaningless rather than a valid `i0`.
	KindUnknown TypeKind = iota

	KindInt
	KindFloat
	KindString
	KindBool
	KindVoid

	// KindAuto marks a type that has not been resolved yet: it is inferred
	// from an initializer during declaration handling and must never remain on
	// a symbol once the declaring statement has been processed.
	KindAuto
)

// TypeInfo describes one static Sable type.  It is a small value type: it is
// copied freely and never shared through pointers.
type TypeInfo struct {
	// The kind of the type.
	Kind TypeKind

	// The bit width of the type.  Only meaningful for Int and Float kinds.
	Width int

	// Whether the type is signed.  Only meaningful for Int and Float kinds.
	Signed bool

	// Whether the binding holding a value of this type may be mutated.  This
	// is a binding-level flag, not a property of the type itself, and is
	// therefore excluded from equality and compatibility.
	Mutable bool
}

// Equals returns whether two types are the same type.  Only kind, width, and
// signedness participate: mutability is a binding-level flag.
func (ti TypeInfo) Equals(other TypeInfo) bool {
	return ti.Kind == other.Kind && ti.Width == other.Width && ti.Signed == other.Signed
}

// Repr returns the representative string for the type: the spelling a Sable
// programmer would write for it.
func (ti TypeInfo) Repr() string {
	switch ti.Kind {
	case KindInt:
		if ti.Signed {
			return fmt.Sprintf("i%d", ti.Width)
		}

		return fmt.Sprintf("u%d", ti.Width)
	case KindFloat:
		return fmt.Sprintf("f%d", ti.Width)
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindVoid:
		return "void"
	case KindAuto:
		return "auto"
	default:
		return "<unknown>"
	}
}

// IsNumeric returns whether the type is an Int or Float type.
func (ti TypeInfo) IsNumeric() bool {
	return ti.Kind == KindInt || ti.Kind == KindFloat
}

// -----------------------------------------------------------------------------

// FuncType describes the signature of a Sable function: its ordered parameter
// types and its return type.
type FuncType struct {
	// The ordered types of the function parameters.
	ParamTypes []TypeInfo

	// The return type of the function.
	ReturnType TypeInfo
}

// Repr returns the representative string for the signature, eg.
// `fn(i32, bool) -> void`.
func (ft *FuncType) Repr() string {
	params := make([]string, len(ft.ParamTypes))
	for i, pt := range ft.ParamTypes {
		params[i] = pt.Repr()
	}

	return fmt.Sprintf("fn(%s) -> %s", strings.Join(params, ", "), ft.ReturnType.Repr())
}

// Arity returns the number of parameters the function accepts.
func (ft *FuncType) Arity() int {
	return len(ft.ParamTypes)
}
