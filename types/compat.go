package types

// Compatible returns whether a value of the actual type may be bound where the
// expected type is required.  The relation is intentionally strict: there is
// no implicit widening and no signed/unsigned coercion.
//
// An expected type of kind Auto is compatible with anything: inference is
// still pending and will adopt the actual type.  Otherwise the kinds must
// match exactly, and for Int and Float types the width and signedness must
// match as well.  String, Bool, and Void compatibility requires kind equality
// only.
func Compatible(expected, actual TypeInfo) bool {
	if expected.Kind == KindAuto {
		return true
	}

	if expected.Kind != actual.Kind {
		return false
	}

	if expected.IsNumeric() {
		return expected.Width == actual.Width && expected.Signed == actual.Signed
	}

	return true
}
