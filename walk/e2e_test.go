package walk

import (
	"path/filepath"
	"testing"

	"sablec/astfile"
	"sablec/report"
)

// TestAnalyzeSerializedPrograms runs whole serialized programs through the
// loader and the walker, checking the single reported violation (or its
// absence) against each fixture.
func TestAnalyzeSerializedPrograms(t *testing.T) {
	cases := []struct {
		file string
		kind report.ErrorKind // ErrorKind(-1) means the program is well formed
		line int
	}{
		{"main_ok.sbast", -1, 0},
		{"duplicate_symbol.sbast", report.ErrDuplicateSymbol, 3},
		{"var_type_mismatch.sbast", report.ErrTypeMismatch, 2},
		{"const_missing_init.sbast", report.ErrMissingInitializer, 2},
		{"call_arg_mismatch.sbast", report.ErrTypeMismatch, 4},
		{"undeclared_ident.sbast", report.ErrUndeclaredIdentifier, 1},
	}

	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			prog, err := astfile.LoadFile(filepath.Join("testdata", c.file))
			if err != nil {
				t.Fatalf("failed to load fixture: %s", err)
			}

			err = NewWalker().Analyze(prog)

			if c.kind == -1 {
				if err != nil {
					t.Fatalf("expected success, got: %s", err)
				}

				return
			}

			expectError(t, err, c.kind, c.line)
		})
	}
}
