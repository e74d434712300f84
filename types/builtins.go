package types

// Canonical TypeInfo values for the builtin types that literals and inference
// produce directly.  Integer literals are canonically `i32` and float literals
// `f64`; there is no literal defaulting across widths.
var (
	IntLit   = TypeInfo{Kind: KindInt, Width: 32, Signed: true}
	FloatLit = TypeInfo{Kind: KindFloat, Width: 64, Signed: true}
	String   = TypeInfo{Kind: KindString}
	Bool     = TypeInfo{Kind: KindBool}
	Void     = TypeInfo{Kind: KindVoid}
	Auto     = TypeInfo{Kind: KindAuto}
)

// spellings is the closed catalog of builtin type spellings.  `str` is an
// accepted alias of `string`.  Floats are always signed.
var spellings = map[string]TypeInfo{
	"i8":     {Kind: KindInt, Width: 8, Signed: true},
	"u8":     {Kind: KindInt, Width: 8},
	"i16":    {Kind: KindInt, Width: 16, Signed: true},
	"u16":    {Kind: KindInt, Width: 16},
	"i32":    {Kind: KindInt, Width: 32, Signed: true},
	"u32":    {Kind: KindInt, Width: 32},
	"i64":    {Kind: KindInt, Width: 64, Signed: true},
	"u64":    {Kind: KindInt, Width: 64},
	"i128":   {Kind: KindInt, Width: 128, Signed: true},
	"u128":   {Kind: KindInt, Width: 128},
	"f32":    {Kind: KindFloat, Width: 32, Signed: true},
	"f64":    {Kind: KindFloat, Width: 64, Signed: true},
	"str":    {Kind: KindString},
	"string": {Kind: KindString},
	"bool":   {Kind: KindBool},
	"void":   {Kind: KindVoid},
	"auto":   {Kind: KindAuto},
}

// ResolveSpelling maps a builtin type spelling to its TypeInfo.  The catalog
// is closed: any spelling outside it, eg. `i7` or `float`, fails resolution.
func ResolveSpelling(text string) (TypeInfo, bool) {
	ti, ok := spellings[text]
	return ti, ok
}
