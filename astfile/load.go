// Package astfile reads the Sable toolchain's serialized AST interchange
// format: a TOML encoding of one compilation unit's AST as emitted by the
// external parser.  The analyzer itself never parses Sable source; this
// package is how programs reach it out of process.
package astfile

import (
	"fmt"
	"io/ioutil"

	"sablec/ast"

	"github.com/pelletier/go-toml"
)

// tomlProgram represents a compilation unit as it is encoded in TOML.
type tomlProgram struct {
	Decls []tomlNode `toml:"decl"`
}

// tomlNode represents a declaration or statement as it is encoded in TOML.
type tomlNode struct {
	Kind string `toml:"kind"`
	Line int    `toml:"line"`
	Name string `toml:"name"`

	// The type annotation spelling for value declarations and the declared
	// type spelling for parameters.
	Type string `toml:"type"`

	// Function fields.
	Return string      `toml:"return"`
	Params []tomlParam `toml:"param"`

	// Body statements for functions and blocks.
	Body []tomlNode `toml:"body"`

	// The initializer of a value declaration.
	Init *tomlExpr `toml:"init"`

	// The value of a return statement or expression statement.
	Value *tomlExpr `toml:"value"`
}

// tomlParam represents a function parameter as it is encoded in TOML.
type tomlParam struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
	Line int    `toml:"line"`
}

// tomlExpr represents an expression as it is encoded in TOML.
type tomlExpr struct {
	Kind string `toml:"kind"`
	Line int    `toml:"line"`

	// The source text of a literal.
	Text string `toml:"text"`

	// The referenced name of an identifier, or the callee name shorthand of a
	// call.
	Name string `toml:"name"`

	// The operator spelling of a unary or binary application.
	Op string `toml:"op"`

	Operand *tomlExpr  `toml:"operand"`
	Lhs     *tomlExpr  `toml:"lhs"`
	Rhs     *tomlExpr  `toml:"rhs"`
	Func    *tomlExpr  `toml:"func"`
	Args    []tomlExpr `toml:"arg"`
}

// -----------------------------------------------------------------------------

// LoadFile reads and decodes the serialized AST program at the given path.
func LoadFile(path string) (*ast.Program, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Load(buff)
}

// Load decodes one serialized AST program.
func Load(data []byte) (*ast.Program, error) {
	tp := &tomlProgram{}
	if err := toml.Unmarshal(data, tp); err != nil {
		return nil, fmt.Errorf("malformed AST file: %w", err)
	}

	prog := &ast.Program{ASTBase: ast.NewASTBaseOnLine(1)}
	for i := range tp.Decls {
		node, err := convertNode(&tp.Decls[i])
		if err != nil {
			return nil, err
		}

		prog.Decls = append(prog.Decls, node)
	}

	return prog, nil
}

// -----------------------------------------------------------------------------

// convertNode converts a decoded declaration or statement into its AST node.
func convertNode(tn *tomlNode) (ast.ASTNode, error) {
	switch tn.Kind {
	case "function":
		if tn.Name == "" {
			return nil, fmt.Errorf("line %d: function requires a name", tn.Line)
		}

		if tn.Return == "" {
			return nil, fmt.Errorf("line %d: function `%s` requires a return type", tn.Line, tn.Name)
		}

		fd := &ast.FuncDef{
			ASTBase:        ast.NewASTBaseOnLine(tn.Line),
			Name:           tn.Name,
			ReturnSpelling: tn.Return,
		}

		for _, tp := range tn.Params {
			if tp.Name == "" || tp.Type == "" {
				return nil, fmt.Errorf("line %d: parameter of `%s` requires a name and a type", tp.Line, tn.Name)
			}

			fd.Params = append(fd.Params, &ast.Param{
				ASTBase:      ast.NewASTBaseOnLine(tp.Line),
				Name:         tp.Name,
				TypeSpelling: tp.Type,
			})
		}

		for i := range tn.Body {
			stmt, err := convertNode(&tn.Body[i])
			if err != nil {
				return nil, err
			}

			fd.Body = append(fd.Body, stmt)
		}

		return fd, nil
	case "let", "var", "const":
		if tn.Name == "" {
			return nil, fmt.Errorf("line %d: %s declaration requires a name", tn.Line, tn.Kind)
		}

		var init ast.ASTExpr
		if tn.Init != nil {
			var err error
			if init, err = convertExpr(tn.Init); err != nil {
				return nil, err
			}
		}

		base := ast.NewASTBaseOnLine(tn.Line)
		switch tn.Kind {
		case "let":
			return &ast.LetDecl{ASTBase: base, Name: tn.Name, TypeSpelling: tn.Type, Initializer: init}, nil
		case "var":
			return &ast.VarDecl{ASTBase: base, Name: tn.Name, TypeSpelling: tn.Type, Initializer: init}, nil
		default:
			return &ast.ConstDecl{ASTBase: base, Name: tn.Name, TypeSpelling: tn.Type, Initializer: init}, nil
		}
	case "return":
		rs := &ast.ReturnStmt{ASTBase: ast.NewASTBaseOnLine(tn.Line)}

		if tn.Value != nil {
			value, err := convertExpr(tn.Value)
			if err != nil {
				return nil, err
			}

			rs.Value = value
		}

		return rs, nil
	case "block":
		b := &ast.Block{ASTBase: ast.NewASTBaseOnLine(tn.Line)}

		for i := range tn.Body {
			stmt, err := convertNode(&tn.Body[i])
			if err != nil {
				return nil, err
			}

			b.Stmts = append(b.Stmts, stmt)
		}

		return b, nil
	case "expr":
		if tn.Value == nil {
			return nil, fmt.Errorf("line %d: expression statement requires a value", tn.Line)
		}

		return convertExpr(tn.Value)
	case "":
		return nil, fmt.Errorf("line %d: node requires a kind", tn.Line)
	default:
		return nil, fmt.Errorf("line %d: unknown node kind %q", tn.Line, tn.Kind)
	}
}

// convertExpr converts a decoded expression into its AST node.
func convertExpr(te *tomlExpr) (ast.ASTExpr, error) {
	base := ast.ExprBase{ASTBase: ast.NewASTBaseOnLine(te.Line)}

	switch te.Kind {
	case "int", "float", "string", "bool":
		litKinds := map[string]ast.LitKind{
			"int":    ast.IntLit,
			"float":  ast.FloatLit,
			"string": ast.StringLit,
			"bool":   ast.BoolLit,
		}

		return &ast.Literal{ExprBase: base, Kind: litKinds[te.Kind], Text: te.Text}, nil
	case "ident":
		if te.Name == "" {
			return nil, fmt.Errorf("line %d: identifier requires a name", te.Line)
		}

		return &ast.Identifier{ExprBase: base, Name: te.Name}, nil
	case "unary":
		if te.Op == "" || te.Operand == nil {
			return nil, fmt.Errorf("line %d: unary expression requires an operator and an operand", te.Line)
		}

		operand, err := convertExpr(te.Operand)
		if err != nil {
			return nil, err
		}

		return &ast.UnaryOp{ExprBase: base, Op: te.Op, Operand: operand}, nil
	case "binary":
		if te.Op == "" || te.Lhs == nil || te.Rhs == nil {
			return nil, fmt.Errorf("line %d: binary expression requires an operator and two operands", te.Line)
		}

		lhs, err := convertExpr(te.Lhs)
		if err != nil {
			return nil, err
		}

		rhs, err := convertExpr(te.Rhs)
		if err != nil {
			return nil, err
		}

		return &ast.BinaryOp{ExprBase: base, Op: te.Op, Lhs: lhs, Rhs: rhs}, nil
	case "call":
		var callee ast.ASTExpr
		switch {
		case te.Func != nil:
			var err error
			if callee, err = convertExpr(te.Func); err != nil {
				return nil, err
			}
		case te.Name != "":
			// Callee name shorthand.
			callee = &ast.Identifier{ExprBase: base, Name: te.Name}
		default:
			return nil, fmt.Errorf("line %d: call requires a callee", te.Line)
		}

		c := &ast.Call{ExprBase: base, Func: callee}
		for i := range te.Args {
			arg, err := convertExpr(&te.Args[i])
			if err != nil {
				return nil, err
			}

			c.Args = append(c.Args, arg)
		}

		return c, nil
	case "":
		return nil, fmt.Errorf("line %d: expression requires a kind", te.Line)
	default:
		return nil, fmt.Errorf("line %d: unknown expression kind %q", te.Line, te.Kind)
	}
}
