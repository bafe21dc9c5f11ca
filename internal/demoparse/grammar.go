// Package demoparse is a small goparsec-based grammar exercising the PT
// factory and parser assembly state end to end, standing in for the real
// Verilog lexer/grammar driver spec.md §1/§6 name as an external
// collaborator out of this module's scope. It recognizes a tiny subset of
// Verilog — a module header, input/output/wire/reg declarations, and
// continuous assignments — just enough for integration tests (and the
// cmd/ptdump demo) to drive a real parse from source text down to a
// *pt.PtModule without requiring the full grammar this package deliberately
// does not implement.
package demoparse

import (
	"fmt"
	"os"

	pc "github.com/prataprc/goparsec"
)

var ast = pc.NewAST("demo_module", 0)

var (
	pModule = ast.And("module", nil,
		pc.Atom("module", "MODULE"), pIdent, pLParen,
		ast.Kleene("ports", nil, pIdent, pComma), pRParen, pSemi,
		ast.Kleene("body", nil, ast.OrdChoice("item", nil, pDecl, pAssign)),
		pc.Atom("endmodule", "ENDMODULE"),
	)

	pDecl = ast.And("decl", nil,
		pDeclType, ast.Many("names", nil, pIdent, pComma), pSemi,
	)

	pDeclType = ast.OrdChoice("decl_type", nil,
		pc.Atom("input", "INPUT"), pc.Atom("output", "OUTPUT"),
		pc.Atom("wire", "WIRE"), pc.Atom("reg", "REG"),
	)

	pAssign = ast.And("assign", nil,
		pc.Atom("assign", "ASSIGN"), pIdent, pc.Atom("=", "EQ"), pIdent, pSemi,
	)
)

var (
	pIdent  = pc.Token(`[A-Za-z_][0-9a-zA-Z_]*`, "IDENT")
	pLParen = pc.Atom("(", "LPAREN")
	pRParen = pc.Atom(")", "RPAREN")
	pSemi   = pc.Atom(";", "SEMI")
	pComma  = pc.Atom(",", "COMMA")
)

// Parser drives the demo grammar over a byte slice, returning the raw
// goparsec AST for Lowerer to walk.
type Parser struct{}

// NewParser returns a Parser ready to parse demo-module source text.
func NewParser() Parser { return Parser{} }

// Parse scans source and returns the root AST node, or an error if the
// grammar did not match the whole input.
func (Parser) Parse(source []byte) (pc.Queryable, error) {
	if os.Getenv("PARSEC_DEBUG") != "" {
		ast.SetDebug()
	}
	root, _ := ast.Parsewith(pModule, pc.NewScanner(source))
	if root == nil {
		return nil, fmt.Errorf("demoparse: no match for input")
	}
	return root, nil
}
