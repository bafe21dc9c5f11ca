package demoparse

import (
	"fmt"

	pc "github.com/prataprc/goparsec"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/parsestate"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// Lowerer walks the goparsec AST demoparse.Parser produces and drives a
// parsestate.ParserState to build a *pt.PtModule, exercising the factory
// and working-list machinery the way a real grammar driver would on every
// reduction (spec.md §1/§6: the lexer/grammar are external collaborators
// this module deliberately does not implement itself).
type Lowerer struct {
	st *parsestate.ParserState
}

// NewLowerer binds a Lowerer to an existing parser assembly state.
func NewLowerer(st *parsestate.ParserState) Lowerer {
	return Lowerer{st: st}
}

// Lower converts root (as returned by Parser.Parse) into a *pt.PtModule.
func (l Lowerer) Lower(root pc.Queryable) (*pt.PtModule, error) {
	if root.GetName() != "module" {
		return nil, fmt.Errorf("demoparse: expected node 'module', got %q", root.GetName())
	}
	children := root.GetChildren()
	if len(children) < 3 {
		return nil, fmt.Errorf("demoparse: malformed module node")
	}

	f := l.st.Factory()
	fr := pt.FileRegion{}

	name := children[1].GetValue()

	var portNames []*pt.PtPort
	var bodyNode pc.Queryable
	for _, c := range children {
		switch c.GetName() {
		case "ports":
			for _, p := range c.GetChildren() {
				portNames = append(portNames, f.NewPort(fr, p.GetValue(), nil))
			}
		case "body":
			bodyNode = c
		}
	}
	for _, p := range portNames {
		l.st.AddPort(p)
	}

	if bodyNode != nil {
		for _, item := range bodyNode.GetChildren() {
			if err := l.lowerBodyItem(item); err != nil {
				return nil, err
			}
		}
	}

	paramPortHeads, ports, ioHeads, declHeads, items := l.st.ModuleLists()
	mod := f.NewModule(fr, name, false, false, false, pt.CompilerDirectives{}, false,
		"", "", "", paramPortHeads, ports, ioHeads, declHeads, items)
	return mod, nil
}

func (l Lowerer) lowerBodyItem(item pc.Queryable) error {
	children := item.GetChildren()
	if len(children) != 1 {
		return fmt.Errorf("demoparse: expected 1 child under 'item', got %d", len(children))
	}
	inner := children[0]
	switch inner.GetName() {
	case "decl":
		return l.lowerDecl(inner)
	case "assign":
		return l.lowerAssign(inner)
	default:
		return fmt.Errorf("demoparse: unrecognized body item %q", inner.GetName())
	}
}

func (l Lowerer) lowerDecl(decl pc.Queryable) error {
	children := decl.GetChildren()
	if len(children) < 2 {
		return fmt.Errorf("demoparse: malformed decl node")
	}
	f := l.st.Factory()
	fr := pt.FileRegion{}

	kind := children[0].GetChildren()[0].GetName()

	var names []string
	for _, n := range children[1].GetChildren() {
		names = append(names, n.GetValue())
	}

	switch kind {
	case "INPUT", "OUTPUT":
		dir := pt.DirInput
		if kind == "OUTPUT" {
			dir = pt.DirOutput
		}
		head := f.NewIOHead(fr, dir, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
		l.st.BeginIOHead(head)
		for _, name := range names {
			l.st.AddCurIOItem(f.NewIOItem(fr, name, nil))
		}
		l.st.FlushIOHead()
	case "WIRE", "REG":
		var head *pt.PtDeclHead
		if kind == "WIRE" {
			head = f.NewNetHead(fr, pt.NetTypeWire, false, false, false, nil, nil, nil)
		} else {
			head = f.NewRegHead(fr, false, nil)
		}
		l.st.BeginDeclHead(head)
		for _, name := range names {
			l.st.AddCurDeclItem(f.NewDeclItem(fr, name, nil, nil))
		}
		l.st.FlushDeclHead()
	default:
		return fmt.Errorf("demoparse: unrecognized declaration keyword %q", kind)
	}
	return nil
}

func (l Lowerer) lowerAssign(assign pc.Queryable) error {
	children := assign.GetChildren()
	if len(children) < 4 {
		return fmt.Errorf("demoparse: malformed assign node")
	}
	f := l.st.Factory()
	fr := pt.FileRegion{}

	lhsName := children[1].GetValue()
	rhsName := children[3].GetValue()

	lhs := f.NewPrimary(fr, nil, lhsName)
	rhs := f.NewPrimary(fr, nil, rhsName)
	pair := f.NewContAssignPair(fr, lhs, rhs)

	item := f.NewContAssign(fr, nil, nil, []*pt.PtContAssign{pair})
	l.st.AddItem(item)
	return nil
}
