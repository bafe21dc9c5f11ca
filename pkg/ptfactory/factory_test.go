package ptfactory

import (
	"testing"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

func TestNewBuildsBothStyles(t *testing.T) {
	cases := []struct {
		name string
		kind string
	}{
		{"compact", "cpt"},
		{"simple", "spt"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := New(c.kind, arena.New())
			e := f.NewConstUint32(pt.FileRegion{}, 42)
			if e.Tag != pt.ExprConst || e.CUint32 != 42 {
				t.Fatalf("NewConstUint32 = %+v, want tag=ExprConst value=42", e)
			}
		})
	}
}

func TestCptOmitsEmptyChildArrays(t *testing.T) {
	f := NewCptFactory(arena.New())
	e := f.NewConcat(pt.FileRegion{}, nil)
	if e.Operands != nil {
		t.Fatalf("compact factory's empty concat should have nil Operands, got %v", e.Operands)
	}
}

func TestSptAlwaysMaterializesChildArrays(t *testing.T) {
	f := NewSptFactory(arena.New())
	e := f.NewConcat(pt.FileRegion{}, nil)
	if e.Operands == nil {
		t.Fatalf("simple factory's empty concat should have a non-nil (empty) Operands slice")
	}
	if len(e.Operands) != 0 {
		t.Fatalf("len(Operands) = %d, want 0", len(e.Operands))
	}
}

func TestNewOpr2BuildsTwoOperandTree(t *testing.T) {
	f := NewCptFactory(arena.New())
	lhs := f.NewConstUint32(pt.FileRegion{}, 1)
	rhs := f.NewConstUint32(pt.FileRegion{}, 2)
	sum := f.NewOpr2(pt.FileRegion{}, pt.OpAdd, lhs, rhs)

	if sum.OperandNum() != 2 {
		t.Fatalf("OperandNum() = %d, want 2", sum.OperandNum())
	}
	if sum.Operand0() != lhs || sum.Operand1() != rhs {
		t.Fatalf("operands not preserved in order")
	}
	if got, want := pt.Decompile(sum), "1 + 2"; got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestNewCaseCollectsItems(t *testing.T) {
	f := NewSptFactory(arena.New())
	cond := f.NewPrimary(pt.FileRegion{}, nil, "sel")
	body := f.NewNull(pt.FileRegion{})
	label := f.NewConstUint32(pt.FileRegion{}, 0)

	items := []pt.PtCaseItem{
		{Labels: []*pt.PtExpr{label}, Body: body},
		{Body: body}, // default arm: empty Labels
	}
	stmt := f.NewCase(pt.FileRegion{}, pt.StmtCase, cond, items)

	if !stmt.IsCase() {
		t.Fatalf("IsCase() = false, want true")
	}
	if len(stmt.CaseItems) != 2 {
		t.Fatalf("len(CaseItems) = %d, want 2", len(stmt.CaseItems))
	}
	if len(stmt.CaseItems[1].Labels) != 0 {
		t.Fatalf("second arm should be the default (empty Labels)")
	}
}

func TestSetItemsPanicsOnSecondCall(t *testing.T) {
	f := NewCptFactory(arena.New())
	head := f.NewIOHead(pt.FileRegion{}, pt.DirInput, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	items := []*pt.PtIOItem{f.NewIOItem(pt.FileRegion{}, "a", nil)}
	head.SetItems(items)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("second SetItems call should panic")
		}
	}()
	head.SetItems(items)
}

func TestMarkConstIndexDoesNotMutateOriginal(t *testing.T) {
	f := NewCptFactory(arena.New())
	e := f.NewConstUint32(pt.FileRegion{}, 3)
	marked := f.MarkConstIndex(e)

	if e.IsConstIdx {
		t.Fatalf("original expression must stay unmarked")
	}
	if !marked.IsConstIdx {
		t.Fatalf("marked copy must carry IsConstIdx")
	}
}

func TestNewModuleCountsChildren(t *testing.T) {
	f := NewSptFactory(arena.New())
	port := f.NewPort(pt.FileRegion{}, "a", nil)
	m := f.NewModule(pt.FileRegion{}, "counter", false, false, false, pt.CompilerDirectives{}, true,
		"", "", "", nil, []*pt.PtPort{port}, nil, nil, nil)

	if m.PortNum() != 1 {
		t.Fatalf("PortNum() = %d, want 1", m.PortNum())
	}
	if m.Port(0) != port {
		t.Fatalf("Port(0) did not round-trip")
	}
	if m.Port(1) != nil {
		t.Fatalf("out-of-range Port() must return nil")
	}
}
