package pt_test

import (
	"testing"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptfactory"
)

func TestDecompileConstUint32(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	e := f.NewConstUint32(pt.FileRegion{}, 42)
	if got := pt.Decompile(e); got != "42" {
		t.Fatalf("Decompile() = %q, want %q", got, "42")
	}
}

func TestDecompileAddChainNeedsNoParens(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	a := f.NewConstUint32(pt.FileRegion{}, 1)
	b := f.NewConstUint32(pt.FileRegion{}, 2)
	c := f.NewConstUint32(pt.FileRegion{}, 3)
	sum := f.NewOpr2(pt.FileRegion{}, pt.OpAdd, a, b)
	total := f.NewOpr2(pt.FileRegion{}, pt.OpAdd, sum, c)

	want := "1 + 2 + 3"
	if got := pt.Decompile(total); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestDecompileLowerPrecedenceChildGetsParens(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	a := f.NewConstUint32(pt.FileRegion{}, 1)
	b := f.NewConstUint32(pt.FileRegion{}, 2)
	c := f.NewConstUint32(pt.FileRegion{}, 3)
	sum := f.NewOpr2(pt.FileRegion{}, pt.OpAdd, a, b)    // precedence 9
	prod := f.NewOpr2(pt.FileRegion{}, pt.OpMult, sum, c) // precedence 10, higher

	want := "(1 + 2) * 3"
	if got := pt.Decompile(prod); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestDecompileHigherPrecedenceChildSkipsParens(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	a := f.NewConstUint32(pt.FileRegion{}, 1)
	b := f.NewConstUint32(pt.FileRegion{}, 2)
	c := f.NewConstUint32(pt.FileRegion{}, 3)
	prod := f.NewOpr2(pt.FileRegion{}, pt.OpMult, a, b)
	sum := f.NewOpr2(pt.FileRegion{}, pt.OpAdd, prod, c)

	want := "1 * 2 + 3"
	if got := pt.Decompile(sum); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestDecompileUnaryOperator(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	a := f.NewConstUint32(pt.FileRegion{}, 5)
	neg := f.NewOpr1(pt.FileRegion{}, pt.OpUnaryMinus, a)

	if got := pt.Decompile(neg); got != "-5" {
		t.Fatalf("Decompile() = %q, want %q", got, "-5")
	}
}

func TestDecompileConcat(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	a := f.NewConstUint32(pt.FileRegion{}, 1)
	b := f.NewConstUint32(pt.FileRegion{}, 2)
	cc := f.NewConcat(pt.FileRegion{}, []*pt.PtExpr{a, b})

	want := "{1, 2}"
	if got := pt.Decompile(cc); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestDecompileMultiConcat(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	rep := f.NewConstUint32(pt.FileRegion{}, 4)
	a := f.NewConstUint32(pt.FileRegion{}, 1)
	mc := f.NewMultiConcat(pt.FileRegion{}, rep, []*pt.PtExpr{a})

	want := "{4{1}}"
	if got := pt.Decompile(mc); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestDecompileCondition(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	cond := f.NewConstUint32(pt.FileRegion{}, 1)
	then := f.NewConstUint32(pt.FileRegion{}, 2)
	els := f.NewConstUint32(pt.FileRegion{}, 3)
	e := f.NewOpr3(pt.FileRegion{}, pt.OpCondition, cond, then, els)

	want := "1 ? 2 : 3"
	if got := pt.Decompile(e); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestDecompilePrimaryWithIndexAndHierarchy(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	branches := []pt.PtNameBranch{{Name: "sub", HasIndex: true, Index: 2}}
	idx := f.NewConstUint32(pt.FileRegion{}, 0)
	e := f.NewIndexedPrimary(pt.FileRegion{}, branches, "wire_a", []*pt.PtExpr{idx})

	want := "sub[2].wire_a[0]"
	if got := pt.Decompile(e); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestDecompileFuncCall(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	a := f.NewConstUint32(pt.FileRegion{}, 1)
	b := f.NewConstUint32(pt.FileRegion{}, 2)
	call := f.NewFuncCall(pt.FileRegion{}, nil, "add", []*pt.PtExpr{a, b})

	want := "add(1, 2)"
	if got := pt.Decompile(call); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}

func TestDecompileSysFuncCall(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	a := f.NewConstUint32(pt.FileRegion{}, 1)
	call := f.NewSysFuncCall(pt.FileRegion{}, "display", []*pt.PtExpr{a})

	want := "$display(1)"
	if got := pt.Decompile(call); got != want {
		t.Fatalf("Decompile() = %q, want %q", got, want)
	}
}
