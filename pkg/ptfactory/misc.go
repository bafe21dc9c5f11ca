package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// miscFactory groups attribute instances and specify-path entry points
// (spec.md §4.2).
type miscFactory interface {
	NewAttrInst(fr pt.FileRegion, specs []pt.PtAttrSpec) *pt.PtAttrInst
	NewAttrSpec(fr pt.FileRegion, name string, expr *pt.PtExpr) pt.PtAttrSpec
	NewPathDecl(fr pt.FileRegion, edge pt.PathEdge, inputs []*pt.PtExpr, outputExpr *pt.PtExpr, outputs []*pt.PtExpr, isFullPath bool, polarityOp byte, delay *pt.PtPathDelay) *pt.PtPathDecl
	NewPathDelay(fr pt.FileRegion, values []*pt.PtExpr) *pt.PtPathDelay
}

func (b *base) NewAttrInst(fr pt.FileRegion, specs []pt.PtAttrSpec) *pt.PtAttrInst {
	a := arena.Alloc[pt.PtAttrInst](b.arena, arena.CategoryMisc)
	a.Region = fr
	a.Specs = arena.BuildArray(b.arena, specs)
	return a
}

func (b *base) NewAttrSpec(fr pt.FileRegion, name string, expr *pt.PtExpr) pt.PtAttrSpec {
	return pt.PtAttrSpec{Region: fr, Name: name, Expr: expr}
}

func (b *base) NewPathDecl(fr pt.FileRegion, edge pt.PathEdge, inputs []*pt.PtExpr, outputExpr *pt.PtExpr, outputs []*pt.PtExpr, isFullPath bool, polarityOp byte, delay *pt.PtPathDelay) *pt.PtPathDecl {
	d := arena.Alloc[pt.PtPathDecl](b.arena, arena.CategoryMisc)
	d.Region, d.Edge = fr, edge
	d.Inputs = b.buildExprs(inputs)
	d.OutputExpr = outputExpr
	d.Outputs = b.buildExprs(outputs)
	d.IsFullPath, d.PolarityOp, d.Delay = isFullPath, polarityOp, delay
	return d
}

func (b *base) NewPathDelay(fr pt.FileRegion, values []*pt.PtExpr) *pt.PtPathDelay {
	d := arena.Alloc[pt.PtPathDelay](b.arena, arena.CategoryMisc)
	d.Region = fr
	d.Values = b.buildExprs(values)
	return d
}
