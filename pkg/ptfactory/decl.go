package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// declFactory groups the declaration-header/item entry points (spec.md §4.2,
// §4.4's "current-header indirection, end-of-header flush" protocol — the
// header is returned with an empty item list and backfilled later via
// PtDeclHead.SetItems once the parser assembly state has collected the
// whole declaration's names).
type declFactory interface {
	NewParamHead(fr pt.FileRegion, signed bool, rng *pt.PtRange) *pt.PtDeclHead
	NewLocalParamHead(fr pt.FileRegion, signed bool, rng *pt.PtRange) *pt.PtDeclHead
	NewSpecParamHead(fr pt.FileRegion, rng *pt.PtRange) *pt.PtDeclHead
	NewEventHead(fr pt.FileRegion) *pt.PtDeclHead
	NewGenvarHead(fr pt.FileRegion) *pt.PtDeclHead
	NewVarHead(fr pt.FileRegion, varType pt.VarType) *pt.PtDeclHead
	NewRegHead(fr pt.FileRegion, signed bool, rng *pt.PtRange) *pt.PtDeclHead
	NewNetHead(fr pt.FileRegion, netType pt.NetType, vectored, scalared, signed bool, rng *pt.PtRange, strength *pt.PtStrength, delay *pt.PtDelay) *pt.PtDeclHead
	NewDeclItem(fr pt.FileRegion, name string, init *pt.PtExpr, rngArr []pt.PtRange) *pt.PtDeclItem

	NewRange(fr pt.FileRegion, msb, lsb *pt.PtExpr) *pt.PtRange
	NewStrength(fr pt.FileRegion, s0, s1, charge pt.VpiStrength) *pt.PtStrength
	NewDelay1(fr pt.FileRegion, v0 *pt.PtExpr) *pt.PtDelay
	NewDelay2(fr pt.FileRegion, v0, v1 *pt.PtExpr) *pt.PtDelay
	NewDelay3(fr pt.FileRegion, v0, v1, v2 *pt.PtExpr) *pt.PtDelay
}

func (b *base) allocDeclHead() *pt.PtDeclHead {
	return arena.Alloc[pt.PtDeclHead](b.arena, arena.CategoryDecl)
}

func (b *base) NewParamHead(fr pt.FileRegion, signed bool, rng *pt.PtRange) *pt.PtDeclHead {
	h := b.allocDeclHead()
	h.Region, h.Type, h.Signed, h.Range = fr, pt.DeclParameter, signed, rng
	return h
}

func (b *base) NewLocalParamHead(fr pt.FileRegion, signed bool, rng *pt.PtRange) *pt.PtDeclHead {
	h := b.allocDeclHead()
	h.Region, h.Type, h.Signed, h.Range = fr, pt.DeclLocalParam, signed, rng
	return h
}

func (b *base) NewSpecParamHead(fr pt.FileRegion, rng *pt.PtRange) *pt.PtDeclHead {
	h := b.allocDeclHead()
	h.Region, h.Type, h.Range = fr, pt.DeclSpecParam, rng
	return h
}

func (b *base) NewEventHead(fr pt.FileRegion) *pt.PtDeclHead {
	h := b.allocDeclHead()
	h.Region, h.Type = fr, pt.DeclEvent
	return h
}

func (b *base) NewGenvarHead(fr pt.FileRegion) *pt.PtDeclHead {
	h := b.allocDeclHead()
	h.Region, h.Type = fr, pt.DeclGenvar
	return h
}

func (b *base) NewVarHead(fr pt.FileRegion, varType pt.VarType) *pt.PtDeclHead {
	h := b.allocDeclHead()
	h.Region, h.Type, h.VarType = fr, pt.DeclVar, varType
	return h
}

func (b *base) NewRegHead(fr pt.FileRegion, signed bool, rng *pt.PtRange) *pt.PtDeclHead {
	h := b.allocDeclHead()
	h.Region, h.Type, h.Signed, h.Range = fr, pt.DeclReg, signed, rng
	return h
}

func (b *base) NewNetHead(fr pt.FileRegion, netType pt.NetType, vectored, scalared, signed bool, rng *pt.PtRange, strength *pt.PtStrength, delay *pt.PtDelay) *pt.PtDeclHead {
	h := b.allocDeclHead()
	h.Region, h.Type, h.NetType = fr, pt.DeclNet, netType
	h.Vectored, h.Scalared, h.Signed, h.Range = vectored, scalared, signed, rng
	h.Strength, h.Delay = strength, delay
	return h
}

func (b *base) NewDeclItem(fr pt.FileRegion, name string, init *pt.PtExpr, rngArr []pt.PtRange) *pt.PtDeclItem {
	it := arena.Alloc[pt.PtDeclItem](b.arena, arena.CategoryDecl)
	it.Region, it.Name, it.Init = fr, name, init
	it.RangeArr = arena.BuildArray(b.arena, rngArr)
	return it
}

func (b *base) NewRange(fr pt.FileRegion, msb, lsb *pt.PtExpr) *pt.PtRange {
	r := arena.Alloc[pt.PtRange](b.arena, arena.CategoryMisc)
	r.Region, r.Msb, r.Lsb = fr, msb, lsb
	return r
}

func (b *base) NewStrength(fr pt.FileRegion, s0, s1, charge pt.VpiStrength) *pt.PtStrength {
	s := arena.Alloc[pt.PtStrength](b.arena, arena.CategoryMisc)
	s.Region, s.Strength0, s.Strength1, s.ChargeStrength = fr, s0, s1, charge
	return s
}

func (b *base) NewDelay1(fr pt.FileRegion, v0 *pt.PtExpr) *pt.PtDelay {
	d := arena.Alloc[pt.PtDelay](b.arena, arena.CategoryMisc)
	d.Region, d.N = fr, 1
	d.Values[0] = v0
	return d
}

func (b *base) NewDelay2(fr pt.FileRegion, v0, v1 *pt.PtExpr) *pt.PtDelay {
	d := arena.Alloc[pt.PtDelay](b.arena, arena.CategoryMisc)
	d.Region, d.N = fr, 2
	d.Values[0], d.Values[1] = v0, v1
	return d
}

func (b *base) NewDelay3(fr pt.FileRegion, v0, v1, v2 *pt.PtExpr) *pt.PtDelay {
	d := arena.Alloc[pt.PtDelay](b.arena, arena.CategoryMisc)
	d.Region, d.N = fr, 3
	d.Values[0], d.Values[1], d.Values[2] = v0, v1, v2
	return d
}
