package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// ioFactory groups the IO-header/item entry points. As with declFactory,
// headers come back item-less and are backfilled via PtIOHead.SetItems at
// end-of-header (spec.md §4.4).
type ioFactory interface {
	NewIOHead(fr pt.FileRegion, dir pt.Direction, aux pt.AuxType, netType pt.NetType, varType pt.VarType, signed bool, rng *pt.PtRange) *pt.PtIOHead
	NewIOItem(fr pt.FileRegion, name string, init *pt.PtExpr) *pt.PtIOItem
}

func (b *base) NewIOHead(fr pt.FileRegion, dir pt.Direction, aux pt.AuxType, netType pt.NetType, varType pt.VarType, signed bool, rng *pt.PtRange) *pt.PtIOHead {
	h := arena.Alloc[pt.PtIOHead](b.arena, arena.CategoryIO)
	h.Region, h.Dir, h.Aux = fr, dir, aux
	h.NetType, h.VarType, h.Signed, h.Range = netType, varType, signed, rng
	return h
}

func (b *base) NewIOItem(fr pt.FileRegion, name string, init *pt.PtExpr) *pt.PtIOItem {
	it := arena.Alloc[pt.PtIOItem](b.arena, arena.CategoryIO)
	it.Region, it.Name, it.Init = fr, name, init
	return it
}
