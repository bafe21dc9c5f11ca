package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// udpFactory groups the user-defined-primitive entry points (spec.md §4.2).
// The table validation this family feeds (input-column count, legal
// symbols, edge columns, current-state column, initial value, empty table)
// lives in package validate — these constructors only
// ever build the raw table (spec.md §4.3's "factory methods never fail").
type udpFactory interface {
	NewCombUdp(fr pt.FileRegion, name string, ports []*pt.PtPort, ioList []*pt.PtIOItem, ioHeads []*pt.PtIOHead, entries []*pt.PtUdpEntry) *pt.PtUdp
	NewSeqUdp(fr pt.FileRegion, name string, ports []*pt.PtPort, ioList []*pt.PtIOItem, ioHeads []*pt.PtIOHead, initVal *pt.PtExpr, entries []*pt.PtUdpEntry) *pt.PtUdp
	NewUdpEntryComb(fr pt.FileRegion, inputs []pt.PtUdpValue, output pt.PtUdpValue) *pt.PtUdpEntry
	NewUdpEntrySeq(fr pt.FileRegion, inputs []pt.PtUdpValue, current pt.PtUdpValue, output pt.PtUdpValue) *pt.PtUdpEntry
	NewUdpValue1(fr pt.FileRegion, sym byte) pt.PtUdpValue
	NewUdpValue2(fr pt.FileRegion, sym1, sym2 byte) pt.PtUdpValue
}

func (b *base) newUdp(fr pt.FileRegion, name string, primType pt.UdpPrimType, ports []*pt.PtPort, ioList []*pt.PtIOItem, ioHeads []*pt.PtIOHead) *pt.PtUdp {
	u := arena.Alloc[pt.PtUdp](b.arena, arena.CategoryUdp)
	u.Region, u.Name, u.PrimType = fr, name, primType
	u.Ports = arena.BuildArray(b.arena, ports)
	u.IOList = arena.BuildArray(b.arena, ioList)
	u.IOHeads = arena.BuildArray(b.arena, ioHeads)
	return u
}

func (b *base) NewCombUdp(fr pt.FileRegion, name string, ports []*pt.PtPort, ioList []*pt.PtIOItem, ioHeads []*pt.PtIOHead, entries []*pt.PtUdpEntry) *pt.PtUdp {
	u := b.newUdp(fr, name, pt.UdpCombinational, ports, ioList, ioHeads)
	u.Entries = arena.BuildArray(b.arena, entries)
	return u
}

func (b *base) NewSeqUdp(fr pt.FileRegion, name string, ports []*pt.PtPort, ioList []*pt.PtIOItem, ioHeads []*pt.PtIOHead, initVal *pt.PtExpr, entries []*pt.PtUdpEntry) *pt.PtUdp {
	u := b.newUdp(fr, name, pt.UdpSequential, ports, ioList, ioHeads)
	u.InitVal = initVal
	u.Entries = arena.BuildArray(b.arena, entries)
	return u
}

func (b *base) NewUdpEntryComb(fr pt.FileRegion, inputs []pt.PtUdpValue, output pt.PtUdpValue) *pt.PtUdpEntry {
	e := arena.Alloc[pt.PtUdpEntry](b.arena, arena.CategoryUdp)
	e.Region, e.Output = fr, output
	e.Inputs = arena.BuildArray(b.arena, inputs)
	return e
}

func (b *base) NewUdpEntrySeq(fr pt.FileRegion, inputs []pt.PtUdpValue, current pt.PtUdpValue, output pt.PtUdpValue) *pt.PtUdpEntry {
	e := arena.Alloc[pt.PtUdpEntry](b.arena, arena.CategoryUdp)
	e.Region, e.Output = fr, output
	e.Inputs = arena.BuildArray(b.arena, inputs)
	e.Current = &current
	return e
}

func (b *base) NewUdpValue1(fr pt.FileRegion, sym byte) pt.PtUdpValue {
	return pt.PtUdpValue{Region: fr, Symbol1: sym}
}

func (b *base) NewUdpValue2(fr pt.FileRegion, sym1, sym2 byte) pt.PtUdpValue {
	return pt.PtUdpValue{Region: fr, Symbol1: sym1, Symbol2: sym2}
}
