package parsestate

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/diag"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptfactory"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/utils"
)

// ParserState is the mutable working state one module/UDP parse accumulates
// into between 'module'/'primitive' and 'endmodule'/'endprimitive'
// (spec.md §3.3, §4.4). It owns no grammar or lexer logic of its own — a
// hand-written or goparsec-driven grammar driver calls these methods on
// each reduction, then asks the factory (via ParserState) to close the
// container once every working list is complete.
type ParserState struct {
	factory ptfactory.Factory
	arena   *arena.Arena
	diagH   diag.Handler

	ports          *arena.FragList[*pt.PtPort]
	paramPortHeads *arena.FragList[*pt.PtDeclHead]
	ioHeads        *arena.FragList[*pt.PtIOHead]
	declHeads      *arena.FragList[*pt.PtDeclHead]
	items          *arena.FragList[*pt.PtItem]
	instances      *arena.FragList[*pt.PtInstance]
	defparams      *arena.FragList[*pt.PtDefParam]
	contAssigns    *arena.FragList[*pt.PtContAssign]

	udpPorts   *arena.FragList[*pt.PtPort]
	udpIOList  *arena.FragList[*pt.PtIOItem]
	udpEntries *arena.FragList[*pt.PtUdpEntry]

	// current-header indirection (spec.md §4.4): a header is returned by
	// the factory item-less and held here while the grammar collects its
	// item list, then flushed (SetItems + appended to the right list).
	curIOHead     *pt.PtIOHead
	curIOItems    *arena.FragList[*pt.PtIOItem]
	curDeclHead   *pt.PtDeclHead
	curDeclItems  *arena.FragList[*pt.PtDeclItem]

	scopes utils.Stack[*scopeFrame]
}

// New creates an empty ParserState bound to factory f, arena a and
// diagnostic sink h.
func New(f ptfactory.Factory, a *arena.Arena, h diag.Handler) *ParserState {
	return &ParserState{
		factory: f,
		arena:   a,
		diagH:   h,

		ports:          arena.NewFragList[*pt.PtPort](),
		paramPortHeads: arena.NewFragList[*pt.PtDeclHead](),
		ioHeads:        arena.NewFragList[*pt.PtIOHead](),
		declHeads:      arena.NewFragList[*pt.PtDeclHead](),
		items:          arena.NewFragList[*pt.PtItem](),
		instances:      arena.NewFragList[*pt.PtInstance](),
		defparams:      arena.NewFragList[*pt.PtDefParam](),
		contAssigns:    arena.NewFragList[*pt.PtContAssign](),

		udpPorts:   arena.NewFragList[*pt.PtPort](),
		udpIOList:  arena.NewFragList[*pt.PtIOItem](),
		udpEntries: arena.NewFragList[*pt.PtUdpEntry](),

		curIOItems:   arena.NewFragList[*pt.PtIOItem](),
		curDeclItems: arena.NewFragList[*pt.PtDeclItem](),
	}
}

// Reset bulk-clears every working list between top-level declarations
// (spec.md §4.1's "bulk reset between top-level declarations"), so a
// ParserState can be reused across an entire source file's module/UDP
// sequence without per-module allocation churn.
func (p *ParserState) Reset() {
	p.ports.Reset()
	p.paramPortHeads.Reset()
	p.ioHeads.Reset()
	p.declHeads.Reset()
	p.items.Reset()
	p.instances.Reset()
	p.defparams.Reset()
	p.contAssigns.Reset()
	p.udpPorts.Reset()
	p.udpIOList.Reset()
	p.udpEntries.Reset()
	p.curIOHead, p.curDeclHead = nil, nil
	p.curIOItems.Reset()
	p.curDeclItems.Reset()
}

// --- module-level working lists -----------------------------------------

func (p *ParserState) AddPort(port *pt.PtPort)            { p.ports.Push(port) }
func (p *ParserState) AddParamPortHead(h *pt.PtDeclHead)  { p.paramPortHeads.Push(h) }
func (p *ParserState) AddInstance(inst *pt.PtInstance)    { p.instances.Push(inst) }
func (p *ParserState) AddDefParam(d *pt.PtDefParam)       { p.defparams.Push(d) }
func (p *ParserState) AddContAssign(c *pt.PtContAssign)   { p.contAssigns.Push(c) }
func (p *ParserState) AddUdpPort(port *pt.PtPort)         { p.udpPorts.Push(port) }
func (p *ParserState) AddUdpIOItem(it *pt.PtIOItem)       { p.udpIOList.Push(it) }
func (p *ParserState) AddUdpEntry(e *pt.PtUdpEntry)       { p.udpEntries.Push(e) }

// AddDeclHead appends a completed (post-flush) declaration header either to
// the innermost open scope's list, or to the module-level list at scope
// depth zero.
func (p *ParserState) AddDeclHead(h *pt.PtDeclHead) {
	if f := p.topScope(); f != nil {
		f.declHeads.Push(h)
		return
	}
	p.declHeads.Push(h)
}

// AddIOHead appends a completed IO header to the innermost task/function
// scope's IO list if one is open, otherwise to the module-level list
// (spec.md §4.4 "current-header indirection").
func (p *ParserState) AddIOHead(h *pt.PtIOHead) {
	if f := p.topScope(); f != nil && (f.kind == ScopeTask || f.kind == ScopeFunction) {
		f.ioHeads.Push(h)
		return
	}
	p.ioHeads.Push(h)
}

// AddItem appends a completed item to the innermost generate-block scope's
// item list if one is open, otherwise to the module-level item list.
func (p *ParserState) AddItem(it *pt.PtItem) {
	if f := p.topScope(); f != nil && f.kind == ScopeGenerateBlock {
		f.items.Push(it)
		return
	}
	p.items.Push(it)
}

// AddStmt appends a completed statement to the innermost named-block/task/
// function scope's statement list. Calling it outside any such scope is a
// parser-assembly bug — initial/always bodies are single PtStmt values
// built directly by the factory, never accumulated here.
func (p *ParserState) AddStmt(s *pt.PtStmt) {
	if f := p.topScope(); f != nil && f.kind != ScopeGenerateBlock {
		f.stmts.Push(s)
	}
}

// --- current-header indirection / end-of-header flush -------------------

// BeginIOHead opens h as the current IO header awaiting its item list.
func (p *ParserState) BeginIOHead(h *pt.PtIOHead) {
	p.curIOHead = h
	p.curIOItems.Reset()
}

// AddCurIOItem appends one name to the currently-open IO header.
func (p *ParserState) AddCurIOItem(it *pt.PtIOItem) { p.curIOItems.Push(it) }

// FlushIOHead backfills the open IO header's item list (PtIOHead.SetItems)
// and files it into the right list via AddIOHead, ending the "current
// header" window (spec.md §4.4's end-of-header flush).
func (p *ParserState) FlushIOHead() {
	if p.curIOHead == nil {
		return
	}
	p.curIOHead.SetItems(arena.BuildArray(p.arena, p.curIOItems.Items()))
	p.AddIOHead(p.curIOHead)
	p.curIOHead = nil
	p.curIOItems.Reset()
}

// BeginDeclHead opens h as the current declaration header awaiting its item list.
func (p *ParserState) BeginDeclHead(h *pt.PtDeclHead) {
	p.curDeclHead = h
	p.curDeclItems.Reset()
}

// AddCurDeclItem appends one name to the currently-open declaration header.
func (p *ParserState) AddCurDeclItem(it *pt.PtDeclItem) { p.curDeclItems.Push(it) }

// FlushDeclHead backfills the open declaration header's item list and files
// it into the right list, mirroring FlushIOHead.
func (p *ParserState) FlushDeclHead() {
	if p.curDeclHead == nil {
		return
	}
	p.curDeclHead.SetItems(arena.BuildArray(p.arena, p.curDeclItems.Items()))
	p.AddDeclHead(p.curDeclHead)
	p.curDeclHead = nil
	p.curDeclItems.Reset()
}

// --- container-closing snapshots -----------------------------------------

// ModuleLists returns the accumulated module-level working lists, in the
// order PtFactory.NewModule expects them. Callers build the module via
// p.Factory() and these, then call p.Reset() before the next module.
func (p *ParserState) ModuleLists() (paramPortHeads []*pt.PtDeclHead, ports []*pt.PtPort, ioHeads []*pt.PtIOHead, declHeads []*pt.PtDeclHead, items []*pt.PtItem) {
	return arena.BuildArray(p.arena, p.paramPortHeads.Items()),
		arena.BuildArray(p.arena, p.ports.Items()),
		arena.BuildArray(p.arena, p.ioHeads.Items()),
		arena.BuildArray(p.arena, p.declHeads.Items()),
		arena.BuildArray(p.arena, p.items.Items())
}

// UdpLists returns the accumulated UDP-level working lists.
func (p *ParserState) UdpLists() (ports []*pt.PtPort, ioList []*pt.PtIOItem, entries []*pt.PtUdpEntry) {
	return arena.BuildArray(p.arena, p.udpPorts.Items()),
		arena.BuildArray(p.arena, p.udpIOList.Items()),
		arena.BuildArray(p.arena, p.udpEntries.Items())
}

// Instances returns the accumulated gate/module-instance list.
func (p *ParserState) Instances() []*pt.PtInstance {
	return arena.BuildArray(p.arena, p.instances.Items())
}

// DefParams returns the accumulated defparam bindings.
func (p *ParserState) DefParams() []*pt.PtDefParam {
	return arena.BuildArray(p.arena, p.defparams.Items())
}

// ContAssigns returns the accumulated continuous-assignment pairs.
func (p *ParserState) ContAssigns() []*pt.PtContAssign {
	return arena.BuildArray(p.arena, p.contAssigns.Items())
}

// Factory exposes the bound Factory so a grammar driver can call its
// construction methods directly.
func (p *ParserState) Factory() ptfactory.Factory { return p.factory }

// Diag exposes the bound diagnostic sink for validators and the grammar
// driver to report through.
func (p *ParserState) Diag() diag.Handler { return p.diagH }
