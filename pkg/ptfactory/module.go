package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// moduleFactory groups the module-container and port entry points
// (spec.md §4.2). NewModule is the sole "closing" call of a module: it is
// invoked once the parser assembly state has accumulated every working list
// for that module (spec.md §4.4).
type moduleFactory interface {
	NewModule(fr pt.FileRegion, name string, isMacro, isProtected, isCellDefine bool, directives pt.CompilerDirectives, explicitPortName bool, config, library, cell string, paramPortHeads []*pt.PtDeclHead, ports []*pt.PtPort, ioHeads []*pt.PtIOHead, declHeads []*pt.PtDeclHead, items []*pt.PtItem) *pt.PtModule
	NewPort(fr pt.FileRegion, extName string, ref *pt.PtExpr) *pt.PtPort
	NewConcatPort(fr pt.FileRegion, extName string, refs []pt.PortRef) *pt.PtPort
}

func (b *base) NewModule(fr pt.FileRegion, name string, isMacro, isProtected, isCellDefine bool, directives pt.CompilerDirectives, explicitPortName bool, config, library, cell string, paramPortHeads []*pt.PtDeclHead, ports []*pt.PtPort, ioHeads []*pt.PtIOHead, declHeads []*pt.PtDeclHead, items []*pt.PtItem) *pt.PtModule {
	m := arena.Alloc[pt.PtModule](b.arena, arena.CategoryModule)
	m.Region, m.Name = fr, name
	m.IsMacro, m.IsProtected, m.IsCellDefine = isMacro, isProtected, isCellDefine
	m.Directives = directives
	m.ExplicitPortName = explicitPortName
	m.Config, m.Library, m.Cell = config, library, cell
	m.ParamPortHeads = arena.BuildArray(b.arena, paramPortHeads)
	m.Ports = arena.BuildArray(b.arena, ports)
	m.IOHeads = arena.BuildArray(b.arena, ioHeads)
	m.DeclHeads = arena.BuildArray(b.arena, declHeads)
	m.Items = arena.BuildArray(b.arena, items)
	return m
}

func (b *base) NewPort(fr pt.FileRegion, extName string, ref *pt.PtExpr) *pt.PtPort {
	p := arena.Alloc[pt.PtPort](b.arena, arena.CategoryModule)
	p.Region, p.ExtName, p.Ref = fr, extName, ref
	return p
}

func (b *base) NewConcatPort(fr pt.FileRegion, extName string, refs []pt.PortRef) *pt.PtPort {
	p := arena.Alloc[pt.PtPort](b.arena, arena.CategoryModule)
	p.Region, p.ExtName = fr, extName
	p.ConnRefs = arena.BuildArray(b.arena, refs)
	return p
}
