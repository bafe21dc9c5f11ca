package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// itemFactory groups the top-level module-body construct entry points
// (spec.md §4.2).
type itemFactory interface {
	NewDefParam(fr pt.FileRegion, defparams []*pt.PtDefParam) *pt.PtItem
	NewDefParamBinding(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, value *pt.PtExpr) *pt.PtDefParam
	NewContAssign(fr pt.FileRegion, strength *pt.PtStrength, delay *pt.PtDelay, assigns []*pt.PtContAssign) *pt.PtItem
	NewContAssignPair(fr pt.FileRegion, lhs, rhs *pt.PtExpr) *pt.PtContAssign
	NewInitial(fr pt.FileRegion, body *pt.PtStmt) *pt.PtItem
	NewAlways(fr pt.FileRegion, body *pt.PtStmt) *pt.PtItem
	NewTask(fr pt.FileRegion, name string, automatic bool, ioHeads []*pt.PtIOHead, declHeads []*pt.PtDeclHead, stmts []*pt.PtStmt) *pt.PtItem
	NewFunction(fr pt.FileRegion, name string, automatic bool, funcT pt.FuncType, rng *pt.PtRange, varType pt.VarType, ioHeads []*pt.PtIOHead, declHeads []*pt.PtDeclHead, stmts []*pt.PtStmt) *pt.PtItem
	NewGateInstance(fr pt.FileRegion, gate pt.GateType, strength *pt.PtStrength, delay *pt.PtDelay, instances []*pt.PtInstance) *pt.PtItem
	NewModuleInstance(fr pt.FileRegion, defName string, paramConn []*pt.PtConnection, delay *pt.PtDelay, instances []*pt.PtInstance) *pt.PtItem
	NewInstance(fr pt.FileRegion, name string, rng *pt.PtRange, conns []*pt.PtConnection) *pt.PtInstance
	NewGenerateBlock(fr pt.FileRegion, items []*pt.PtItem) *pt.PtItem
	NewGenerateIf(fr pt.FileRegion, cond *pt.PtExpr, thenItems, elseItems []*pt.PtItem) *pt.PtItem
	NewGenerateCase(fr pt.FileRegion, cond *pt.PtExpr, items []pt.PtGenCaseItem) *pt.PtItem
	NewGenerateFor(fr pt.FileRegion, init *pt.PtStmt, cond *pt.PtExpr, next *pt.PtStmt, loopVar string, items []*pt.PtItem) *pt.PtItem
	NewSpecify(fr pt.FileRegion, items []*pt.PtItem) *pt.PtItem
	NewSpecPath(fr pt.FileRegion, decl *pt.PtPathDecl) *pt.PtItem

	NewOrderedConn(fr pt.FileRegion, expr *pt.PtExpr) *pt.PtConnection
	NewNamedConn(fr pt.FileRegion, name string, expr *pt.PtExpr) *pt.PtConnection
}

func (b *base) allocItem() *pt.PtItem {
	return arena.Alloc[pt.PtItem](b.arena, arena.CategoryItem)
}

func (b *base) NewDefParam(fr pt.FileRegion, defparams []*pt.PtDefParam) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag = fr, pt.ItemDefParam
	it.DefParams = arena.BuildArray(b.arena, defparams)
	return it
}

func (b *base) NewDefParamBinding(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, value *pt.PtExpr) *pt.PtDefParam {
	d := arena.Alloc[pt.PtDefParam](b.arena, arena.CategoryItem)
	d.Region, d.Tail, d.Value = fr, tail, value
	d.NameBranch = b.buildNameBranch(branches)
	return d
}

func (b *base) NewContAssign(fr pt.FileRegion, strength *pt.PtStrength, delay *pt.PtDelay, assigns []*pt.PtContAssign) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.Strength, it.Delay = fr, pt.ItemContAssign, strength, delay
	it.Assigns = arena.BuildArray(b.arena, assigns)
	return it
}

func (b *base) NewContAssignPair(fr pt.FileRegion, lhs, rhs *pt.PtExpr) *pt.PtContAssign {
	c := arena.Alloc[pt.PtContAssign](b.arena, arena.CategoryItem)
	c.Region, c.Lhs, c.Rhs = fr, lhs, rhs
	return c
}

func (b *base) NewInitial(fr pt.FileRegion, body *pt.PtStmt) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.Body = fr, pt.ItemInitial, body
	return it
}

func (b *base) NewAlways(fr pt.FileRegion, body *pt.PtStmt) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.Body = fr, pt.ItemAlways, body
	return it
}

func (b *base) NewTask(fr pt.FileRegion, name string, automatic bool, ioHeads []*pt.PtIOHead, declHeads []*pt.PtDeclHead, stmts []*pt.PtStmt) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.Name, it.Automatic = fr, pt.ItemTask, name, automatic
	it.IOHeads = arena.BuildArray(b.arena, ioHeads)
	it.DeclHeads = arena.BuildArray(b.arena, declHeads)
	it.Stmts = arena.BuildArray(b.arena, stmts)
	return it
}

func (b *base) NewFunction(fr pt.FileRegion, name string, automatic bool, funcT pt.FuncType, rng *pt.PtRange, varType pt.VarType, ioHeads []*pt.PtIOHead, declHeads []*pt.PtDeclHead, stmts []*pt.PtStmt) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.Name, it.Automatic = fr, pt.ItemFunction, name, automatic
	it.FuncT, it.FuncRange, it.FuncVar = funcT, rng, varType
	it.IOHeads = arena.BuildArray(b.arena, ioHeads)
	it.DeclHeads = arena.BuildArray(b.arena, declHeads)
	it.Stmts = arena.BuildArray(b.arena, stmts)
	return it
}

func (b *base) NewGateInstance(fr pt.FileRegion, gate pt.GateType, strength *pt.PtStrength, delay *pt.PtDelay, instances []*pt.PtInstance) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.Gate, it.Strength, it.Delay = fr, pt.ItemGateInstance, gate, strength, delay
	it.Instances = arena.BuildArray(b.arena, instances)
	return it
}

func (b *base) NewModuleInstance(fr pt.FileRegion, defName string, paramConn []*pt.PtConnection, delay *pt.PtDelay, instances []*pt.PtInstance) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.DefName, it.Delay = fr, pt.ItemModuleInstance, defName, delay
	it.ParamConn = arena.BuildArray(b.arena, paramConn)
	it.Instances = arena.BuildArray(b.arena, instances)
	return it
}

func (b *base) NewInstance(fr pt.FileRegion, name string, rng *pt.PtRange, conns []*pt.PtConnection) *pt.PtInstance {
	inst := arena.Alloc[pt.PtInstance](b.arena, arena.CategoryItem)
	inst.Region, inst.Name, inst.Range = fr, name, rng
	inst.Conns = arena.BuildArray(b.arena, conns)
	return inst
}

func (b *base) NewGenerateBlock(fr pt.FileRegion, items []*pt.PtItem) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag = fr, pt.ItemGenerateBlock
	it.GenItems = arena.BuildArray(b.arena, items)
	return it
}

func (b *base) NewGenerateIf(fr pt.FileRegion, cond *pt.PtExpr, thenItems, elseItems []*pt.PtItem) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.Cond = fr, pt.ItemGenerateIf, cond
	it.ThenItems = arena.BuildArray(b.arena, thenItems)
	it.ElseItems = arena.BuildArray(b.arena, elseItems)
	return it
}

func (b *base) NewGenerateCase(fr pt.FileRegion, cond *pt.PtExpr, items []pt.PtGenCaseItem) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.Cond = fr, pt.ItemGenerateCase, cond
	it.CaseItems = arena.BuildArray(b.arena, items)
	return it
}

func (b *base) NewGenerateFor(fr pt.FileRegion, init *pt.PtStmt, cond *pt.PtExpr, next *pt.PtStmt, loopVar string, items []*pt.PtItem) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag = fr, pt.ItemGenerateFor
	it.InitStmt, it.Cond, it.NextStmt, it.LoopVar = init, cond, next, loopVar
	it.GenItems = arena.BuildArray(b.arena, items)
	return it
}

func (b *base) NewSpecify(fr pt.FileRegion, items []*pt.PtItem) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag = fr, pt.ItemSpecify
	it.SpecItems = arena.BuildArray(b.arena, items)
	return it
}

func (b *base) NewSpecPath(fr pt.FileRegion, decl *pt.PtPathDecl) *pt.PtItem {
	it := b.allocItem()
	it.Region, it.Tag, it.PathDecl = fr, pt.ItemSpecPath, decl
	return it
}

func (b *base) NewOrderedConn(fr pt.FileRegion, expr *pt.PtExpr) *pt.PtConnection {
	c := arena.Alloc[pt.PtConnection](b.arena, arena.CategoryMisc)
	c.Region, c.Type, c.Expr = fr, pt.ConnOrdered, expr
	return c
}

func (b *base) NewNamedConn(fr pt.FileRegion, name string, expr *pt.PtExpr) *pt.PtConnection {
	c := arena.Alloc[pt.PtConnection](b.arena, arena.CategoryMisc)
	c.Region, c.Type, c.Name, c.Expr = fr, pt.ConnNamed, name, expr
	return c
}
