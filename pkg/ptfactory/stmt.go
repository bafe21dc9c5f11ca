package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// stmtFactory groups the statement-family and control-prefix entry points
// (spec.md §4.2).
type stmtFactory interface {
	NewDisable(fr pt.FileRegion, branches []pt.PtNameBranch, tail string) *pt.PtStmt
	NewEnable(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, args []*pt.PtExpr) *pt.PtStmt
	NewSysEnable(fr pt.FileRegion, name string, args []*pt.PtExpr) *pt.PtStmt
	NewDelayControlStmt(fr pt.FileRegion, ctrl *pt.PtControl, body *pt.PtStmt) *pt.PtStmt
	NewEventControlStmt(fr pt.FileRegion, ctrl *pt.PtControl, body *pt.PtStmt) *pt.PtStmt
	NewWait(fr pt.FileRegion, cond *pt.PtExpr, body *pt.PtStmt) *pt.PtStmt
	NewBlockingAssign(fr pt.FileRegion, lhs *pt.PtExpr, ctrl *pt.PtControl, rhs *pt.PtExpr) *pt.PtStmt
	NewNonBlockingAssign(fr pt.FileRegion, lhs *pt.PtExpr, ctrl *pt.PtControl, rhs *pt.PtExpr) *pt.PtStmt
	NewEventTrigger(fr pt.FileRegion, primary *pt.PtExpr) *pt.PtStmt
	NewNull(fr pt.FileRegion) *pt.PtStmt
	NewIf(fr pt.FileRegion, cond *pt.PtExpr, then, els *pt.PtStmt) *pt.PtStmt
	NewCase(fr pt.FileRegion, tag pt.StmtTag, cond *pt.PtExpr, items []pt.PtCaseItem) *pt.PtStmt
	NewForever(fr pt.FileRegion, body *pt.PtStmt) *pt.PtStmt
	NewRepeat(fr pt.FileRegion, cond *pt.PtExpr, body *pt.PtStmt) *pt.PtStmt
	NewWhile(fr pt.FileRegion, cond *pt.PtExpr, body *pt.PtStmt) *pt.PtStmt
	NewFor(fr pt.FileRegion, init *pt.PtStmt, cond *pt.PtExpr, next *pt.PtStmt, body *pt.PtStmt) *pt.PtStmt
	NewPcAssign(fr pt.FileRegion, lhs, rhs *pt.PtExpr) *pt.PtStmt
	NewDeassign(fr pt.FileRegion, lhs *pt.PtExpr) *pt.PtStmt
	NewForce(fr pt.FileRegion, lhs, rhs *pt.PtExpr) *pt.PtStmt
	NewRelease(fr pt.FileRegion, lhs *pt.PtExpr) *pt.PtStmt
	NewParBlock(fr pt.FileRegion, stmts []*pt.PtStmt) *pt.PtStmt
	NewSeqBlock(fr pt.FileRegion, stmts []*pt.PtStmt) *pt.PtStmt
	NewNamedParBlock(fr pt.FileRegion, name string, declHeads []*pt.PtDeclHead, stmts []*pt.PtStmt) *pt.PtStmt
	NewNamedSeqBlock(fr pt.FileRegion, name string, declHeads []*pt.PtDeclHead, stmts []*pt.PtStmt) *pt.PtStmt

	NewDelayControl(fr pt.FileRegion, delay *pt.PtExpr) *pt.PtControl
	NewEventControl(fr pt.FileRegion, events []*pt.PtExpr) *pt.PtControl
	NewRepeatControl(fr pt.FileRegion, rep *pt.PtExpr, events []*pt.PtExpr) *pt.PtControl
}

func (b *base) allocStmt() *pt.PtStmt {
	return arena.Alloc[pt.PtStmt](b.arena, arena.CategoryStmt)
}

func (b *base) NewDisable(fr pt.FileRegion, branches []pt.PtNameBranch, tail string) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag = fr, pt.StmtDisable
	s.NameBranch, s.Tail = b.buildNameBranch(branches), tail
	return s
}

func (b *base) NewEnable(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, args []*pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag = fr, pt.StmtEnable
	s.NameBranch, s.Tail = b.buildNameBranch(branches), tail
	s.Args = b.buildExprs(args)
	return s
}

func (b *base) NewSysEnable(fr pt.FileRegion, name string, args []*pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Tail = fr, pt.StmtSysEnable, name
	s.Args = b.buildExprs(args)
	return s
}

func (b *base) NewDelayControlStmt(fr pt.FileRegion, ctrl *pt.PtControl, body *pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Control, s.Body = fr, pt.StmtDelayControl, ctrl, body
	return s
}

func (b *base) NewEventControlStmt(fr pt.FileRegion, ctrl *pt.PtControl, body *pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Control, s.Body = fr, pt.StmtEventControl, ctrl, body
	return s
}

func (b *base) NewWait(fr pt.FileRegion, cond *pt.PtExpr, body *pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Expr, s.Body = fr, pt.StmtWait, cond, body
	return s
}

func (b *base) NewBlockingAssign(fr pt.FileRegion, lhs *pt.PtExpr, ctrl *pt.PtControl, rhs *pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag = fr, pt.StmtBlockingAssign
	s.Lhs, s.Control, s.Rhs = lhs, ctrl, rhs
	return s
}

func (b *base) NewNonBlockingAssign(fr pt.FileRegion, lhs *pt.PtExpr, ctrl *pt.PtControl, rhs *pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag = fr, pt.StmtNonBlockingAssign
	s.Lhs, s.Control, s.Rhs = lhs, ctrl, rhs
	return s
}

func (b *base) NewEventTrigger(fr pt.FileRegion, primary *pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Primary = fr, pt.StmtEventTrigger, primary
	return s
}

func (b *base) NewNull(fr pt.FileRegion) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag = fr, pt.StmtNull
	return s
}

func (b *base) NewIf(fr pt.FileRegion, cond *pt.PtExpr, then, els *pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Expr, s.Body, s.ElseBody = fr, pt.StmtIf, cond, then, els
	return s
}

// NewCase builds a case/casex/casez statement. tag must be one of
// pt.StmtCase, pt.StmtCaseX or pt.StmtCaseZ; the uniqueness-of-default
// invariant (spec.md §3.4) is enforced by package validate, not here —
// factory methods always succeed (spec.md §4.3).
func (b *base) NewCase(fr pt.FileRegion, tag pt.StmtTag, cond *pt.PtExpr, items []pt.PtCaseItem) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Expr = fr, tag, cond
	s.CaseItems = arena.BuildArray(b.arena, items)
	return s
}

func (b *base) NewForever(fr pt.FileRegion, body *pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Body = fr, pt.StmtForever, body
	return s
}

func (b *base) NewRepeat(fr pt.FileRegion, cond *pt.PtExpr, body *pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Expr, s.Body = fr, pt.StmtRepeat, cond, body
	return s
}

func (b *base) NewWhile(fr pt.FileRegion, cond *pt.PtExpr, body *pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Expr, s.Body = fr, pt.StmtWhile, cond, body
	return s
}

func (b *base) NewFor(fr pt.FileRegion, init *pt.PtStmt, cond *pt.PtExpr, next *pt.PtStmt, body *pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag = fr, pt.StmtFor
	s.InitStmt, s.Expr, s.NextStmt, s.Body = init, cond, next, body
	return s
}

func (b *base) NewPcAssign(fr pt.FileRegion, lhs, rhs *pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Lhs, s.Rhs = fr, pt.StmtPcAssign, lhs, rhs
	return s
}

func (b *base) NewDeassign(fr pt.FileRegion, lhs *pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Lhs = fr, pt.StmtDeassign, lhs
	return s
}

func (b *base) NewForce(fr pt.FileRegion, lhs, rhs *pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Lhs, s.Rhs = fr, pt.StmtForce, lhs, rhs
	return s
}

func (b *base) NewRelease(fr pt.FileRegion, lhs *pt.PtExpr) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Lhs = fr, pt.StmtRelease, lhs
	return s
}

func (b *base) NewParBlock(fr pt.FileRegion, stmts []*pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag = fr, pt.StmtParBlock
	s.Children = arena.BuildArray(b.arena, stmts)
	return s
}

func (b *base) NewSeqBlock(fr pt.FileRegion, stmts []*pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag = fr, pt.StmtSeqBlock
	s.Children = arena.BuildArray(b.arena, stmts)
	return s
}

func (b *base) NewNamedParBlock(fr pt.FileRegion, name string, declHeads []*pt.PtDeclHead, stmts []*pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Name = fr, pt.StmtNamedPar, name
	s.DeclHeads = arena.BuildArray(b.arena, declHeads)
	s.Children = arena.BuildArray(b.arena, stmts)
	return s
}

func (b *base) NewNamedSeqBlock(fr pt.FileRegion, name string, declHeads []*pt.PtDeclHead, stmts []*pt.PtStmt) *pt.PtStmt {
	s := b.allocStmt()
	s.Region, s.Tag, s.Name = fr, pt.StmtNamedSeq, name
	s.DeclHeads = arena.BuildArray(b.arena, declHeads)
	s.Children = arena.BuildArray(b.arena, stmts)
	return s
}

func (b *base) NewDelayControl(fr pt.FileRegion, delay *pt.PtExpr) *pt.PtControl {
	c := arena.Alloc[pt.PtControl](b.arena, arena.CategoryStmt)
	c.Region, c.Kind, c.Delay = fr, pt.CtrlDelay, delay
	return c
}

func (b *base) NewEventControl(fr pt.FileRegion, events []*pt.PtExpr) *pt.PtControl {
	c := arena.Alloc[pt.PtControl](b.arena, arena.CategoryStmt)
	c.Region, c.Kind = fr, pt.CtrlEvent
	c.Events = b.buildExprs(events)
	return c
}

func (b *base) NewRepeatControl(fr pt.FileRegion, rep *pt.PtExpr, events []*pt.PtExpr) *pt.PtControl {
	c := arena.Alloc[pt.PtControl](b.arena, arena.CategoryStmt)
	c.Region, c.Kind, c.Rep = fr, pt.CtrlRepeatEvent, rep
	c.Events = b.buildExprs(events)
	return c
}
