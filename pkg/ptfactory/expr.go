package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// exprFactory groups the expression-family entry points (spec.md §4.2).
type exprFactory interface {
	NewOpr1(fr pt.FileRegion, op pt.OperatorType, operand *pt.PtExpr) *pt.PtExpr
	NewOpr2(fr pt.FileRegion, op pt.OperatorType, op0, op1 *pt.PtExpr) *pt.PtExpr
	NewOpr3(fr pt.FileRegion, op pt.OperatorType, op0, op1, op2 *pt.PtExpr) *pt.PtExpr
	NewConcat(fr pt.FileRegion, exprs []*pt.PtExpr) *pt.PtExpr
	NewMultiConcat(fr pt.FileRegion, rep *pt.PtExpr, exprs []*pt.PtExpr) *pt.PtExpr
	NewMinTypMax(fr pt.FileRegion, min, typ, max *pt.PtExpr) *pt.PtExpr

	NewConstUint32(fr pt.FileRegion, v uint32) *pt.PtExpr
	NewConstString(fr pt.FileRegion, s string) *pt.PtExpr
	NewConstSizedBased(fr pt.FileRegion, size int, signed bool, base byte, digits string) *pt.PtExpr
	NewConstReal(fr pt.FileRegion, v float64) *pt.PtExpr
	NewConstStringLit(fr pt.FileRegion, s string) *pt.PtExpr

	NewPrimary(fr pt.FileRegion, branches []pt.PtNameBranch, tail string) *pt.PtExpr
	NewIndexedPrimary(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, index []*pt.PtExpr) *pt.PtExpr
	NewRangedPrimary(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, mode pt.RangeMode, left, right *pt.PtExpr) *pt.PtExpr
	NewIndexedRangedPrimary(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, index []*pt.PtExpr, mode pt.RangeMode, left, right *pt.PtExpr) *pt.PtExpr
	MarkConstIndex(e *pt.PtExpr) *pt.PtExpr

	NewFuncCall(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, args []*pt.PtExpr) *pt.PtExpr
	NewSysFuncCall(fr pt.FileRegion, name string, args []*pt.PtExpr) *pt.PtExpr
}

func (b *base) alloc() *pt.PtExpr {
	e := arena.Alloc[pt.PtExpr](b.arena, arena.CategoryExpr)
	return e
}

func (b *base) NewOpr1(fr pt.FileRegion, op pt.OperatorType, operand *pt.PtExpr) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.Op = fr, pt.ExprOpr, op
	e.Operands = b.buildExprs([]*pt.PtExpr{operand})
	return e
}

func (b *base) NewOpr2(fr pt.FileRegion, op pt.OperatorType, op0, op1 *pt.PtExpr) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.Op = fr, pt.ExprOpr, op
	e.Operands = b.buildExprs([]*pt.PtExpr{op0, op1})
	return e
}

func (b *base) NewOpr3(fr pt.FileRegion, op pt.OperatorType, op0, op1, op2 *pt.PtExpr) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.Op = fr, pt.ExprOpr, op
	e.Operands = b.buildExprs([]*pt.PtExpr{op0, op1, op2})
	return e
}

func (b *base) NewConcat(fr pt.FileRegion, exprs []*pt.PtExpr) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.Op = fr, pt.ExprOpr, pt.OpConcat
	e.Operands = b.buildExprs(exprs)
	return e
}

func (b *base) NewMultiConcat(fr pt.FileRegion, rep *pt.PtExpr, exprs []*pt.PtExpr) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.Op = fr, pt.ExprOpr, pt.OpMultiConcat
	operands := make([]*pt.PtExpr, 0, len(exprs)+1)
	operands = append(operands, rep)
	operands = append(operands, exprs...)
	e.Operands = b.buildExprs(operands)
	return e
}

func (b *base) NewMinTypMax(fr pt.FileRegion, min, typ, max *pt.PtExpr) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.Op = fr, pt.ExprOpr, pt.OpMinTypMax
	e.Operands = b.buildExprs([]*pt.PtExpr{min, typ, max})
	return e
}

func (b *base) NewConstUint32(fr pt.FileRegion, v uint32) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.CType, e.CUint32 = fr, pt.ExprConst, pt.ConstUint32, v
	return e
}

func (b *base) NewConstString(fr pt.FileRegion, s string) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.CType, e.CStr = fr, pt.ExprConst, pt.ConstString, s
	return e
}

func (b *base) NewConstSizedBased(fr pt.FileRegion, size int, signed bool, base byte, digits string) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.CType = fr, pt.ExprConst, pt.ConstSizedBased
	e.CSize, e.CSigned, e.CBase, e.CStr = size, signed, base, digits
	return e
}

func (b *base) NewConstReal(fr pt.FileRegion, v float64) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.CType, e.CReal = fr, pt.ExprConst, pt.ConstReal, v
	return e
}

func (b *base) NewConstStringLit(fr pt.FileRegion, s string) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.CType, e.CStr = fr, pt.ExprConst, pt.ConstStringLit, s
	return e
}

func (b *base) NewPrimary(fr pt.FileRegion, branches []pt.PtNameBranch, tail string) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag = fr, pt.ExprPrimary
	e.NameBranch, e.Tail = b.buildNameBranch(branches), tail
	return e
}

func (b *base) NewIndexedPrimary(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, index []*pt.PtExpr) *pt.PtExpr {
	e := b.NewPrimary(fr, branches, tail)
	e.Index = b.buildExprs(index)
	return e
}

func (b *base) NewRangedPrimary(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, mode pt.RangeMode, left, right *pt.PtExpr) *pt.PtExpr {
	e := b.NewPrimary(fr, branches, tail)
	e.RMode, e.RLeft, e.RRight = mode, left, right
	return e
}

func (b *base) NewIndexedRangedPrimary(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, index []*pt.PtExpr, mode pt.RangeMode, left, right *pt.PtExpr) *pt.PtExpr {
	e := b.NewIndexedPrimary(fr, branches, tail, index)
	e.RMode, e.RLeft, e.RRight = mode, left, right
	return e
}

// MarkConstIndex returns a copy of e flagged as appearing in a
// constant-expression context (spec.md §3.2 "is_const_index"), collapsing
// the original's distinct const-index primary variants into one flag on the
// shared primary shape (spec.md §9 "virtual-accessor" redesign note).
func (b *base) MarkConstIndex(e *pt.PtExpr) *pt.PtExpr {
	if e == nil {
		return nil
	}
	cp := *e
	cp.IsConstIdx = true
	return &cp
}

func (b *base) NewFuncCall(fr pt.FileRegion, branches []pt.PtNameBranch, tail string, args []*pt.PtExpr) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag = fr, pt.ExprFuncCall
	e.NameBranch, e.Tail = b.buildNameBranch(branches), tail
	e.Args = b.buildExprs(args)
	return e
}

func (b *base) NewSysFuncCall(fr pt.FileRegion, name string, args []*pt.PtExpr) *pt.PtExpr {
	e := b.alloc()
	e.Region, e.Tag, e.Tail = fr, pt.ExprSysFuncCall, name
	e.Args = b.buildExprs(args)
	return e
}
