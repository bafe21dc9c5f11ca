package pt

// ExprTag discriminates the PtExpr variant, mirroring spec.md §3.2's four
// families: operator application, constant literal, primary reference, and
// function call (including system-function calls).
type ExprTag uint8

const (
	ExprNone ExprTag = iota
	ExprOpr
	ExprConst
	ExprPrimary
	ExprFuncCall
	ExprSysFuncCall
)

// ConstType discriminates the literal kind of an ExprConst node.
type ConstType uint8

const (
	ConstNone ConstType = iota
	ConstUint32          // plain unsigned decimal, fits a uint32
	ConstString          // string-form integer (too wide for uint32)
	ConstSizedBased      // e.g. 8'hFF, 4'b1010
	ConstReal
	ConstStringLit
)

// RangeMode discriminates a primary's optional range selection.
type RangeMode uint8

const (
	RangeNone RangeMode = iota
	RangeConst          // [msb:lsb]
	RangePlus           // [base +: width]
	RangeMinus          // [base -: width]
)

// PtNameBranch is one segment of a hierarchical name: a plain name, or a
// name with an integer array index (spec.md §3.2, §4.5).
type PtNameBranch struct {
	Name     string
	HasIndex bool
	Index    int
}

// PtExpr is the single discriminated-union expression node. Every accessor
// is total: fields that do not apply to Tag return their documented neutral
// value (spec.md §4.2's "virtual-accessor-returns-default" idiom), so
// traversal code (decompiler, validators, a future elaborator) never
// dispatches on Tag just to stay memory safe.
type PtExpr struct {
	Region FileRegion
	Tag    ExprTag

	// --- ExprOpr ---
	Op       OperatorType
	Operands []*PtExpr // length == Op.Arity(), or variadic for Concat/MultiConcat

	// --- ExprConst ---
	CType    ConstType
	CSize    int    // bit width, 0 if unsized
	CBase    byte   // 'b','o','d','h', 0 if not based
	CSigned  bool
	CUint32  uint32
	CStr     string // raw string form (string-too-wide-for-uint32, or string literal payload)
	CReal    float64

	// --- ExprPrimary ---
	NameBranch  []PtNameBranch // hierarchy prefix (possibly empty)
	Tail        string         // final segment's name
	Index       []*PtExpr      // bit/part-select index list (possibly empty)
	RMode       RangeMode
	RLeft       *PtExpr
	RRight      *PtExpr
	IsConstIdx  bool // appears only inside a constant-expression context

	// --- ExprFuncCall / ExprSysFuncCall ---
	// Callee reuses NameBranch/Tail above (optionally hierarchical, per spec).
	Args []*PtExpr
}

// operand count/accessors -----------------------------------------------

// OperandNum returns the number of fixed/variadic operands for an operator
// node, and 0 for every other tag.
func (e *PtExpr) OperandNum() int {
	if e == nil || e.Tag != ExprOpr {
		return 0
	}
	return len(e.Operands)
}

// Operand returns the i-th operand (0-indexed) or nil if i is out of range
// or e is not an operator node (spec.md §8 invariant).
func (e *PtExpr) Operand(i int) *PtExpr {
	if e == nil || e.Tag != ExprOpr || i < 0 || i >= len(e.Operands) {
		return nil
	}
	return e.Operands[i]
}

// Operand0/1/2 are the fast-path accessors spec.md §3.2 calls out
// explicitly; each is shorthand for Operand(i), with the same nil result
// when the operand does not exist.
func (e *PtExpr) Operand0() *PtExpr { return e.Operand(0) }
func (e *PtExpr) Operand1() *PtExpr { return e.Operand(1) }
func (e *PtExpr) Operand2() *PtExpr { return e.Operand(2) }

// NamebranchNum returns the hierarchy-prefix length of a primary, 0 otherwise.
func (e *PtExpr) NamebranchNum() int {
	if e == nil || e.Tag != ExprPrimary {
		return 0
	}
	return len(e.NameBranch)
}

// Namebranch returns the i-th hierarchy segment, or a zero PtNameBranch if
// out of range.
func (e *PtExpr) Namebranch(i int) PtNameBranch {
	if e == nil || i < 0 || i >= len(e.NameBranch) {
		return PtNameBranch{}
	}
	return e.NameBranch[i]
}

// TailName is the primary's/call's final name segment; empty for every
// other tag.
func (e *PtExpr) TailName() string {
	if e == nil || (e.Tag != ExprPrimary && e.Tag != ExprFuncCall && e.Tag != ExprSysFuncCall) {
		return ""
	}
	return e.Tail
}

// IndexNum returns the bit/part-select index-list length of a primary.
func (e *PtExpr) IndexNum() int {
	if e == nil || e.Tag != ExprPrimary {
		return 0
	}
	return len(e.Index)
}

// IndexAt returns the i-th select index, or nil out of range.
func (e *PtExpr) IndexAt(i int) *PtExpr {
	if e == nil || i < 0 || i >= len(e.Index) {
		return nil
	}
	return e.Index[i]
}

// IsSimple reports whether a primary is a bare identifier with no
// hierarchy, no index and no range — the common case that codegen treats
// specially.
func (e *PtExpr) IsSimple() bool {
	if e == nil || e.Tag != ExprPrimary {
		return false
	}
	return len(e.NameBranch) == 0 && len(e.Index) == 0 && e.RMode == RangeNone
}

// IsIndexExpr reports whether e is usable as a constant array index: a
// plain constant, or a unary-minus of one. The original accepts only unary
// minus and rejects other arithmetic "because it is tedious" (spec.md §9
// Open Question) — this implementation keeps that exact limitation rather
// than silently extending it, and documents it here instead of guessing.
func (e *PtExpr) IsIndexExpr() bool {
	if e == nil {
		return false
	}
	if e.Tag == ExprConst {
		return true
	}
	if e.Tag == ExprOpr && e.Op == OpUnaryMinus && e.OperandNum() == 1 {
		return e.Operand0().Tag == ExprConst
	}
	return false
}

// IndexValue returns the constant value of an IsIndexExpr()-qualifying
// expression. Returns 0 for anything else.
func (e *PtExpr) IndexValue() int64 {
	if e == nil {
		return 0
	}
	if e.Tag == ExprConst {
		return int64(e.CUint32)
	}
	if e.Tag == ExprOpr && e.Op == OpUnaryMinus && e.OperandNum() == 1 {
		return -e.Operand0().IndexValue()
	}
	return 0
}
