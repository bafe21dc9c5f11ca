package pt

import (
	"strconv"
	"strings"
)

// Decompile recursively serializes a PtExpr back to a Verilog-like textual
// form (spec.md §4.2), inserting parentheses by comparing the parent
// operator's precedence against each child's: a child whose own precedence
// is equal to or higher than the parent's needs no parens (left-to-right
// evaluation order and equal-precedence chaining are both safe without
// them); a strictly lower-precedence child is parenthesized. Concat,
// multi-concat, conditional and min/typ/max always use their literal
// bracketing syntax rather than being compared against the table.
func Decompile(e *PtExpr) string {
	var b strings.Builder
	decompile(&b, e, 0)
	return b.String()
}

func decompile(b *strings.Builder, e *PtExpr, parentPrec int) {
	if e == nil {
		return
	}
	switch e.Tag {
	case ExprConst:
		decompileConst(b, e)
	case ExprPrimary:
		decompilePrimary(b, e)
	case ExprFuncCall, ExprSysFuncCall:
		decompileCall(b, e)
	case ExprOpr:
		decompileOpr(b, e, parentPrec)
	}
}

func decompileConst(b *strings.Builder, e *PtExpr) {
	switch e.CType {
	case ConstUint32:
		b.WriteString(strconv.FormatUint(uint64(e.CUint32), 10))
	case ConstString:
		b.WriteString(e.CStr)
	case ConstReal:
		b.WriteString(strconv.FormatFloat(e.CReal, 'g', -1, 64))
	case ConstStringLit:
		b.WriteByte('"')
		b.WriteString(e.CStr)
		b.WriteByte('"')
	case ConstSizedBased:
		if e.CSize > 0 {
			b.WriteString(strconv.Itoa(e.CSize))
		}
		b.WriteByte('\'')
		if e.CSigned {
			b.WriteByte('s')
		}
		if e.CBase != 0 {
			b.WriteByte(e.CBase)
		}
		b.WriteString(e.CStr)
	}
}

func decompilePrimary(b *strings.Builder, e *PtExpr) {
	for _, nb := range e.NameBranch {
		b.WriteString(nb.Name)
		if nb.HasIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(nb.Index))
			b.WriteByte(']')
		}
		b.WriteByte('.')
	}
	b.WriteString(e.Tail)

	for _, idx := range e.Index {
		b.WriteByte('[')
		decompile(b, idx, 0)
		b.WriteByte(']')
	}

	switch e.RMode {
	case RangeConst:
		b.WriteByte('[')
		decompile(b, e.RLeft, 0)
		b.WriteByte(':')
		decompile(b, e.RRight, 0)
		b.WriteByte(']')
	case RangePlus:
		b.WriteByte('[')
		decompile(b, e.RLeft, 0)
		b.WriteString("+:")
		decompile(b, e.RRight, 0)
		b.WriteByte(']')
	case RangeMinus:
		b.WriteByte('[')
		decompile(b, e.RLeft, 0)
		b.WriteString("-:")
		decompile(b, e.RRight, 0)
		b.WriteByte(']')
	}
}

func decompileCall(b *strings.Builder, e *PtExpr) {
	if e.Tag == ExprSysFuncCall {
		b.WriteByte('$')
	}
	for _, nb := range e.NameBranch {
		b.WriteString(nb.Name)
		b.WriteByte('.')
	}
	b.WriteString(e.Tail)
	b.WriteByte('(')
	for i, a := range e.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		decompile(b, a, 0)
	}
	b.WriteByte(')')
}

func decompileOpr(b *strings.Builder, e *PtExpr, parentPrec int) {
	switch e.Op {
	case OpConcat:
		b.WriteByte('{')
		for i, op := range e.Operands {
			if i > 0 {
				b.WriteString(", ")
			}
			decompile(b, op, 0)
		}
		b.WriteByte('}')
		return
	case OpMultiConcat:
		b.WriteByte('{')
		if len(e.Operands) > 0 {
			decompile(b, e.Operands[0], 0)
		}
		b.WriteByte('{')
		for i, op := range e.Operands[1:] {
			if i > 0 {
				b.WriteString(", ")
			}
			decompile(b, op, 0)
		}
		b.WriteString("}}")
		return
	case OpMinTypMax:
		b.WriteByte('(')
		decompile(b, e.Operand0(), 0)
		b.WriteByte(':')
		decompile(b, e.Operand1(), 0)
		b.WriteByte(':')
		decompile(b, e.Operand2(), 0)
		b.WriteByte(')')
		return
	case OpCondition:
		decompile(b, e.Operand0(), 0)
		b.WriteString(" ? ")
		decompile(b, e.Operand1(), 0)
		b.WriteString(" : ")
		decompile(b, e.Operand2(), 0)
		return
	}

	prec := precLevel(e.Op)
	needParens := parentPrec != 0 && prec < parentPrec

	if needParens {
		b.WriteByte('(')
	}

	switch e.Op.Arity() {
	case 1:
		b.WriteString(operatorText[e.Op])
		decompile(b, e.Operand0(), prec)
	case 2:
		decompile(b, e.Operand0(), prec)
		b.WriteByte(' ')
		b.WriteString(operatorText[e.Op])
		b.WriteByte(' ')
		decompile(b, e.Operand1(), prec)
	}

	if needParens {
		b.WriteByte(')')
	}
}
