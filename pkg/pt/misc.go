package pt

// ConnType discriminates an instance's port-connection style.
type ConnType uint8

const (
	ConnNone ConnType = iota
	ConnOrdered
	ConnNamed
)

// PtConnection is one actual-argument binding in a module/UDP/gate instance
// or a parameter-value override list: either positional ('.ordered') or
// by-name ('.named(expr)').
type PtConnection struct {
	Region FileRegion
	Type   ConnType
	Name   string // ConnNamed only
	Expr   *PtExpr
}

// PtAttrSpec is one 'key = value' pair inside an attribute instance.
type PtAttrSpec struct {
	Region FileRegion
	Name   string
	Expr   *PtExpr // nil for a bare 'key' with no value
}

// PtAttrInst is a Verilog-2001 '(* ... *)' attribute instance, attachable to
// most syntactic constructs. The parse tree does not store these inline on
// every node (that would bloat every variant for a rarely-used feature);
// instead the PT manager keeps a side table keyed by node identity
// (ptmanager.Manager.RegAttrInst / AttrInstOf), mirroring the original's
// reg_attrinst (spec.md §6, SPEC_FULL §C.3).
type PtAttrInst struct {
	Region FileRegion
	Specs  []PtAttrSpec
}

// PathEdge discriminates a specify-path declaration's edge sensitivity.
type PathEdge uint8

const (
	PathEdgeNone PathEdge = iota
	PathEdgePosedge
	PathEdgeNegedge
)

// PtPathDecl is a specify-block path declaration ('(a => b) = delay;' or
// the conditional/edge-sensitive/full forms).
type PtPathDecl struct {
	Region     FileRegion
	Edge       PathEdge
	Inputs     []*PtExpr // lhs terminal(s)
	OutputExpr *PtExpr   // rhs polarity operator's data expression, if edge-sensitive
	Outputs    []*PtExpr // rhs terminal(s)
	IsFullPath bool      // '*>' full connection vs '=>' parallel connection
	PolarityOp byte      // '+', '-', or 0 if unspecified
	Delay      *PtPathDelay
}

// PtPathDelay holds the 1/2/3/6/12-value delay list a path declaration can
// carry (spec.md §3.2).
type PtPathDelay struct {
	Region FileRegion
	Values []*PtExpr // len is 1, 2, 3, 6, or 12
}
