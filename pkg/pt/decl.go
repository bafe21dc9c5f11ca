package pt

// DeclType discriminates a PtDeclHead's flavor (spec.md §3.2).
type DeclType uint8

const (
	DeclNone DeclType = iota
	DeclParameter
	DeclLocalParam
	DeclSpecParam
	DeclEvent
	DeclGenvar
	DeclVar // typed variable ('integer', 'real', 'time', 'realtime', ...)
	DeclReg
	DeclNet
)

// VarType names the Verilog variable-declaration subtype for DeclVar heads.
type VarType uint8

const (
	VarTypeNone VarType = iota
	VarTypeInteger
	VarTypeReal
	VarTypeRealtime
	VarTypeTime
)

// NetType names the Verilog net kind for DeclNet heads.
type NetType uint8

const (
	NetTypeNone NetType = iota
	NetTypeWire
	NetTypeTri
	NetTypeTri0
	NetTypeTri1
	NetTypeWand
	NetTypeWor
	NetTypeTriand
	NetTypeTrior
	NetTypeTrireg
	NetTypeUwire
	NetTypeSupply0
	NetTypeSupply1
)

// PtRange is a bit-select/array-dimension range (msb, lsb). Both sides are
// expressions, not resolved constants (spec.md §3.2).
type PtRange struct {
	Region FileRegion
	Msb    *PtExpr
	Lsb    *PtExpr
}

// PtStrength is a drive/charge strength pair (e.g. 'strong0, weak1').
type PtStrength struct {
	Region                FileRegion
	Strength0, Strength1  VpiStrength
	ChargeStrength        VpiStrength
}

// VpiStrength enumerates the eight Verilog drive-strength levels, plus "not
// specified".
type VpiStrength uint8

const (
	StrengthNone VpiStrength = iota
	StrengthSupply
	StrengthStrong
	StrengthPull
	StrengthWeak
	StrengthHighZ
	StrengthSmall
	StrengthMedium
	StrengthLarge
)

// PtDelay is a 1-, 2- or 3-value delay specification ('#3', '#(1,2)', '#(1,2,3)').
type PtDelay struct {
	Region FileRegion
	Values [3]*PtExpr // trailing entries nil when fewer than 3 values given
	N      int        // 1, 2 or 3
}

// PtDeclItem is one name within a PtDeclHead's item list: a name, optional
// initializer expression, and optional multi-dimensional array range list
// (spec.md §3.2).
type PtDeclItem struct {
	Region   FileRegion
	Name     string
	Init     *PtExpr   // nil if undeclared
	RangeArr []PtRange // multi-dimensional array ranges, empty if scalar
}

// PtDeclHead is a declaration's header (type + common attributes) paired
// with its item list, set exactly once between creation and end-of-
// declaration (spec.md §3.4 invariant).
type PtDeclHead struct {
	Region FileRegion
	Type   DeclType

	Signed   bool
	Range    *PtRange // vector range, nil for scalar
	VarType  VarType  // DeclVar only
	NetType  NetType  // DeclNet only
	Vectored bool     // 'vectored' keyword present (DeclNet)
	Scalared bool     // 'scalared' keyword present (DeclNet)
	Strength *PtStrength
	Delay    *PtDelay

	Items []*PtDeclItem
}

// ItemNum/Item give indexed, total access to a header's item list.
func (h *PtDeclHead) ItemNum() int {
	if h == nil {
		return 0
	}
	return len(h.Items)
}

func (h *PtDeclHead) Item(i int) *PtDeclItem {
	if h == nil || i < 0 || i >= len(h.Items) {
		return nil
	}
	return h.Items[i]
}

// SetItems backfills the header's item list exactly once (spec.md §3.3,
// §4.4 "end-of-header flush"). It panics on a second call — a header whose
// items are set twice is a parser-assembly bug, not a recoverable user error
// (spec.md §4.3's "precond violations are assertion failures").
func (h *PtDeclHead) SetItems(items []*PtDeclItem) {
	if h.Items != nil {
		panic("pt: PtDeclHead.SetItems called more than once")
	}
	h.Items = items
}
