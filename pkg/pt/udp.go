package pt

// UdpPrimType discriminates a UDP's sequential/combinational flavor
// (spec.md §3.2).
type UdpPrimType uint8

const (
	UdpCombinational UdpPrimType = iota
	UdpSequential
)

// PtUdpValue is one symbol (or edge-transition pair of symbols) inside a
// UDP table row: a 1-character value, or a 2-character current/next pair
// for an edge-sensitive input column (spec.md §3.2).
type PtUdpValue struct {
	Region  FileRegion
	Symbol1 byte
	Symbol2 byte // 0 if this is a plain 1-character value
}

func (v PtUdpValue) IsEdge() bool { return v.Symbol2 != 0 }

// PtUdpEntry is one row of a UDP truth table: one value per input column,
// an optional current-state value (sequential UDPs only), and one output
// value (spec.md §3.2).
type PtUdpEntry struct {
	Region  FileRegion
	Inputs  []PtUdpValue
	Current *PtUdpValue // non-nil only for a sequential UDP's state column
	Output  PtUdpValue
}

// PtUdp is a user-defined primitive container (spec.md §3.2). A UDP has
// exactly one output port, which is always io_list()[0]; sequential UDPs
// carry an init value only if the output is `reg`-typed or an initial
// block assigns it (spec.md §3.4 invariant).
type PtUdp struct {
	Region   FileRegion
	Name     string
	PrimType UdpPrimType

	Ports   []*PtPort
	IOList  []*PtIOItem // flattened IO items in port order; item 0 is always the output
	IOHeads []*PtIOHead // original headers, kept for aux-type/direction lookups

	InitVal *PtExpr // sequential only; nil if none given

	Entries []*PtUdpEntry
}

func (u *PtUdp) PortNum() int   { return len(u.Ports) }
func (u *PtUdp) IONum() int     { return len(u.IOList) }
func (u *PtUdp) EntryNum() int  { return len(u.Entries) }

func (u *PtUdp) OutputItem() *PtIOItem {
	if u == nil || len(u.IOList) == 0 {
		return nil
	}
	return u.IOList[0]
}
