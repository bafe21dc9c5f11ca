package pt

// Direction is an IO header's port direction.
type Direction uint8

const (
	DirNone Direction = iota
	DirInput
	DirOutput
	DirInout
)

// AuxType discriminates what (if anything) an IO header's ports are also
// declared as: a plain port, a 'reg', a net, or a typed variable
// (spec.md §3.2: "auxiliary type (none/reg/net/var)").
type AuxType uint8

const (
	AuxNone AuxType = iota
	AuxReg
	AuxNet
	AuxVar
)

// PtIOItem is one name within a PtIOHead's item list: a name plus optional
// initializer (spec.md §3.2).
type PtIOItem struct {
	Region FileRegion
	Name   string
	Init   *PtExpr
}

// PtIOHead is an IO declaration's header (direction + common attributes)
// paired with its item list. Headers are appended to either the module-
// scope or the task/function-scope IO list depending on context
// (spec.md §4.4's "current-header indirection").
type PtIOHead struct {
	Region FileRegion
	Dir    Direction
	Aux    AuxType

	NetType NetType // Aux == AuxNet
	VarType VarType // Aux == AuxVar
	Signed  bool
	Range   *PtRange

	Items []*PtIOItem
}

func (h *PtIOHead) ItemNum() int {
	if h == nil {
		return 0
	}
	return len(h.Items)
}

func (h *PtIOHead) Item(i int) *PtIOItem {
	if h == nil || i < 0 || i >= len(h.Items) {
		return nil
	}
	return h.Items[i]
}

// SetItems backfills the header's item list exactly once, mirroring
// PtDeclHead.SetItems (spec.md §3.4 invariant: "every IO header's item_list
// is set exactly once").
func (h *PtIOHead) SetItems(items []*PtIOItem) {
	if h.Items != nil {
		panic("pt: PtIOHead.SetItems called more than once")
	}
	h.Items = items
}
