package pt

// VpiUnconnDrive mirrors the original's `unconnected_drive compiler
// directive (spec.md §3.2, SPEC_FULL §C.5).
type VpiUnconnDrive uint8

const (
	UnconnNone VpiUnconnDrive = iota
	UnconnPull0
	UnconnPull1
)

// VpiDefDelayMode mirrors the original's `delay_mode directive.
type VpiDefDelayMode uint8

const (
	DelayModeNone VpiDefDelayMode = iota
	DelayModeDistributed
	DelayModePath
	DelayModeUnit
	DelayModeZero
)

// CompilerDirectives threads the file-scope compiler-directive state
// (`timescale, `default_nettype, `unconnected_drive, `delay_mode,
// `default_decay_time; `celldefine is carried separately as
// PtModule.IsCellDefine) that a Verilog source
// file accumulates outside of any single module, but that gets stamped
// onto each PtModule at the moment it's closed (SPEC_FULL §C.5): the
// original threads these as individual new_Module parameters; this
// rewrite groups them into one value the parser assembly state carries
// and passes wholesale, rather than six positional arguments.
type CompilerDirectives struct {
	TimeUnit      int
	TimePrecision int
	DefNetType    NetType
	UnconnDrive   VpiUnconnDrive
	DelayMode     VpiDefDelayMode
	DefaultDecay  int // -1 means "infinite"
}

// PortRef is one reference inside a PtPort: either the port's sole internal
// expression, or (for a concatenated port, '.p({a, b})') one element of the
// concatenation, each with its own effective direction.
type PortRef struct {
	Expr *PtExpr
	Dir  Direction
}

// PtPort is one entry in a module's port list: an optional external name
// plus either a single internal reference or a concatenated reference list
// (spec.md §3.2).
type PtPort struct {
	Region   FileRegion
	ExtName  string
	Ref      *PtExpr   // the simple case
	ConnRefs []PortRef // non-nil only for a concatenated port
}

// IsConcat reports whether the port is the concatenated ('.p({a,b})') form.
func (p *PtPort) IsConcat() bool { return p != nil && len(p.ConnRefs) > 0 }

// PtModule is a top-level module (or macromodule) container (spec.md §3.2).
type PtModule struct {
	Region FileRegion
	Name   string

	IsMacro      bool
	IsProtected  bool
	IsCellDefine bool

	Directives CompilerDirectives

	ExplicitPortName bool // every port was given with an explicit '.name(...)'

	Config  string
	Library string
	Cell    string

	ParamPortHeads []*PtDeclHead // module-header '#(parameter ...)' list, disjoint from PortList
	Ports          []*PtPort
	IOHeads        []*PtIOHead
	DeclHeads      []*PtDeclHead
	Items          []*PtItem
}

func (m *PtModule) PortNum() int     { return len(m.Ports) }
func (m *PtModule) IOHeadNum() int   { return len(m.IOHeads) }
func (m *PtModule) DeclHeadNum() int { return len(m.DeclHeads) }
func (m *PtModule) ItemNum() int     { return len(m.Items) }

func (m *PtModule) Port(i int) *PtPort {
	if m == nil || i < 0 || i >= len(m.Ports) {
		return nil
	}
	return m.Ports[i]
}

func (m *PtModule) IOHead(i int) *PtIOHead {
	if m == nil || i < 0 || i >= len(m.IOHeads) {
		return nil
	}
	return m.IOHeads[i]
}

func (m *PtModule) Item(i int) *PtItem {
	if m == nil || i < 0 || i >= len(m.Items) {
		return nil
	}
	return m.Items[i]
}
