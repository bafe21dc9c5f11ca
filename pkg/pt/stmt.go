package pt

// StmtTag discriminates the PtStmt variant (spec.md §3.2). The source this
// spec was distilled from misspells one tag ("White" for "While" —
// spec.md §9 Open Question); this rewrite keeps While as its own tag rather
// than reusing Repeat's, since nothing elsewhere in the spec requires
// sharing the variant and a distinct tag is clearer for every accessor and
// validator that switches on it.
type StmtTag uint8

const (
	StmtNone StmtTag = iota
	StmtDisable
	StmtEnable       // task enable, possibly hierarchical
	StmtSysEnable    // system-task enable
	StmtDelayControl // '#delay stmt' wrapper
	StmtEventControl // '@(...) stmt' wrapper
	StmtWait
	StmtBlockingAssign
	StmtNonBlockingAssign
	StmtEventTrigger
	StmtNull
	StmtIf
	StmtCase
	StmtCaseX
	StmtCaseZ
	StmtForever
	StmtRepeat
	StmtWhile
	StmtFor
	StmtPcAssign // procedural continuous assign
	StmtDeassign
	StmtForce
	StmtRelease
	StmtParBlock  // unnamed fork/join
	StmtSeqBlock  // unnamed begin/end
	StmtNamedPar  // named fork/join
	StmtNamedSeq  // named begin/end
)

// ControlKind discriminates a PtControl (delay / event / repeat-event).
type ControlKind uint8

const (
	CtrlNone ControlKind = iota
	CtrlDelay
	CtrlEvent
	CtrlRepeatEvent
)

// PtControl models '#delay', '@(event_expr)' and 'repeat(n) @(event_expr)'
// control prefixes attached to blocking/nonblocking assigns and to the
// standalone delay/event-control statements.
type PtControl struct {
	Region FileRegion
	Kind   ControlKind
	Delay  *PtExpr   // CtrlDelay
	Events []*PtExpr // CtrlEvent / CtrlRepeatEvent: event expression list (OR'd)
	Rep    *PtExpr   // CtrlRepeatEvent only
}

// PtCaseItem is one arm of a case/casex/casez statement. An empty Labels
// slice marks the default arm (spec.md §3.4, §4.5: at most one per case).
type PtCaseItem struct {
	Region FileRegion
	Labels []*PtExpr
	Body   *PtStmt
}

// PtStmt is the single discriminated-union statement node. Accessors not
// applicable to Tag return nil/0/empty, never requiring callers to type switch.
type PtStmt struct {
	Region FileRegion
	Tag    StmtTag

	Name       string // StmtNamedPar/StmtNamedSeq block name
	NameBranch []PtNameBranch
	Tail       string // enable/sys-enable callee name, hierarchical prefix in NameBranch

	Args    []*PtExpr // enable/sys-enable argument list
	Control *PtControl

	Lhs *PtExpr
	Rhs *PtExpr

	Expr *PtExpr // disable target resolved elsewhere; wait/if/case/repeat/delay condition
	Primary *PtExpr // event-trigger target

	Body     *PtStmt // if/forever/repeat/while/for/delay/event body
	ElseBody *PtStmt

	CaseItems []PtCaseItem

	InitStmt *PtStmt // for-loop init
	NextStmt *PtStmt // for-loop increment

	DeclHeads []*PtDeclHead // named-block local declarations
	Children  []*PtStmt     // (named/unnamed) block body statements
}

// StmtName returns a short, human-readable tag name for diagnostics
// (spec.md §3.2 "stmt_name (human-readable)").
func (s *PtStmt) StmtName() string {
	if s == nil {
		return ""
	}
	switch s.Tag {
	case StmtDisable:
		return "disable statement"
	case StmtEnable:
		return "task enable statement"
	case StmtSysEnable:
		return "system task enable statement"
	case StmtDelayControl:
		return "delay control statement"
	case StmtEventControl:
		return "event control statement"
	case StmtWait:
		return "wait statement"
	case StmtBlockingAssign:
		return "blocking assignment"
	case StmtNonBlockingAssign:
		return "nonblocking assignment"
	case StmtEventTrigger:
		return "event trigger statement"
	case StmtNull:
		return "null statement"
	case StmtIf:
		return "if statement"
	case StmtCase:
		return "case statement"
	case StmtCaseX:
		return "casex statement"
	case StmtCaseZ:
		return "casez statement"
	case StmtForever:
		return "forever statement"
	case StmtRepeat:
		return "repeat statement"
	case StmtWhile:
		return "while statement"
	case StmtFor:
		return "for statement"
	case StmtPcAssign:
		return "procedural continuous assign"
	case StmtDeassign:
		return "deassign statement"
	case StmtForce:
		return "force statement"
	case StmtRelease:
		return "release statement"
	case StmtParBlock, StmtNamedPar:
		return "parallel block"
	case StmtSeqBlock, StmtNamedSeq:
		return "sequential block"
	default:
		return "unknown statement"
	}
}

// IsCase reports whether Tag is one of the three case-statement flavors.
func (s *PtStmt) IsCase() bool {
	return s != nil && (s.Tag == StmtCase || s.Tag == StmtCaseX || s.Tag == StmtCaseZ)
}

// IsBlock reports whether Tag is a sequential or parallel block (named or not).
func (s *PtStmt) IsBlock() bool {
	return s != nil && (s.Tag == StmtSeqBlock || s.Tag == StmtParBlock ||
		s.Tag == StmtNamedSeq || s.Tag == StmtNamedPar)
}

// IsNamedBlock reports whether Tag is a named block (carries Name and DeclHeads).
func (s *PtStmt) IsNamedBlock() bool {
	return s != nil && (s.Tag == StmtNamedSeq || s.Tag == StmtNamedPar)
}
