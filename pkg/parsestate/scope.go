package parsestate

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// ScopeKind discriminates why a scope frame was pushed (spec.md §3.3: "a
// LIFO scope stack of (declhead_list, item_list) frames for nested
// generate/named-block/task/function scopes").
type ScopeKind uint8

const (
	ScopeGenerateBlock ScopeKind = iota
	ScopeNamedBlock
	ScopeTask
	ScopeFunction
)

// scopeFrame is one entry of the scope stack. Only the lists relevant to
// Kind are ever populated: a generate-block frame accumulates Items, a
// named-block/task/function frame accumulates Stmts (and, for task/
// function, its own IOHeads separate from the module's).
type scopeFrame struct {
	kind ScopeKind

	declHeads *arena.FragList[*pt.PtDeclHead]
	ioHeads   *arena.FragList[*pt.PtIOHead] // ScopeTask / ScopeFunction only
	stmts     *arena.FragList[*pt.PtStmt]   // ScopeNamedBlock / ScopeTask / ScopeFunction
	items     *arena.FragList[*pt.PtItem]   // ScopeGenerateBlock only
}

func newScopeFrame(kind ScopeKind) *scopeFrame {
	return &scopeFrame{
		kind:      kind,
		declHeads: arena.NewFragList[*pt.PtDeclHead](),
		ioHeads:   arena.NewFragList[*pt.PtIOHead](),
		stmts:     arena.NewFragList[*pt.PtStmt](),
		items:     arena.NewFragList[*pt.PtItem](),
	}
}

// PushScope opens a new nested scope for a generate block, a named
// begin/end or fork/join block, or a task/function body (spec.md §4.4).
// Declaration headers filed while any frame is on top route to it instead
// of the module-level list; IO headers route to it only when it is a task
// or function frame ("current-header indirection", spec.md §4.4).
func (p *ParserState) PushScope(kind ScopeKind) {
	p.scopes.Push(newScopeFrame(kind))
}

// PopScope closes the innermost scope and returns its accumulated
// declaration headers, IO headers, statements and items — whichever the
// caller's grammar production needs for the construct it is closing
// (a named block reads DeclHeads+Stmts, a task/function reads
// DeclHeads+IOHeads+Stmts, a generate block reads Items).
func (p *ParserState) PopScope() (declHeads []*pt.PtDeclHead, ioHeads []*pt.PtIOHead, stmts []*pt.PtStmt, items []*pt.PtItem) {
	f, err := p.scopes.Pop()
	if err != nil {
		return nil, nil, nil, nil
	}
	return arena.BuildArray(p.arena, f.declHeads.Items()),
		arena.BuildArray(p.arena, f.ioHeads.Items()),
		arena.BuildArray(p.arena, f.stmts.Items()),
		arena.BuildArray(p.arena, f.items.Items())
}

// InScope reports whether any scope frame is currently open.
func (p *ParserState) InScope() bool { return p.scopes.Count() > 0 }

// topScope returns the innermost open frame, or nil at module scope.
func (p *ParserState) topScope() *scopeFrame {
	f, err := p.scopes.Top()
	if err != nil {
		return nil
	}
	return f
}
