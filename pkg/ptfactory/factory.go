// Package ptfactory implements the single polymorphic construction
// interface (spec.md §4.3, "C3 PT Factory") that the parser assembly state
// (package parsestate) calls into on every grammar reduction. Every method
// allocates into an arena.Arena and returns a fully-constructed, immutable
// pt node; per spec.md §4.3 factory methods never fail — a malformed call
// (wrong operand count for an operator kind, etc.) is a precondition the
// grammar shape is trusted to uphold, not a runtime error path.
package ptfactory

import (
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// Factory is implemented by both CptFactory ("compact", minimum-memory
// leaf variants) and SptFactory ("simple", one generic layout per family),
// selectable at construction time via New (spec.md §4.3). Both produce
// semantically-equivalent trees; they differ only in how eagerly they
// materialize empty child arrays (see base.buildExprs and friends).
type Factory interface {
	exprFactory
	stmtFactory
	declFactory
	ioFactory
	itemFactory
	moduleFactory
	udpFactory
	miscFactory
}

// New returns the named factory implementation ("cpt" or "spt"), mirroring
// the original's PtiFactory::make_obj(type, alloc).
func New(kind string, a *arena.Arena) Factory {
	switch kind {
	case "spt":
		return NewSptFactory(a)
	default:
		return NewCptFactory(a)
	}
}

// base holds the shared construction logic both factory styles use. It is
// never exported directly — callers only see Factory, CptFactory or
// SptFactory.
type base struct {
	arena *arena.Arena
	style string // "cpt" or "spt"; selects the empty-array policy of buildExprs/buildNameBranch
}

func newBase(a *arena.Arena, style string) *base {
	if a == nil {
		a = arena.New()
	}
	return &base{arena: a, style: style}
}

// CptFactory is the compact implementation: it treats a zero-length
// expression or name-branch child array as "no array" (returns nil rather
// than materializing an empty backing slice), minimizing per-node memory
// for the overwhelmingly common case of few-or-no children (spec.md §4.3,
// §9). Other child lists (ports, headers, items, statements, UDP entries)
// are built through arena.BuildArray in both styles.
type CptFactory struct{ *base }

// NewCptFactory builds the compact factory implementation.
func NewCptFactory(a *arena.Arena) *CptFactory { return &CptFactory{newBase(a, "cpt")} }

// SptFactory is the simple implementation: one generic layout per family,
// always materializing its child arrays (even empty ones) through
// arena.BuildArray for a uniform, easier-to-extend representation
// (spec.md §4.3, §9).
type SptFactory struct{ *base }

// NewSptFactory builds the simple factory implementation.
func NewSptFactory(a *arena.Arena) *SptFactory { return &SptFactory{newBase(a, "spt")} }

// buildExprs materializes a child expression slice using the style's
// memory policy: Cpt collapses the empty case to nil, Spt always builds
// through the arena.
func (b *base) buildExprs(items []*pt.PtExpr) []*pt.PtExpr {
	if b.style == "cpt" && len(items) == 0 {
		return nil
	}
	return arena.BuildArray(b.arena, items)
}

func (b *base) buildNameBranch(items []pt.PtNameBranch) []pt.PtNameBranch {
	if b.style == "cpt" && len(items) == 0 {
		return nil
	}
	return arena.BuildArray(b.arena, items)
}
