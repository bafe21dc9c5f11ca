// Package parsestate implements the parser assembly state (spec.md §3.3,
// §4.4, "C4 Parser Assembly State"): the working lists a grammar reduction
// accumulates into before a header/container closes, plus the scope stack
// that nests those lists across generate blocks, named blocks, tasks and
// functions. It is the one stateful layer in this module — every other
// package (pt, ptfactory, validate) is either pure data or pure function.
package parsestate

import "github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"

// HierName is the hierarchical-name accumulator a grammar reduction builds
// up one '.'-separated segment at a time (spec.md §4.5). It is a value
// type: Add never mutates the receiver, it returns the extended name,
// mirroring the original's PuHierName::add(branch, tail).
type HierName struct {
	Branches []pt.PtNameBranch
	Tail     string
}

// NewHierName starts a fresh accumulator whose sole segment so far is tail.
func NewHierName(tail string) HierName {
	return HierName{Tail: tail}
}

// Add folds the current tail into Branches as a (possibly indexed) segment
// and starts a new tail, modeling one more '.' encountered by the grammar.
func (h HierName) Add(hasIndex bool, index int, newTail string) HierName {
	branches := make([]pt.PtNameBranch, len(h.Branches)+1)
	copy(branches, h.Branches)
	branches[len(h.Branches)] = pt.PtNameBranch{Name: h.Tail, HasIndex: hasIndex, Index: index}
	return HierName{Branches: branches, Tail: newTail}
}

// IsSimple reports whether no '.' has been seen yet (a bare identifier).
func (h HierName) IsSimple() bool { return len(h.Branches) == 0 }
