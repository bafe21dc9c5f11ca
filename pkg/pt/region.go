// Package pt defines the closed node taxonomy produced by the parse-tree
// factory (package ptfactory): expressions, statements, declarations, IO
// headers, top-level items, module/UDP containers and their auxiliary
// structures. Every node is a plain, immutable-after-construction Go value
// or pointer into an arena.Arena; accessors are total (an inapplicable
// accessor returns its documented neutral value) so traversal code never
// needs a type switch to stay safe.
package pt

// FileLoc is a single lexer-reported source position, as handed back by the
// externally-supplied lexer (spec §6): a line/column pair plus the file it
// came from. The core never interprets these values beyond composing them.
type FileLoc struct {
	File   string
	Line   int
	Column int
}

// FileRegion is the (start, end) span every PT node carries. Regions
// compose: a compound node's region spans from its first child's start to
// its last child's end (spec §3.1).
type FileRegion struct {
	Start FileLoc
	End   FileLoc
}

// Merge returns the region running from r's start to other's end, so r is
// expected to be the earlier of the two; if either side is the zero region
// the other is returned unchanged. Used to build a compound node's region
// from its first and last children's regions.
func (r FileRegion) Merge(other FileRegion) FileRegion {
	if r == (FileRegion{}) {
		return other
	}
	if other == (FileRegion{}) {
		return r
	}
	return FileRegion{Start: r.Start, End: other.End}
}

// IsZero reports whether r was never assigned a real span.
func (r FileRegion) IsZero() bool { return r == FileRegion{} }
