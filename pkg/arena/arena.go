// Package arena implements the pooled allocation and array-building layer
// (spec.md §4.1, "C1 Arena & Array Builder"): a bump-pointer allocator from
// fixed-size chunks whose objects are never individually freed, plus a
// build_array<T> that copies an ordered sequence into a contiguous,
// arena-owned slice. FragList (temp.go) serves the parser's short-lived
// working lists (spec.md §3.3) with bulk reset between top-level
// declarations.
//
// Go's garbage collector makes manual chunked allocation unnecessary for
// correctness, but the CORE still routes every PT node through Arena
// rather than ad hoc `new`/slice-append calls: it is the one place that
// tracks the per-category construction counters spec.md §4.1/§4.3 calls
// for, and it is the seam SPEC_FULL wires the debug/profiling stack
// (xid-tagged chunks, optional RSS sampling) into.
package arena

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"github.com/rs/xid"
)

// defaultChunkBytes is the accounting-chunk size New uses: 64 KiB.
const defaultChunkBytes = 1 << 16

// Category groups allocations for the per-category profiling counters
// spec.md §4.3 ("Side effects: increments per-category counters for
// profiling") asks for.
type Category string

const (
	CategoryExpr   Category = "expr"
	CategoryStmt   Category = "stmt"
	CategoryDecl   Category = "decl"
	CategoryIO     Category = "io"
	CategoryItem   Category = "item"
	CategoryModule Category = "module"
	CategoryUdp    Category = "udp"
	CategoryMisc   Category = "misc"
	CategoryArray  Category = "array"
)

type chunk struct {
	id    xid.ID
	bytes int
}

// Arena is the long-lived, per-Parser allocator (spec.md §5: "the parser
// owns the arena ... for the duration of a single read_file call").
// Objects allocated from it are never freed individually; the whole arena
// is dropped at once when its owning PT manager goes away.
type Arena struct {
	chunkBytes int
	chunks     []chunk
	counters   map[Category]*int64
	debug      bool
	stats      bool
}

// New creates an Arena using the default chunk size.
func New() *Arena { return NewSized(defaultChunkBytes) }

// NewSized creates an Arena whose accounting chunks are chunkBytes each.
// (Go's allocator does the real bump-pointer work; Arena tracks byte
// accounting and per-category counters on top of it so spec.md §4.1's
// contract is observable even though nothing here hand-rolls a free list.)
func NewSized(chunkBytes int) *Arena {
	if chunkBytes <= 0 {
		chunkBytes = defaultChunkBytes
	}
	return &Arena{
		chunkBytes: chunkBytes,
		counters:   make(map[Category]*int64),
		debug:      os.Getenv("PTCORE_DEBUG") != "",
		stats:      os.Getenv("PTCORE_ARENA_STATS") != "",
	}
}

// Alloc records a size-bytes allocation in category cat and returns a
// fresh zero value of T. The ptfactory constructors that return a pointer
// to a new node go through this rather than a bare composite literal, so
// their construction is accounted for; MarkConstIndex's copy and the
// value-typed results (PtAttrSpec, PtUdpValue) are not.
func Alloc[T any](a *Arena, cat Category) *T {
	v := new(T)
	a.account(cat, sizeOfApprox[T]())
	return v
}

// BuildArray copies an ordered sequence of values into a fresh,
// arena-accounted slice (spec.md §4.1's build_array<T>). The parser's
// short-lived working lists (package parsestate) call this exactly once,
// at the grammar-reduction point where a working list is committed to an
// immutable node field.
func BuildArray[T any](a *Arena, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	a.account(CategoryArray, len(out)*sizeOfApprox[T]())
	return out
}

func (a *Arena) account(cat Category, bytes int) {
	if a.counters[cat] == nil {
		var z int64
		a.counters[cat] = &z
	}
	atomic.AddInt64(a.counters[cat], int64(bytes))

	if len(a.chunks) == 0 || a.chunks[len(a.chunks)-1].bytes+bytes > a.chunkBytes {
		c := chunk{id: xid.New(), bytes: bytes}
		a.chunks = append(a.chunks, c)
		if a.debug {
			fmt.Fprintf(os.Stderr, "arena: chunk %s allocated, category=%s, bytes=%d\n", c.id, cat, bytes)
		}
		if a.stats {
			reportProcessStats()
		}
	} else {
		a.chunks[len(a.chunks)-1].bytes += bytes
	}
}

// Counters returns a snapshot of the per-category byte counters, for
// debug dumps and tests.
func (a *Arena) Counters() map[Category]int64 {
	out := make(map[Category]int64, len(a.counters))
	for cat, p := range a.counters {
		out[cat] = atomic.LoadInt64(p)
	}
	return out
}

// ChunkCount returns the number of accounting chunks opened so far.
func (a *Arena) ChunkCount() int { return len(a.chunks) }

// sizeOfApprox is a rough, intentionally approximate per-element byte cost
// used only for the profiling counters above; it is never used to size a
// real allocation (Go's `new`/`make` already did that).
func sizeOfApprox[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
