package arena

// Temp names the short-lived fragment allocator for the parser's working
// lists (spec.md §3.3, §4.1). It holds no state and has no methods: each
// working list is a FragList[T] created directly with NewFragList, and
// FragList carries the bulk reset (Reset) and single-cell free (FreeLast)
// operations. FragList is the idiomatic-Go rendering of the original's
// intrusive PtrList<T> (private_include/parser/PtrList.h, SPEC_FULL §C.6):
// a slice-backed list per element type rather than a hand-rolled
// pointer-chained one, since Go has no need for the original's manual node
// recycling.
type Temp struct{}

// NewTemp creates a Temp allocator.
func NewTemp() *Temp { return &Temp{} }

// FragList is one short-lived working list of T, supporting the
// append/free/reset lifecycle a grammar reduction needs while accumulating
// a production's children before committing them to an arena-owned array.
type FragList[T any] struct {
	items []T
}

// NewFragList creates an empty working list.
func NewFragList[T any]() *FragList[T] { return &FragList[T]{} }

// Push appends one fragment.
func (f *FragList[T]) Push(v T) { f.items = append(f.items, v) }

// Len reports the current fragment count.
func (f *FragList[T]) Len() int { return len(f.items) }

// Items returns the accumulated fragments without copying — callers that
// need an arena-owned, independent copy should pass this to
// arena.BuildArray before storing it on an immutable node.
func (f *FragList[T]) Items() []T { return f.items }

// Reset clears the list for reuse (the "bulk reset between top-level
// declarations" spec.md §4.1 calls for), without releasing the backing
// array, so repeated small lists in a hot parse loop don't churn the
// allocator.
func (f *FragList[T]) Reset() { f.items = f.items[:0] }

// FreeLast drops the most recently pushed fragment (the "individual cell
// free for list nodes" spec.md §4.1 calls for) — used when a grammar
// reduction backtracks a single optional element.
func (f *FragList[T]) FreeLast() {
	if len(f.items) == 0 {
		return
	}
	f.items = f.items[:len(f.items)-1]
}
