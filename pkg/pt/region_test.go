package pt_test

import (
	"testing"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

func TestFileRegionMergeSpansFirstStartToLastEnd(t *testing.T) {
	a := pt.FileRegion{Start: pt.FileLoc{Line: 1}, End: pt.FileLoc{Line: 2}}
	b := pt.FileRegion{Start: pt.FileLoc{Line: 3}, End: pt.FileLoc{Line: 4}}

	got := a.Merge(b)
	if got.Start != a.Start || got.End != b.End {
		t.Fatalf("Merge() = %+v, want Start=%+v End=%+v", got, a.Start, b.End)
	}
}

func TestFileRegionMergeWithZeroReturnsOther(t *testing.T) {
	b := pt.FileRegion{Start: pt.FileLoc{Line: 3}, End: pt.FileLoc{Line: 4}}
	if got := (pt.FileRegion{}).Merge(b); got != b {
		t.Fatalf("Merge() = %+v, want %+v", got, b)
	}
}

func TestFileRegionIsZero(t *testing.T) {
	if !(pt.FileRegion{}).IsZero() {
		t.Fatalf("IsZero() = false for zero-value region, want true")
	}
	nonZero := pt.FileRegion{Start: pt.FileLoc{Line: 1}}
	if nonZero.IsZero() {
		t.Fatalf("IsZero() = true for non-zero region, want false")
	}
}
