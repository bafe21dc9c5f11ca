package parsestate

import (
	"testing"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/diag"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptfactory"
)

func newTestState() (*ParserState, ptfactory.Factory) {
	a := arena.New()
	f := ptfactory.NewCptFactory(a)
	return New(f, a, &diag.RecordingHandler{}), f
}

func TestIOHeadFlushProtocol(t *testing.T) {
	st, f := newTestState()

	head := f.NewIOHead(pt.FileRegion{}, pt.DirInput, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	st.BeginIOHead(head)
	st.AddCurIOItem(f.NewIOItem(pt.FileRegion{}, "a", nil))
	st.AddCurIOItem(f.NewIOItem(pt.FileRegion{}, "b", nil))
	st.FlushIOHead()

	_, _, ioHeads, _, _ := st.ModuleLists()
	if len(ioHeads) != 1 {
		t.Fatalf("len(ioHeads) = %d, want 1", len(ioHeads))
	}
	if ioHeads[0].ItemNum() != 2 {
		t.Fatalf("ItemNum() = %d, want 2", ioHeads[0].ItemNum())
	}
}

func TestIOHeadRoutesToTaskScope(t *testing.T) {
	st, f := newTestState()

	st.PushScope(ScopeTask)
	head := f.NewIOHead(pt.FileRegion{}, pt.DirInput, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	st.BeginIOHead(head)
	st.FlushIOHead()

	_, ioHeads, _, _ := st.PopScope()
	if len(ioHeads) != 1 {
		t.Fatalf("task-scope ioHeads len = %d, want 1", len(ioHeads))
	}

	_, _, moduleIOHeads, _, _ := st.ModuleLists()
	if len(moduleIOHeads) != 0 {
		t.Fatalf("module-level ioHeads should stay empty while inside a task scope, got %d", len(moduleIOHeads))
	}
}

func TestNestedGenerateScopeCollectsItems(t *testing.T) {
	st, f := newTestState()

	st.PushScope(ScopeGenerateBlock)
	inner := f.NewInitial(pt.FileRegion{}, f.NewNull(pt.FileRegion{}))
	st.AddItem(inner)
	declHeads, ioHeads, stmts, items := st.PopScope()

	if len(items) != 1 || items[0] != inner {
		t.Fatalf("generate scope should collect the pushed item, got %v", items)
	}
	if len(declHeads) != 0 || len(ioHeads) != 0 || len(stmts) != 0 {
		t.Fatalf("generate scope should not pick up decl/io/stmt lists")
	}
}

func TestResetClearsWorkingLists(t *testing.T) {
	st, f := newTestState()
	st.AddPort(f.NewPort(pt.FileRegion{}, "a", nil))
	st.Reset()

	_, ports, _, _, _ := st.ModuleLists()
	if len(ports) != 0 {
		t.Fatalf("Reset() should clear accumulated ports, got %d", len(ports))
	}
}

func TestHierNameAdd(t *testing.T) {
	h := NewHierName("leaf")
	if !h.IsSimple() {
		t.Fatalf("fresh HierName should be simple")
	}
	h = h.Add(false, 0, "inner")
	if h.IsSimple() {
		t.Fatalf("HierName after Add should not be simple")
	}
	if len(h.Branches) != 1 || h.Branches[0].Name != "leaf" {
		t.Fatalf("Add should fold the previous tail into Branches, got %+v", h.Branches)
	}
	if h.Tail != "inner" {
		t.Fatalf("Tail = %q, want %q", h.Tail, "inner")
	}
}
