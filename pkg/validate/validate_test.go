package validate

import (
	"testing"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/diag"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptfactory"
)

func TestCaseDefaultUniquenessFlagsSecondDefault(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	body := f.NewNull(pt.FileRegion{})
	items := []pt.PtCaseItem{
		{Body: body},
		{Body: body},
	}
	stmt := f.NewCase(pt.FileRegion{}, pt.StmtCase, nil, items)

	h := &diag.RecordingHandler{}
	CaseDefaultUniqueness(h, stmt)
	if len(h.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(h.Messages))
	}
}

func TestCaseDefaultUniquenessAllowsSingleDefault(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	body := f.NewNull(pt.FileRegion{})
	label := f.NewConstUint32(pt.FileRegion{}, 1)
	items := []pt.PtCaseItem{
		{Labels: []*pt.PtExpr{label}, Body: body},
		{Body: body},
	}
	stmt := f.NewCase(pt.FileRegion{}, pt.StmtCase, nil, items)

	h := &diag.RecordingHandler{}
	CaseDefaultUniqueness(h, stmt)
	if h.HasError() {
		t.Fatalf("single default arm should not be flagged, got %v", h.Messages)
	}
}

func TestForLoopVariableIdentityFlagsMismatch(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	i := f.NewPrimary(pt.FileRegion{}, nil, "i")
	j := f.NewPrimary(pt.FileRegion{}, nil, "j")
	zero := f.NewConstUint32(pt.FileRegion{}, 0)
	one := f.NewConstUint32(pt.FileRegion{}, 1)

	init := f.NewBlockingAssign(pt.FileRegion{}, i, nil, zero)
	next := f.NewBlockingAssign(pt.FileRegion{}, j, nil, one)
	forStmt := f.NewFor(pt.FileRegion{}, init, nil, next, f.NewNull(pt.FileRegion{}))

	h := &diag.RecordingHandler{}
	ForLoopVariableIdentity(h, forStmt)
	if !h.HasError() {
		t.Fatalf("mismatched loop variable should be flagged")
	}
}

func TestGenerateForVariableIdentityFlagsMismatch(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	i := f.NewPrimary(pt.FileRegion{}, nil, "i")
	j := f.NewPrimary(pt.FileRegion{}, nil, "j")
	zero := f.NewConstUint32(pt.FileRegion{}, 0)
	one := f.NewConstUint32(pt.FileRegion{}, 1)

	init := f.NewBlockingAssign(pt.FileRegion{}, i, nil, zero)
	next := f.NewBlockingAssign(pt.FileRegion{}, j, nil, one)
	genFor := f.NewGenerateFor(pt.FileRegion{}, init, nil, next, "i", nil)

	h := &diag.RecordingHandler{}
	if GenerateForVariableIdentity(h, genFor) {
		t.Fatalf("mismatched generate-for loop variable should be flagged")
	}
	if !h.HasError() {
		t.Fatalf("mismatched generate-for loop variable should be flagged")
	}
}

func TestGenerateForVariableIdentityAcceptsMatch(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	i := f.NewPrimary(pt.FileRegion{}, nil, "i")
	zero := f.NewConstUint32(pt.FileRegion{}, 0)
	one := f.NewConstUint32(pt.FileRegion{}, 1)

	init := f.NewBlockingAssign(pt.FileRegion{}, i, nil, zero)
	next := f.NewBlockingAssign(pt.FileRegion{}, i, nil, one)
	genFor := f.NewGenerateFor(pt.FileRegion{}, init, nil, next, "i", nil)

	h := &diag.RecordingHandler{}
	if !GenerateForVariableIdentity(h, genFor) {
		t.Fatalf("matching generate-for loop variable should not be flagged, got %v", h.Messages)
	}
}

func TestPortListDuplicationFlagsRepeatedName(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	a1 := f.NewPort(pt.FileRegion{}, "clk", nil)
	a2 := f.NewPort(pt.FileRegion{}, "clk", nil)

	h := &diag.RecordingHandler{}
	PortListDuplication(h, []*pt.PtPort{a1, a2})
	if !h.HasError() {
		t.Fatalf("duplicated port name should be flagged")
	}
}

func TestFunctionBodyRejectsTimingControl(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	ctrl := f.NewDelayControl(pt.FileRegion{}, f.NewConstUint32(pt.FileRegion{}, 1))
	body := f.NewDelayControlStmt(pt.FileRegion{}, ctrl, f.NewNull(pt.FileRegion{}))

	h := &diag.RecordingHandler{}
	if FunctionBody(h, "my_func", body) {
		t.Fatalf("a timing control in a function body should be flagged")
	}
	if !h.HasError() {
		t.Fatalf("a timing control in a function body should be flagged")
	}
}

func TestFunctionBodyRejectsParallelBlock(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	body := f.NewParBlock(pt.FileRegion{}, []*pt.PtStmt{f.NewNull(pt.FileRegion{})})

	h := &diag.RecordingHandler{}
	if FunctionBody(h, "my_func", body) {
		t.Fatalf("a fork/join in a function body should be flagged")
	}
	if !h.HasError() {
		t.Fatalf("a fork/join in a function body should be flagged")
	}
}

func TestFunctionBodyRejectsNamedParallelBlock(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	body := f.NewNamedParBlock(pt.FileRegion{}, "blk", nil, []*pt.PtStmt{f.NewNull(pt.FileRegion{})})

	h := &diag.RecordingHandler{}
	if FunctionBody(h, "my_func", body) {
		t.Fatalf("a named fork/join in a function body should be flagged")
	}
}

func TestFunctionBodyRejectsBlockingAssignWithControl(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	ctrl := f.NewDelayControl(pt.FileRegion{}, f.NewConstUint32(pt.FileRegion{}, 5))
	lhs := f.NewPrimary(pt.FileRegion{}, nil, "f")
	rhs := f.NewPrimary(pt.FileRegion{}, nil, "a")
	body := f.NewBlockingAssign(pt.FileRegion{}, lhs, ctrl, rhs)

	h := &diag.RecordingHandler{}
	if FunctionBody(h, "f", body) {
		t.Fatalf("'f = #5 a;' in a function body should be flagged")
	}
	if !h.HasError() {
		t.Fatalf("'f = #5 a;' in a function body should be flagged")
	}
}

func TestFunctionBodyAcceptsPlainBlockingAssign(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	lhs := f.NewPrimary(pt.FileRegion{}, nil, "f")
	rhs := f.NewPrimary(pt.FileRegion{}, nil, "a")
	body := f.NewBlockingAssign(pt.FileRegion{}, lhs, nil, rhs)

	h := &diag.RecordingHandler{}
	if !FunctionBody(h, "f", body) {
		t.Fatalf("a plain blocking assign should not be flagged, got %v", h.Messages)
	}
}

func TestFunctionBodyAcceptsSequentialBlock(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	lhs := f.NewPrimary(pt.FileRegion{}, nil, "f")
	rhs := f.NewPrimary(pt.FileRegion{}, nil, "a")
	assign := f.NewBlockingAssign(pt.FileRegion{}, lhs, nil, rhs)
	body := f.NewSeqBlock(pt.FileRegion{}, []*pt.PtStmt{assign})

	h := &diag.RecordingHandler{}
	if !FunctionBody(h, "f", body) {
		t.Fatalf("a begin/end block with only legal statements should not be flagged, got %v", h.Messages)
	}
}

func TestUdpFormFlagsColumnCountMismatch(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	outItem := f.NewIOItem(pt.FileRegion{}, "q", nil)
	inItem := f.NewIOItem(pt.FileRegion{}, "a", nil)
	u := f.NewCombUdp(pt.FileRegion{}, "my_udp", nil,
		[]*pt.PtIOItem{outItem, inItem}, nil, nil)

	badRow := f.NewUdpEntryComb(pt.FileRegion{},
		[]pt.PtUdpValue{f.NewUdpValue1(pt.FileRegion{}, '0'), f.NewUdpValue1(pt.FileRegion{}, '1')},
		f.NewUdpValue1(pt.FileRegion{}, '1'))
	u.Entries = []*pt.PtUdpEntry{badRow}

	h := &diag.RecordingHandler{}
	UdpForm(h, u)
	if !h.HasError() {
		t.Fatalf("a row with too many input columns should be flagged")
	}
}

func TestUdpFormAcceptsWellFormedCombinationalTable(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	outItem := f.NewIOItem(pt.FileRegion{}, "q", nil)
	inItem := f.NewIOItem(pt.FileRegion{}, "a", nil)
	u := f.NewCombUdp(pt.FileRegion{}, "my_udp", nil,
		[]*pt.PtIOItem{outItem, inItem}, nil, nil)

	row := f.NewUdpEntryComb(pt.FileRegion{},
		[]pt.PtUdpValue{f.NewUdpValue1(pt.FileRegion{}, '0')},
		f.NewUdpValue1(pt.FileRegion{}, '1'))
	u.Entries = []*pt.PtUdpEntry{row}

	h := &diag.RecordingHandler{}
	UdpForm(h, u)
	if h.HasError() {
		t.Fatalf("a well-formed table should not be flagged, got %v", h.Messages)
	}
}

func wellFormedCombUdp(f *ptfactory.CptFactory) *pt.PtUdp {
	outHead := f.NewIOHead(pt.FileRegion{}, pt.DirOutput, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	outItem := f.NewIOItem(pt.FileRegion{}, "q", nil)
	outHead.SetItems([]*pt.PtIOItem{outItem})

	inHead := f.NewIOHead(pt.FileRegion{}, pt.DirInput, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	aItem := f.NewIOItem(pt.FileRegion{}, "a", nil)
	bItem := f.NewIOItem(pt.FileRegion{}, "b", nil)
	inHead.SetItems([]*pt.PtIOItem{aItem, bItem})

	ports := []*pt.PtPort{
		f.NewPort(pt.FileRegion{}, "q", nil),
		f.NewPort(pt.FileRegion{}, "a", nil),
		f.NewPort(pt.FileRegion{}, "b", nil),
	}
	return f.NewCombUdp(pt.FileRegion{}, "my_udp", ports,
		[]*pt.PtIOItem{outItem, aItem, bItem},
		[]*pt.PtIOHead{outHead, inHead}, nil)
}

func TestUdp1995FormAcceptsWellFormedUdp(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	u := wellFormedCombUdp(f)

	h := &diag.RecordingHandler{}
	Udp1995Form(h, u)
	if h.HasError() {
		t.Fatalf("a well-formed UDP should not be flagged, got %v", h.Messages)
	}
}

func TestUdp1995FormFlagsMultipleOutputs(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	outHead := f.NewIOHead(pt.FileRegion{}, pt.DirOutput, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	q := f.NewIOItem(pt.FileRegion{}, "q", nil)
	r := f.NewIOItem(pt.FileRegion{}, "r", nil)
	outHead.SetItems([]*pt.PtIOItem{q, r})

	ports := []*pt.PtPort{f.NewPort(pt.FileRegion{}, "q", nil), f.NewPort(pt.FileRegion{}, "r", nil)}
	u := f.NewCombUdp(pt.FileRegion{}, "my_udp", ports, []*pt.PtIOItem{q, r}, []*pt.PtIOHead{outHead}, nil)

	h := &diag.RecordingHandler{}
	Udp1995Form(h, u)
	if !h.HasError() {
		t.Fatalf("a UDP with two outputs should be flagged")
	}
}

func TestUdp1995FormFlagsOutputNotFirst(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	inHead := f.NewIOHead(pt.FileRegion{}, pt.DirInput, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	a := f.NewIOItem(pt.FileRegion{}, "a", nil)
	inHead.SetItems([]*pt.PtIOItem{a})

	outHead := f.NewIOHead(pt.FileRegion{}, pt.DirOutput, pt.AuxNone, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	q := f.NewIOItem(pt.FileRegion{}, "q", nil)
	outHead.SetItems([]*pt.PtIOItem{q})

	ports := []*pt.PtPort{f.NewPort(pt.FileRegion{}, "a", nil), f.NewPort(pt.FileRegion{}, "q", nil)}
	u := f.NewCombUdp(pt.FileRegion{}, "my_udp", ports, []*pt.PtIOItem{a, q}, []*pt.PtIOHead{inHead, outHead}, nil)

	h := &diag.RecordingHandler{}
	Udp1995Form(h, u)
	if !h.HasError() {
		t.Fatalf("output must be first in the IO list; expected a diagnostic")
	}
}

func TestUdp1995FormFlagsUnmatchedPort(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	u := wellFormedCombUdp(f)
	u.Ports = append(u.Ports, f.NewPort(pt.FileRegion{}, "ghost", nil))

	h := &diag.RecordingHandler{}
	Udp1995Form(h, u)
	if !h.HasError() {
		t.Fatalf("a port with no matching IO declaration should be flagged")
	}
}

func TestUdp1995FormFlagsRegOnCombinationalOutput(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	outHead := f.NewIOHead(pt.FileRegion{}, pt.DirOutput, pt.AuxReg, pt.NetTypeNone, pt.VarTypeNone, false, nil)
	q := f.NewIOItem(pt.FileRegion{}, "q", nil)
	outHead.SetItems([]*pt.PtIOItem{q})

	ports := []*pt.PtPort{f.NewPort(pt.FileRegion{}, "q", nil)}
	u := f.NewCombUdp(pt.FileRegion{}, "my_udp", ports, []*pt.PtIOItem{q}, []*pt.PtIOHead{outHead}, nil)

	h := &diag.RecordingHandler{}
	Udp1995Form(h, u)
	if !h.HasError() {
		t.Fatalf("'reg' on a combinational UDP's output should be flagged")
	}
}
