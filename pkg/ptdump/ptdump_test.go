package ptdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptfactory"
)

func TestPortsRendersNames(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	port := f.NewPort(pt.FileRegion{}, "clk", nil)
	mod := f.NewModule(pt.FileRegion{}, "counter", false, false, false, pt.CompilerDirectives{}, true,
		"", "", "", nil, []*pt.PtPort{port}, nil, nil, nil)

	var buf bytes.Buffer
	Ports(&buf, mod)
	if !strings.Contains(buf.String(), "clk") {
		t.Fatalf("rendered table should mention port name %q, got:\n%s", "clk", buf.String())
	}
}

func TestUdpTableRendersEntries(t *testing.T) {
	f := ptfactory.NewCptFactory(arena.New())
	outItem := f.NewIOItem(pt.FileRegion{}, "q", nil)
	inItem := f.NewIOItem(pt.FileRegion{}, "a", nil)
	row := f.NewUdpEntryComb(pt.FileRegion{},
		[]pt.PtUdpValue{f.NewUdpValue1(pt.FileRegion{}, '0')},
		f.NewUdpValue1(pt.FileRegion{}, '1'))
	u := f.NewCombUdp(pt.FileRegion{}, "buf1", nil, []*pt.PtIOItem{outItem, inItem}, nil,
		[]*pt.PtUdpEntry{row})

	var buf bytes.Buffer
	UdpTable(&buf, u)
	out := buf.String()
	if !strings.Contains(out, "in0") || !strings.Contains(out, "out") {
		t.Fatalf("rendered table should have in0/out headers, got:\n%s", out)
	}
}
