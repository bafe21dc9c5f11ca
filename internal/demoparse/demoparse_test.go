package demoparse

import (
	"testing"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/arena"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/diag"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/parsestate"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptfactory"
)

const sampleSource = `module counter ( clk, rst, q );
input clk, rst;
output q;
reg q;
wire clk, rst;
assign q = rst;
endmodule`

func TestParseAndLowerSampleModule(t *testing.T) {
	root, err := NewParser().Parse([]byte(sampleSource))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	a := arena.New()
	f := ptfactory.NewCptFactory(a)
	st := parsestate.New(f, a, &diag.RecordingHandler{})

	mod, err := NewLowerer(st).Lower(root)
	if err != nil {
		t.Fatalf("Lower() error = %v", err)
	}

	if mod.Name != "counter" {
		t.Fatalf("Name = %q, want %q", mod.Name, "counter")
	}
	if mod.PortNum() != 3 {
		t.Fatalf("PortNum() = %d, want 3", mod.PortNum())
	}
	if mod.IOHeadNum() != 2 {
		t.Fatalf("IOHeadNum() = %d, want 2", mod.IOHeadNum())
	}
	if mod.DeclHeadNum() != 2 {
		t.Fatalf("DeclHeadNum() = %d, want 2", mod.DeclHeadNum())
	}
	if mod.ItemNum() != 1 {
		t.Fatalf("ItemNum() = %d, want 1", mod.ItemNum())
	}
}
