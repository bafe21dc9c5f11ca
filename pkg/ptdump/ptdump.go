// Package ptdump renders pt nodes as human-readable tables, using
// go-pretty/table the way sarchlab-zeonica's core/util.go renders its
// simulator state — a debug/demo aid, never something the factory or
// parser assembly state depends on.
package ptdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// Ports renders a module's port list: index, external name (or, for an
// unnamed port, its reference's tail name) and whether it is a
// concatenated port.
func Ports(w io.Writer, mod *pt.PtModule) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Ports: %s", mod.Name))
	t.AppendHeader(table.Row{"#", "Name", "Concat"})
	for i := 0; i < mod.PortNum(); i++ {
		p := mod.Port(i)
		name := p.ExtName
		if name == "" && p.Ref != nil {
			name = p.Ref.TailName()
		}
		t.AppendRow(table.Row{i, name, p.IsConcat()})
	}
	t.Render()
}

// IOHeads renders a module's IO-header list: direction, item names and
// range (if any).
func IOHeads(w io.Writer, mod *pt.PtModule) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("IO headers: %s", mod.Name))
	t.AppendHeader(table.Row{"#", "Direction", "Names", "Ranged"})
	for i := 0; i < mod.IOHeadNum(); i++ {
		h := mod.IOHead(i)
		names := make([]string, h.ItemNum())
		for j := range names {
			names[j] = h.Item(j).Name
		}
		t.AppendRow(table.Row{i, directionString(h.Dir), strings.Join(names, ", "), h.Range != nil})
	}
	t.Render()
}

func directionString(d pt.Direction) string {
	switch d {
	case pt.DirInput:
		return "input"
	case pt.DirOutput:
		return "output"
	case pt.DirInout:
		return "inout"
	default:
		return "?"
	}
}

// UdpTable renders a user-defined-primitive's truth table, one row per
// entry, one column per input plus (for sequential UDPs) current state and
// output.
func UdpTable(w io.Writer, u *pt.PtUdp) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("UDP table: %s", u.Name))

	header := table.Row{}
	for i := 0; i < u.IONum()-1; i++ {
		header = append(header, fmt.Sprintf("in%d", i))
	}
	if u.PrimType == pt.UdpSequential {
		header = append(header, "state")
	}
	header = append(header, "out")
	t.AppendHeader(header)

	for _, e := range u.Entries {
		row := table.Row{}
		for _, v := range e.Inputs {
			row = append(row, udpValueString(v))
		}
		if e.Current != nil {
			row = append(row, udpValueString(*e.Current))
		}
		row = append(row, udpValueString(e.Output))
		t.AppendRow(row)
	}
	t.Render()
}

func udpValueString(v pt.PtUdpValue) string {
	if v.IsEdge() {
		return fmt.Sprintf("(%c%c)", v.Symbol1, v.Symbol2)
	}
	return string(v.Symbol1)
}
