package validate

import (
	"fmt"
	"strings"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/diag"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// combSymbols/seqInputSymbols/seqCurrentSymbols/seqOutputSymbols are the legal
// one-character table-entry values per the Verilog-1995 UDP grammar,
// grounded on the original's Parser_udp.cc symbol tables.
const (
	combSymbols       = "01x?"
	seqInputSymbols   = "01x?bB" // 'b' is shorthand for (0|1)
	seqCurrentSymbols = "01x"
	seqOutputSymbols  = "01x-" // '-' = "no change", sequential only
)

// UdpForm runs the two-pass Verilog-1995 user-defined-primitive table
// validation the original performs in Parser_udp.cc: the first pass checks
// every row on its own (input-column count, legal input symbols, at most
// one edge-sensitive column per 1995's restriction against full edge
// tables, a legal current-state column on every row of a sequential UDP,
// and a legal output symbol, where the '-' no-change symbol is only
// accepted in a sequential UDP); the second pass checks the table as a
// whole (a sequential UDP's initial value must be an integer constant, and
// the table must have at least one entry). Each kind of violation has its
// own message. It returns false if any row or table-level violation was
// found.
func UdpForm(h diag.Handler, u *pt.PtUdp) bool {
	if u == nil {
		return true
	}
	inputWidth := u.IONum() - 1 // IOList[0] is always the output (spec.md §3.4)
	if inputWidth < 0 {
		inputWidth = 0
	}

	ok := true
	for _, e := range u.Entries {
		ok = validateRowShape(h, u, e, inputWidth) && ok
	}
	ok = validateTableConsistency(h, u) && ok
	return ok
}

func validateRowShape(h diag.Handler, u *pt.PtUdp, e *pt.PtUdpEntry, inputWidth int) bool {
	ok := true
	if len(e.Inputs) != inputWidth {
		ok = report(h, e.Region, fmt.Sprintf(
			"UDP %q: table row has %d input columns, but the port list declares %d",
			u.Name, len(e.Inputs), inputWidth)) && ok
	}

	edgeColumns := 0
	for _, v := range e.Inputs {
		if v.IsEdge() {
			edgeColumns++
			continue
		}
		legal := combSymbols
		if u.PrimType == pt.UdpSequential {
			legal = seqInputSymbols
		}
		if !strings.ContainsRune(legal, rune(v.Symbol1)) {
			ok = report(h, e.Region, fmt.Sprintf(
				"UDP %q: invalid input symbol %q in table row", u.Name, string(v.Symbol1))) && ok
		}
	}
	if edgeColumns > 1 {
		ok = report(h, e.Region, fmt.Sprintf(
			"UDP %q: table row has %d edge-sensitive columns, Verilog-1995 allows at most one", u.Name, edgeColumns)) && ok
	}

	if u.PrimType == pt.UdpSequential {
		if e.Current == nil {
			ok = report(h, e.Region, fmt.Sprintf(
				"UDP %q: sequential table row is missing its current-state column", u.Name)) && ok
		} else if !strings.ContainsRune(seqCurrentSymbols, rune(e.Current.Symbol1)) {
			ok = report(h, e.Region, fmt.Sprintf(
				"UDP %q: invalid current-state symbol %q", u.Name, string(e.Current.Symbol1))) && ok
		}
	}

	outSymbols := combSymbols
	if u.PrimType == pt.UdpSequential {
		outSymbols = seqOutputSymbols
	}
	if !strings.ContainsRune(outSymbols, rune(e.Output.Symbol1)) {
		if e.Output.Symbol1 == '-' && u.PrimType != pt.UdpSequential {
			ok = report(h, e.Region, fmt.Sprintf(
				"UDP %q: the no-change output symbol '-' is only valid in a sequential UDP", u.Name)) && ok
		} else {
			ok = report(h, e.Region, fmt.Sprintf(
				"UDP %q: invalid output symbol %q", u.Name, string(e.Output.Symbol1))) && ok
		}
	}
	return ok
}

// validateTableConsistency is the second pass: whole-table checks that
// can't be decided from a single row (spec.md §4.5).
func validateTableConsistency(h diag.Handler, u *pt.PtUdp) bool {
	ok := true
	if u.PrimType == pt.UdpSequential && u.InitVal != nil {
		if u.InitVal.Tag != pt.ExprConst || (u.InitVal.CType != pt.ConstUint32 && u.InitVal.CType != pt.ConstSizedBased) {
			ok = report(h, u.Region, fmt.Sprintf(
				"UDP %q: initial value must be a constant", u.Name)) && ok
		}
	}
	if u.EntryNum() == 0 {
		ok = report(h, u.Region, fmt.Sprintf("UDP %q: table has no entries", u.Name)) && ok
	}
	return ok
}

// Udp1995Form runs the structural (non-table) Verilog-1995 UDP checks the
// original performs in new_Udp1995 before ever looking at the table body
// (spec.md §4.5 "UDP Verilog-1995 form"; SPEC_FULL §C.2): a UDP must
// declare exactly one output, that output must be the first entry in the
// port list, every port named in the port list must resolve to a declared
// IO item, and at most one IO item may be declared with the 'reg'
// auxiliary type (the output, if it is sequential). Each violation is its
// own message. It returns false if any structural violation was found.
func Udp1995Form(h diag.Handler, u *pt.PtUdp) bool {
	if u == nil {
		return true
	}
	ok := true

	dirOf, auxOf := udpIODirAux(u)

	outputs := 0
	var regItems []string
	for _, item := range u.IOList {
		switch dirOf[item.Name] {
		case pt.DirOutput:
			outputs++
		case pt.DirInput:
			// fine
		default:
			ok = report(h, item.Region, fmt.Sprintf(
				"UDP %q: port %q is declared in the IO list without input or output direction", u.Name, item.Name)) && ok
		}
		if auxOf[item.Name] == pt.AuxReg {
			regItems = append(regItems, item.Name)
		}
	}
	if outputs != 1 {
		ok = report(h, u.Region, fmt.Sprintf(
			"UDP %q: must declare exactly one output, found %d", u.Name, outputs)) && ok
	}

	if out := u.OutputItem(); out != nil && dirOf[out.Name] != pt.DirOutput {
		ok = report(h, u.Region, fmt.Sprintf(
			"UDP %q: the first port %q must be the output", u.Name, out.Name)) && ok
	}

	ioNames := make(map[string]bool, len(u.IOList))
	for _, item := range u.IOList {
		ioNames[item.Name] = true
	}
	for _, p := range u.Ports {
		name := portName(p)
		if name != "" && !ioNames[name] {
			ok = report(h, p.Region, fmt.Sprintf(
				"UDP %q: port %q has no matching IO declaration", u.Name, name)) && ok
		}
	}

	if len(regItems) > 1 {
		ok = report(h, u.Region, fmt.Sprintf(
			"UDP %q: at most one port may be declared 'reg', found %d (%s)",
			u.Name, len(regItems), strings.Join(regItems, ", "))) && ok
	}
	if len(regItems) == 1 {
		out := u.OutputItem()
		if out == nil || regItems[0] != out.Name {
			ok = report(h, u.Region, fmt.Sprintf(
				"UDP %q: 'reg' declaration names %q but the output is %q", u.Name, regItems[0], outputName(out))) && ok
		}
		if u.PrimType != pt.UdpSequential {
			ok = report(h, u.Region, fmt.Sprintf(
				"UDP %q: only a sequential UDP's output may be declared 'reg'", u.Name)) && ok
		}
	}

	if u.InitVal != nil && u.PrimType != pt.UdpSequential {
		ok = report(h, u.Region, fmt.Sprintf(
			"UDP %q: only a sequential UDP may carry an initial value", u.Name)) && ok
	}
	return ok
}

func outputName(item *pt.PtIOItem) string {
	if item == nil {
		return ""
	}
	return item.Name
}

// udpIODirAux flattens a UDP's IOHeads into per-name direction/aux-type
// lookup tables, since PtUdp.IOList only keeps the bare name/init pairs
// (spec.md §3.2: direction and aux-type live on the header, not the item).
func udpIODirAux(u *pt.PtUdp) (dir map[string]pt.Direction, aux map[string]pt.AuxType) {
	dir = make(map[string]pt.Direction, len(u.IOList))
	aux = make(map[string]pt.AuxType, len(u.IOList))
	for _, head := range u.IOHeads {
		for _, item := range head.Items {
			dir[item.Name] = head.Dir
			aux[item.Name] = head.Aux
		}
	}
	return dir, aux
}
