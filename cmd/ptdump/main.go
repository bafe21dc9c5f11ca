package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/teris-io/cli"
	"github.com/tebeka/atexit"

	"github.com/matsunaga-lab/ym-verilog-pt/internal/demoparse"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/diag"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/parsestate"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptdump"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/ptmanager"
)

var Description = strings.ReplaceAll(`
ptdump parses a single source file with the demo grammar, registers the
resulting module in a ptmanager.Manager and renders its port list and IO
headers as text tables on stdout. It exists to
exercise the factory/parsestate/ptdump packages against real input, not as
a production Verilog front end.
`, "\n", " ")

var PtDump = cli.New(Description).
	WithArg(cli.NewArg("input", "The demo-grammar source file to dump")).
	WithOption(cli.NewOption("style", "Factory style to build with: 'compact' or 'simple'").
		WithType(cli.TypeString)).
	WithAction(Handler)

func Handler(args []string, options map[string]string) int {
	if len(args) < 1 {
		fmt.Printf("ERROR: Not enough arguments provided, use --help\n")
		return -1
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("ERROR: Unable to open input file: %s\n", err)
		return -1
	}

	kind := "cpt"
	if style, ok := options["style"]; ok && style == "simple" {
		kind = "spt"
	}

	mgr := ptmanager.New(kind)

	root, err := demoparse.NewParser().Parse(content)
	if err != nil {
		fmt.Printf("ERROR: Unable to complete 'parsing' pass: %s\n", err)
		return -1
	}

	handler := &diag.RecordingHandler{}
	st := parsestate.New(mgr.Factory(), mgr.Arena(), handler)

	mod, err := demoparse.NewLowerer(st).Lower(root)
	if err != nil {
		fmt.Printf("ERROR: Unable to complete 'lowering' pass: %s\n", err)
		return -1
	}
	mgr.RegModule(mod)

	if handler.HasError() {
		fmt.Printf("ERROR: %d diagnostics raised during lowering\n", len(handler.Messages))
		return -1
	}

	ptdump.Ports(os.Stdout, mod)
	ptdump.IOHeads(os.Stdout, mod)

	return 0
}

func main() { atexit.Register(func() { fmt.Fprintln(os.Stderr, "ptdump: done") }); atexit.Exit(PtDump.Run(os.Args, os.Stdout)) }
