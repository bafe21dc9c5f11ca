package arena

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// reportProcessStats best-effort samples this process's RSS via gopsutil
// and logs it, when PTCORE_ARENA_STATS is set (SPEC_FULL §B, table entry
// for gopsutil). Process introspection is not always available (container
// sandboxes, restricted namespaces), so failures are swallowed to a single
// debug line rather than surfaced to callers — this is diagnostics, not a
// contract any caller depends on.
func reportProcessStats() {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena: stats unavailable: %v\n", err)
		return
	}
	mem, err := proc.MemoryInfo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena: stats unavailable: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "arena: rss=%d bytes\n", mem.RSS)
}
