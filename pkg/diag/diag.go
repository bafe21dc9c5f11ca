// Package diag models the externally-consumed message sink spec.md §6 calls
// MsgMgr: "MsgMgr::put_msg(severity, category, region, text)". The CORE
// never decides how a diagnostic is displayed or collected — it only
// produces Message values and hands them to whatever Handler its caller
// configured, exactly as spec.md describes MsgMgr as a consumed collaborator.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// Severity mirrors the original's MsgType levels.
type Severity uint8

const (
	Info Severity = iota
	Warning
	Error
	Failure // fatal I/O / abort-read_file level (spec.md §7)
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Failure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Category names the diagnostic source, using the exact strings spec.md §6
// enumerates.
type Category string

const (
	CategoryParser    Category = "PARS"
	CategoryVLParser  Category = "VLPARSER"
	CategoryElab      Category = "ELAB"
)

// Message is one (severity, category, region, text) tuple.
type Message struct {
	Severity Severity
	Category Category
	Region   pt.FileRegion
	Text     string
}

// Handler is the consumed message sink. Semantic validators (package
// validate) and the parser assembly state (package parsestate) both take a
// Handler, never a concrete logger, so tests can substitute a recording
// fake (see RecordingHandler) exactly the way the teacher substitutes a
// plain struct rather than a mocking framework in its own tests.
type Handler interface {
	Put(Message)
}

// ConsoleHandler writes messages to an io.Writer with the teacher's own
// plain fmt.Fprintf console style — no structured-logging framework, since
// MsgMgr's whole job is routing a tuple onward, not presenting it richly.
type ConsoleHandler struct {
	Out io.Writer
}

// NewConsoleHandler returns a ConsoleHandler writing to os.Stderr.
func NewConsoleHandler() *ConsoleHandler { return &ConsoleHandler{Out: os.Stderr} }

func (h *ConsoleHandler) Put(m Message) {
	fmt.Fprintf(h.Out, "[%s] %s: %s (%s)\n", m.Severity, m.Category, m.Text, regionString(m.Region))
}

func regionString(r pt.FileRegion) string {
	if r.IsZero() {
		return "?"
	}
	return fmt.Sprintf("%s:%d:%d", r.Start.File, r.Start.Line, r.Start.Column)
}

// RecordingHandler accumulates messages for assertions in tests, in place
// of a generated mock (SPEC_FULL §A.2).
type RecordingHandler struct {
	Messages []Message
}

func (h *RecordingHandler) Put(m Message) { h.Messages = append(h.Messages, m) }

// HasError reports whether any recorded message is Error severity or worse.
func (h *RecordingHandler) HasError() bool {
	for _, m := range h.Messages {
		if m.Severity >= Error {
			return true
		}
	}
	return false
}

// CountCategory returns how many recorded messages carry category cat.
func (h *RecordingHandler) CountCategory(cat Category) int {
	n := 0
	for _, m := range h.Messages {
		if m.Category == cat {
			n++
		}
	}
	return n
}
