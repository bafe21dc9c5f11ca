// Package validate implements the semantic checks the parser runs at
// grammar-reduction time, before a construct is filed into its enclosing
// container (spec.md §4.5, "C5 Semantic Validators"). Every checker here
// takes a diag.Handler and reports through it; none of them mutate the pt
// tree itself — a failed check still yields a (possibly semantically
// invalid) node, exactly as the factory methods that built it never fail
// (spec.md §4.3). Each exported checker also returns a bool (true = no
// violation found) so the in-scope half of spec.md §4.5/§7's "did-not-build
// signal" — whether the enclosing construct should be filed at all — is
// available to a caller without re-inspecting the diag.Handler; the
// external grammar driver that would act on that signal is out of scope
// (spec.md §1/§6).
package validate

import (
	"fmt"

	"github.com/matsunaga-lab/ym-verilog-pt/pkg/diag"
	"github.com/matsunaga-lab/ym-verilog-pt/pkg/pt"
)

// report emits an Error diagnostic and returns false, so call sites can
// write `ok = report(...) && ok` to accumulate a single "construct is
// valid" verdict across several checks.
func report(h diag.Handler, region pt.FileRegion, text string) bool {
	if h != nil {
		h.Put(diag.Message{
			Severity: diag.Error,
			Category: diag.CategoryParser,
			Region:   region,
			Text:     text,
		})
	}
	return false
}

// FunctionBody checks the restricted statement subset a Verilog function
// body may contain: no timing controls (bare or attached to a blocking
// assign), no non-blocking assigns, no parallel blocks (fork/join, named
// or not), no task-enable of a non-function, no disable of anything but
// the function itself (spec.md §4.5, "function-body restriction
// checking"). It recurses into nested if/case/sequential-block
// statements, since the restriction applies transitively through the
// whole body. It returns false if any violation was found anywhere in
// the body.
func FunctionBody(h diag.Handler, funcName string, body *pt.PtStmt) bool {
	return checkFunctionBodyStmt(h, funcName, body)
}

func checkFunctionBodyStmt(h diag.Handler, funcName string, s *pt.PtStmt) bool {
	if s == nil {
		return true
	}
	ok := true
	switch s.Tag {
	case pt.StmtDelayControl, pt.StmtEventControl, pt.StmtWait:
		ok = report(h, s.Region, fmt.Sprintf("function %q body may not contain a timing control (%s)", funcName, s.StmtName()))
	case pt.StmtNonBlockingAssign:
		ok = report(h, s.Region, fmt.Sprintf("function %q body may not contain a non-blocking assignment", funcName))
	case pt.StmtBlockingAssign:
		if s.Control != nil {
			ok = report(h, s.Region, fmt.Sprintf("function %q body may not contain a blocking assignment with a timing control", funcName))
		}
	case pt.StmtEnable:
		ok = report(h, s.Region, fmt.Sprintf("function %q body may not enable a task", funcName))
	case pt.StmtDisable:
		if s.Tail != funcName || len(s.NameBranch) != 0 {
			ok = report(h, s.Region, fmt.Sprintf("function %q body may only disable itself", funcName))
		}
	case pt.StmtParBlock, pt.StmtNamedPar:
		ok = report(h, s.Region, fmt.Sprintf("function %q body may not contain a parallel block (fork/join)", funcName))
	case pt.StmtIf:
		ok = checkFunctionBodyStmt(h, funcName, s.Body) && ok
		ok = checkFunctionBodyStmt(h, funcName, s.ElseBody) && ok
	case pt.StmtForever, pt.StmtRepeat, pt.StmtWhile, pt.StmtFor:
		ok = checkFunctionBodyStmt(h, funcName, s.Body) && ok
	default:
		if s.IsCase() {
			for _, item := range s.CaseItems {
				ok = checkFunctionBodyStmt(h, funcName, item.Body) && ok
			}
		}
		if s.Tag == pt.StmtSeqBlock || s.Tag == pt.StmtNamedSeq {
			for _, child := range s.Children {
				ok = checkFunctionBodyStmt(h, funcName, child) && ok
			}
		}
	}
	return ok
}

// CaseDefaultUniqueness checks that a case/casex/casez statement has at
// most one default arm (an arm whose Labels is empty), per spec.md §3.4's
// invariant. It returns false if a second default arm was found.
func CaseDefaultUniqueness(h diag.Handler, caseStmt *pt.PtStmt) bool {
	if caseStmt == nil || !caseStmt.IsCase() {
		return true
	}
	ok := true
	seen := false
	for _, item := range caseStmt.CaseItems {
		if len(item.Labels) != 0 {
			continue
		}
		if seen {
			ok = report(h, item.Region, fmt.Sprintf("%s has more than one default arm", caseStmt.StmtName())) && ok
		}
		seen = true
	}
	return ok
}

// ForLoopVariableIdentity checks that a for-loop's init and increment
// statements assign the same loop variable (spec.md §4.5, "for-loop
// variable identity checker"): 'for (i = 0; i < N; j = j + 1)' is invalid
// even though each half parses fine on its own. It returns false on a
// mismatch.
func ForLoopVariableIdentity(h diag.Handler, forStmt *pt.PtStmt) bool {
	if forStmt == nil || forStmt.Tag != pt.StmtFor {
		return true
	}
	initVar := assignTargetName(forStmt.InitStmt)
	nextVar := assignTargetName(forStmt.NextStmt)
	if initVar == "" || nextVar == "" {
		return true
	}
	if initVar != nextVar {
		return report(h, forStmt.Region, fmt.Sprintf(
			"for-loop init assigns %q but increment assigns %q", initVar, nextVar))
	}
	return true
}

func assignTargetName(s *pt.PtStmt) string {
	if s == nil || s.Lhs == nil {
		return ""
	}
	return s.Lhs.TailName()
}

// GenerateForVariableIdentity checks that a generate-for's loop variable
// (its InitStmt's lhs, already captured as LoopVar at construction time)
// names the same variable its NextStmt increments (spec.md §4.5's
// for-loop-variable-identity checker, spec.md §8 testable property #4 and
// scenario 5: 'generate for(i=0; i<4; j=j+1) ...' is invalid even though
// neither half is individually ill-formed). Unlike ForLoopVariableIdentity
// above, this applies to the generate-for PtItem, not the procedural
// for-statement — the two constructs share the invariant but not a node
// type. It returns false on a mismatch.
func GenerateForVariableIdentity(h diag.Handler, genFor *pt.PtItem) bool {
	if genFor == nil || genFor.Tag != pt.ItemGenerateFor {
		return true
	}
	nextVar := assignTargetName(genFor.NextStmt)
	if genFor.LoopVar == "" || nextVar == "" {
		return true
	}
	if genFor.LoopVar != nextVar {
		return report(h, genFor.Region, fmt.Sprintf(
			"generate-for loop variable %q but increment assigns %q", genFor.LoopVar, nextVar))
	}
	return true
}

// PortListDuplication checks a module's port list for a name declared more
// than once, whether as a plain external name or as the sole internal
// reference of an unnamed port (spec.md §4.5, "port-list duplication
// checker"). It returns false if any duplicate was found.
func PortListDuplication(h diag.Handler, ports []*pt.PtPort) bool {
	ok := true
	seen := make(map[string]bool, len(ports))
	for _, p := range ports {
		name := portName(p)
		if name == "" {
			continue
		}
		if seen[name] {
			ok = report(h, p.Region, fmt.Sprintf("port %q is declared more than once", name)) && ok
			continue
		}
		seen[name] = true
	}
	return ok
}

func portName(p *pt.PtPort) string {
	if p == nil {
		return ""
	}
	if p.ExtName != "" {
		return p.ExtName
	}
	if p.Ref != nil {
		return p.Ref.TailName()
	}
	return ""
}
