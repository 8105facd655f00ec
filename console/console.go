// Package console renders test-reporting events and finished summaries to
// a terminal. It is one of the pluggable reporters for the reporting core;
// the core itself never prints anything.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/launchdarkly/testset-reporting/logging"
	"github.com/launchdarkly/testset-reporting/reporting"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	skipColor = color.New(color.FgYellow)
)

// Reporter writes live progress output as scopes run. Pass and fail lines
// are always shown; captured debug output is shown according to the
// DebugOutput* flags, mirroring the usual "only show debug for failures"
// behavior.
type Reporter struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

// NewReporter creates a Reporter. A nil output means os.Stdout.
func NewReporter(output io.Writer) *Reporter {
	if output == nil {
		output = os.Stdout
	}
	return &Reporter{Output: output}
}

func (r *Reporter) ScopeStarted(id reporting.ScopeID) {
	fmt.Fprintf(r.Output, "[%s]\n", id)
}

func (r *Reporter) ScopeSkipped(id reporting.ScopeID, reason string) {
	if reason == "" {
		skipColor.Fprintf(r.Output, "  SKIPPED: %s\n", id)
	} else {
		skipColor.Fprintf(r.Output, "  SKIPPED: %s (%s)\n", id, reason)
	}
}

func (r *Reporter) ResultRecorded(id reporting.ScopeID, res reporting.Result) {
	if res.Kind == reporting.KindPass {
		return
	}
	failColor.Fprintf(r.Output, "  %s\n", res)
}

func (r *Reporter) ScopeFinished(id reporting.ScopeID, summary reporting.Summary, debugOutput logging.CapturedOutput) {
	_, fail, errs := summary.Counts()
	failed := fail+errs > 0
	if failed {
		failColor.Fprintf(r.Output, "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && r.DebugOutputOnFailure) || (!failed && r.DebugOutputOnSuccess)) {
		debugOutput.Dump(r.Output, "    DEBUG ")
	}
}

// PrintSummary renders a finished summary tree with per-scope counts,
// indented by nesting level, followed by each failing assertion under the
// scope that recorded it.
func PrintSummary(w io.Writer, summary reporting.Summary) {
	printSummary(w, summary, 0)
}

func printSummary(w io.Writer, summary reporting.Summary, indent int) {
	pass, fail, errs := summary.Counts()
	prefix := strings.Repeat("  ", indent)
	line := fmt.Sprintf("%s%s: %d passed, %d failed, %d errored", prefix, displayName(summary.Description), pass, fail, errs)
	if fail+errs > 0 {
		failColor.Fprintln(w, line)
	} else {
		passColor.Fprintln(w, line)
	}
	for _, e := range summary.Entries {
		switch {
		case e.Result != nil && e.Result.Kind != reporting.KindPass:
			failColor.Fprintf(w, "%s  %s\n", prefix, e.Result)
		case e.Child != nil:
			printSummary(w, *e.Child, indent+1)
		}
	}
}

func displayName(description string) string {
	if description == "" {
		return "(unnamed)"
	}
	return description
}
