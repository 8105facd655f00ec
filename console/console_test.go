package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/launchdarkly/testset-reporting/logging"
	"github.com/launchdarkly/testset-reporting/reporting"
)

func disableColor(t *testing.T) {
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func resultEntry(res reporting.Result) reporting.Entry {
	r := res
	return reporting.Entry{Result: &r}
}

func childEntry(sum reporting.Summary) reporting.Entry {
	s := sum
	return reporting.Entry{Child: &s}
}

func sampleSummary() reporting.Summary {
	return reporting.Summary{
		Description: "suite",
		Entries: []reporting.Entry{
			resultEntry(reporting.Pass("config loads")),
			childEntry(reporting.Summary{
				Description: "has failure",
				Entries: []reporting.Entry{
					resultEntry(reporting.Pass("1==1")),
					resultEntry(reporting.Fail("1==2", "values differ")),
					resultEntry(reporting.Pass("2==2")),
				},
			}),
			childEntry(reporting.Summary{
				Description: "all good",
				Entries: []reporting.Entry{
					resultEntry(reporting.Pass("a")),
					resultEntry(reporting.Pass("b")),
				},
			}),
			resultEntry(reporting.Error("boom()", errors.New("exploded"))),
		},
	}
}

func TestPrintSummaryRendering(t *testing.T) {
	disableColor(t)

	var buf bytes.Buffer
	PrintSummary(&buf, sampleSummary())

	g := goldie.New(t)
	g.Assert(t, "print_summary", buf.Bytes())
}

func TestReporterScopeStarted(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.ScopeStarted(reporting.ScopeID{Path: []string{"suite", "nested"}})
	assert.Equal(t, "[suite/nested]\n", buf.String())
}

func TestReporterScopeSkipped(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.ScopeSkipped(reporting.ScopeID{Path: []string{"slow"}}, "")
	r.ScopeSkipped(reporting.ScopeID{Path: []string{"slower"}}, "excluded by filter parameters")
	assert.Equal(t,
		"  SKIPPED: slow\n  SKIPPED: slower (excluded by filter parameters)\n",
		buf.String())
}

func TestReporterShowsOnlyFailingResults(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	r := NewReporter(&buf)

	id := reporting.ScopeID{Path: []string{"scope"}}
	r.ResultRecorded(id, reporting.Pass("quiet"))
	r.ResultRecorded(id, reporting.Fail("1==2", "values differ"))
	assert.Equal(t, "  fail: 1==2 (values differ)\n", buf.String())
}

func TestReporterScopeFinishedMarksFailures(t *testing.T) {
	disableColor(t)
	var buf bytes.Buffer
	r := NewReporter(&buf)

	id := reporting.ScopeID{Path: []string{"good"}}
	r.ScopeFinished(id, reporting.Summary{Entries: []reporting.Entry{resultEntry(reporting.Pass("a"))}}, nil)
	assert.Empty(t, buf.String())

	id = reporting.ScopeID{Path: []string{"bad"}}
	r.ScopeFinished(id, reporting.Summary{Entries: []reporting.Entry{resultEntry(reporting.Fail("a", ""))}}, nil)
	assert.Equal(t, "  FAILED: bad\n", buf.String())
}

func TestReporterDebugOutputModes(t *testing.T) {
	disableColor(t)

	var debugLogger logging.CapturingLogger
	debugLogger.Printf("some detail")
	debug := debugLogger.Output()

	failing := reporting.Summary{Entries: []reporting.Entry{resultEntry(reporting.Fail("a", ""))}}
	passing := reporting.Summary{Entries: []reporting.Entry{resultEntry(reporting.Pass("a"))}}
	id := reporting.ScopeID{Path: []string{"scope"}}

	var buf bytes.Buffer
	r := NewReporter(&buf)
	r.ScopeFinished(id, failing, debug)
	assert.NotContains(t, buf.String(), "some detail")

	buf.Reset()
	r.DebugOutputOnFailure = true
	r.ScopeFinished(id, failing, debug)
	assert.Contains(t, buf.String(), "some detail")

	buf.Reset()
	r.ScopeFinished(id, passing, debug)
	assert.NotContains(t, buf.String(), "some detail")

	buf.Reset()
	r.DebugOutputOnSuccess = true
	r.ScopeFinished(id, passing, debug)
	assert.Contains(t, buf.String(), "some detail")
}
