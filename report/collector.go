package report

import (
	"github.com/launchdarkly/testset-reporting/logging"
	"github.com/launchdarkly/testset-reporting/reporting"
)

// Collector is a reporting.Reporter that retains the summary of every
// outermost finished scope. Nested summaries already arrive inside their
// parent, so only top-level ones are kept; the collected slice is the
// whole run as a forest of scope trees.
type Collector struct {
	summaries []reporting.Summary
}

func (c *Collector) ScopeStarted(reporting.ScopeID) {}

func (c *Collector) ScopeSkipped(reporting.ScopeID, string) {}

func (c *Collector) ResultRecorded(reporting.ScopeID, reporting.Result) {}

func (c *Collector) ScopeFinished(id reporting.ScopeID, summary reporting.Summary, _ logging.CapturedOutput) {
	if len(id.Path) == 1 {
		c.summaries = append(c.summaries, summary)
	}
}

// Summaries returns the outermost summaries collected so far, in the
// order the scopes finished.
func (c *Collector) Summaries() []reporting.Summary {
	return c.summaries
}
