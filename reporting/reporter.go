package reporting

import "github.com/launchdarkly/testset-reporting/logging"

// Reporter receives progress events from a context as scopes run. It is
// the contract for renderers (console output, JSON reports, metrics); the
// core never formats anything itself. All methods are called
// synchronously from the context's own goroutine.
type Reporter interface {
	// ScopeStarted is called when a scope begins, before its test set is
	// pushed.
	ScopeStarted(id ScopeID)

	// ScopeSkipped is called instead of ScopeStarted when a filter
	// excluded the scope. Nothing else happens for a skipped scope.
	ScopeSkipped(id ScopeID, reason string)

	// ResultRecorded is called for every assertion outcome recorded
	// through the context, including passes.
	ResultRecorded(id ScopeID, res Result)

	// ScopeFinished is called after the scope's test set has been popped
	// and finished, with the summary and any debug output captured while
	// the scope was active.
	ScopeFinished(id ScopeID, summary Summary, debugOutput logging.CapturedOutput)
}

type nullReporter struct{}

func (n nullReporter) ScopeStarted(ScopeID)                                  {}
func (n nullReporter) ScopeSkipped(ScopeID, string)                          {}
func (n nullReporter) ResultRecorded(ScopeID, Result)                        {}
func (n nullReporter) ScopeFinished(ScopeID, Summary, logging.CapturedOutput) {}

// NullReporter returns a Reporter that ignores all events.
func NullReporter() Reporter { return nullReporter{} }

type multiReporter struct {
	reporters []Reporter
}

// CombineReporters returns a Reporter that forwards every event to each
// of the given reporters in order. Nil entries are skipped.
func CombineReporters(reporters ...Reporter) Reporter {
	var rs []Reporter
	for _, r := range reporters {
		if r != nil {
			rs = append(rs, r)
		}
	}
	return multiReporter{reporters: rs}
}

func (m multiReporter) ScopeStarted(id ScopeID) {
	for _, r := range m.reporters {
		r.ScopeStarted(id)
	}
}

func (m multiReporter) ScopeSkipped(id ScopeID, reason string) {
	for _, r := range m.reporters {
		r.ScopeSkipped(id, reason)
	}
}

func (m multiReporter) ResultRecorded(id ScopeID, res Result) {
	for _, r := range m.reporters {
		r.ResultRecorded(id, res)
	}
}

func (m multiReporter) ScopeFinished(id ScopeID, summary Summary, debugOutput logging.CapturedOutput) {
	for _, r := range m.reporters {
		r.ScopeFinished(id, summary, debugOutput)
	}
}
