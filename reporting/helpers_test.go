package reporting

import (
	"github.com/launchdarkly/testset-reporting/logging"
)

type reporterEvent struct {
	kind   string // "started", "skipped", "result", "finished"
	id     ScopeID
	res    Result
	sum    Summary
	reason string
	debug  logging.CapturedOutput
}

// recordingReporter retains every event so tests can assert on ordering
// and content.
type recordingReporter struct {
	events []reporterEvent
}

func (r *recordingReporter) ScopeStarted(id ScopeID) {
	r.events = append(r.events, reporterEvent{kind: "started", id: id})
}

func (r *recordingReporter) ScopeSkipped(id ScopeID, reason string) {
	r.events = append(r.events, reporterEvent{kind: "skipped", id: id, reason: reason})
}

func (r *recordingReporter) ResultRecorded(id ScopeID, res Result) {
	r.events = append(r.events, reporterEvent{kind: "result", id: id, res: res})
}

func (r *recordingReporter) ScopeFinished(id ScopeID, sum Summary, debug logging.CapturedOutput) {
	r.events = append(r.events, reporterEvent{kind: "finished", id: id, sum: sum, debug: debug})
}

func (r *recordingReporter) eventKinds() []string {
	var kinds []string
	for _, e := range r.events {
		kinds = append(kinds, e.kind)
	}
	return kinds
}

func (r *recordingReporter) finishedSummaries() []Summary {
	var sums []Summary
	for _, e := range r.events {
		if e.kind == "finished" {
			sums = append(sums, e.sum)
		}
	}
	return sums
}

func recordAll(c *Context, results ...Result) error {
	for _, res := range results {
		if err := c.Record(res); err != nil {
			return err
		}
	}
	return nil
}
