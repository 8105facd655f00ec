package reporting

import (
	"log"
	"os"

	"github.com/launchdarkly/testset-reporting/logging"
)

// fallbackLogger is where the default test set emits a failing result
// before aborting, so the failure is visible even if the caller discards
// the returned error's detail.
var fallbackLogger logging.Logger = log.New(os.Stderr, "", log.LstdFlags)

// SetFallbackLogger replaces the logger used by the default test set.
// Passing nil silences it. This is process-wide; call it during setup,
// not while assertions are being recorded.
func SetFallbackLogger(logger logging.Logger) {
	if logger == nil {
		logger = logging.NullLogger()
	}
	fallbackLogger = logger
}

// defaultTestSet is the fail-fast variant that sits at the implicit
// bottom of every stack. It holds no state, so one instance serves the
// whole process and is never pushed or popped.
type defaultTestSet struct{}

var theDefaultTestSet defaultTestSet

// DefaultTestSet returns the process-wide fail-fast test set. Recording a
// fail or error against it aborts the surrounding execution context
// immediately; there is no aggregation and Finish is a no-op.
func DefaultTestSet() TestSet { return theDefaultTestSet }

func (d defaultTestSet) Record(res Result) error {
	if res.Kind == KindPass {
		return nil
	}
	fallbackLogger.Printf("%s", res)
	r := res
	return &TestingAbortedError{Summary: Summary{Entries: []Entry{{Result: &r}}}}
}

func (d defaultTestSet) RecordChild(sum Summary) error {
	if sum.OK() {
		return nil
	}
	return &TestingAbortedError{Summary: sum}
}

func (d defaultTestSet) Finish() (Summary, error) {
	return Summary{}, nil
}
