package reporting

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Option keys recognized by NewAggregatingTestSet. The options parameter
// is an open map so that callers built on dynamic configuration can pass
// values through unchanged, but only these keys have meaning here;
// anything else is rejected at construction time.
const (
	// OptionSwallowFailures (boolean): when true, a failing summary from
	// this scope is reported but does not abort the run. Result counts
	// are never affected, only the propagation decision.
	OptionSwallowFailures = "swallowFailures"
	// OptionVerbose (boolean): a hint for reporters to show more detail
	// for this scope. The core itself ignores it.
	OptionVerbose = "verbose"
)

type aggregatingConfig struct {
	swallowFailures bool
	verbose         bool
}

func parseOptions(options map[string]ldvalue.Value) (aggregatingConfig, error) {
	var cfg aggregatingConfig
	for key, value := range options {
		switch key {
		case OptionSwallowFailures, OptionVerbose:
			if value.Type() != ldvalue.BoolType {
				return cfg, fmt.Errorf("test set option %q must be a boolean, was %s", key, value.Type())
			}
		default:
			return cfg, fmt.Errorf("unrecognized test set option %q", key)
		}
	}
	cfg.swallowFailures = options[OptionSwallowFailures].BoolValue()
	cfg.verbose = options[OptionVerbose].BoolValue()
	return cfg, nil
}

// AggregatingTestSet stores every outcome recorded beneath one scope and
// defers all failure handling to the end of the scope. Recording never
// fails; nested scope summaries are kept as composite entries so the tree
// structure of the run survives into the final report.
type AggregatingTestSet struct {
	description string
	config      aggregatingConfig
	entries     []Entry
	finished    bool
}

// NewAggregatingTestSet creates an aggregating test set with a
// human-readable description (which may be empty) and an open options
// map. Unrecognized option keys, or recognized keys with values of the
// wrong type, cause an error.
func NewAggregatingTestSet(description string, options map[string]ldvalue.Value) (*AggregatingTestSet, error) {
	cfg, err := parseOptions(options)
	if err != nil {
		return nil, err
	}
	return &AggregatingTestSet{description: description, config: cfg}, nil
}

func (a *AggregatingTestSet) Description() string { return a.description }

// Verbose reports whether the set was configured with OptionVerbose.
func (a *AggregatingTestSet) Verbose() bool { return a.config.verbose }

// Record appends the result to the set's entry list in evaluation order.
// It never returns an error; failures are deferred until the owning scope
// exits.
func (a *AggregatingTestSet) Record(res Result) error {
	r := res
	a.entries = append(a.entries, Entry{Result: &r})
	return nil
}

// RecordChild appends a finished nested summary as one composite entry.
func (a *AggregatingTestSet) RecordChild(sum Summary) error {
	s := sum
	a.entries = append(a.entries, Entry{Child: &s})
	return nil
}

// Finish returns the accumulated summary. An aggregating set never aborts
// from its own Finish; whether a failing summary terminates the run is
// decided by whatever receives it next (the parent aggregating set defers
// it further, the fail-fast default set at the bottom of the stack turns
// it into a TestingAbortedError).
func (a *AggregatingTestSet) Finish() (Summary, error) {
	if a.finished {
		return Summary{}, fmt.Errorf("test set %q finished twice", a.description)
	}
	a.finished = true
	return Summary{Description: a.description, Entries: a.entries}, nil
}

func (a *AggregatingTestSet) swallowsFailures() bool { return a.config.swallowFailures }
