package reporting

// TestSet is the contract between the core and any reporting strategy.
// Two variants ship with the core: the fail-fast default set
// (DefaultTestSet) and AggregatingTestSet. Other variants may be pushed
// onto a context's stack as long as they honor this contract.
type TestSet interface {
	// Record consumes the outcome of one evaluated assertion. A fail or
	// error result must never be silently dropped: a variant either
	// stores it or returns an error that aborts the run. Pass results may
	// be discarded by variants that do not aggregate.
	Record(res Result) error

	// RecordChild consumes the completed summary of a nested scope as a
	// single composite entry. The scope driver calls this on whatever
	// test set is current after the nested scope has been popped.
	RecordChild(sum Summary) error

	// Finish is called exactly once, after the test set has been removed
	// from its stack. The scope driver guarantees that no further Record
	// calls can reach the set afterwards. Finish summarizes the
	// accumulated state; it does not itself decide whether the run
	// aborts.
	Finish() (Summary, error)
}
