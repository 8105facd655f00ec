package reporting

import (
	"github.com/launchdarkly/testset-reporting/logging"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Scope runs body inside a new aggregating test set. It is the
// composition driver for nested test regions:
//
// 1. An AggregatingTestSet is built from the description and options and
// pushed onto the stack, so every result recorded by the body lands in
// it, not in any enclosing set.
//
// 2. When the body returns normally, the set is popped and finished, the
// reporter sees the summary, and the summary is recorded as a composite
// entry into whatever is now current. Inside another scope that is the
// parent aggregating set, which simply stores it; at the outermost level
// it is the fail-fast default set, which turns a failing summary into a
// TestingAbortedError. That is how failures surface exactly once, at the
// outermost boundary, with full subtree detail.
//
// 3. If the body returns an error or panics, the stack is restored before
// that failure propagates, so later scopes in the same context see a
// consistent stack. The set is not finished in that case; the body's own
// failure is the region's outcome.
//
// Loop-parameterized regions are plain loops calling Scope once per
// iteration; each iteration gets an entirely independent test set, and
// any per-iteration description formatting belongs to the caller.
func (c *Context) Scope(description string, options map[string]ldvalue.Value, body func(*Context) error) error {
	id := c.id.child(description)
	if c.filter != nil && !c.filter(id) {
		c.reporter.ScopeSkipped(id, "excluded by filter parameters")
		return nil
	}

	ts, err := NewAggregatingTestSet(description, options)
	if err != nil {
		return err
	}
	return c.runScope(id, ts, body)
}

func (c *Context) runScope(id ScopeID, ts *AggregatingTestSet, body func(*Context) error) error {
	c.reporter.ScopeStarted(id)

	prevID := c.id
	c.id = id
	c.stack.Push(ts)
	c.debug = append(c.debug, &logging.CapturingLogger{})

	finished := false
	defer func() {
		if !finished {
			// abnormal exit: restore the stack before the body's own
			// failure (error or panic) propagates
			c.stack.Pop()
			c.debug = c.debug[:len(c.debug)-1]
			c.id = prevID
		}
	}()

	if err := body(c); err != nil {
		return err
	}

	finished = true
	c.stack.Pop()
	debugOutput := c.debug[len(c.debug)-1].Output()
	c.debug = c.debug[:len(c.debug)-1]
	c.id = prevID

	sum, err := ts.Finish()
	if err != nil {
		return err
	}
	c.reporter.ScopeFinished(id, sum, debugOutput)

	if err := c.stack.Current().RecordChild(sum); err != nil {
		if ts.swallowsFailures() {
			return nil
		}
		return err
	}
	return nil
}
