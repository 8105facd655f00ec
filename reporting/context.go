package reporting

import (
	"context"

	"github.com/launchdarkly/testset-reporting/logging"
)

// Context owns the test-set state for one execution context: the stack of
// active test sets, the reporter that observes the run, and the debug
// output captured for each active scope. Exactly one goroutine may use a
// given Context; none of its operations lock.
type Context struct {
	stack    Stack
	reporter Reporter
	filter   Filter
	id       ScopeID
	debug    []*logging.CapturingLogger
}

// NewContext creates a Context with an empty stack. A nil reporter is
// replaced with NullReporter.
func NewContext(reporter Reporter) *Context {
	if reporter == nil {
		reporter = NullReporter()
	}
	return &Context{reporter: reporter}
}

// SetFilter installs a filter consulted at the start of every scope.
// Scopes whose ID the filter rejects are skipped entirely, including
// everything nested under them.
func (c *Context) SetFilter(filter Filter) {
	c.filter = filter
}

// CurrentTestSet returns the test set on top of the stack, or the
// process-wide default set if nothing is active.
func (c *Context) CurrentTestSet() TestSet {
	return c.stack.Current()
}

// PushTestSet makes ts the current test set. Scope is the normal way to
// do this; Push/Pop exist for callers implementing their own drivers or
// test set variants.
func (c *Context) PushTestSet(ts TestSet) {
	c.stack.Push(ts)
}

// PopTestSet removes and returns the current test set, or returns the
// default set if nothing is active.
func (c *Context) PopTestSet() TestSet {
	return c.stack.Pop()
}

// ActiveDepth returns the number of explicitly active test sets. It is
// zero when only the implicit default set would receive results.
func (c *Context) ActiveDepth() int {
	return c.stack.Depth()
}

// Record hands one assertion outcome to the current test set and notifies
// the reporter. With no scope active this is the fail-fast path: the
// first fail or error result returns a TestingAbortedError immediately.
func (c *Context) Record(res Result) error {
	c.reporter.ResultRecorded(c.id, res)
	return c.stack.Current().Record(res)
}

// Debug writes a line of debug output to the innermost active scope. The
// output is buffered and handed to the reporter when that scope finishes;
// outside of any scope it is discarded.
func (c *Context) Debug(format string, args ...interface{}) {
	c.DebugLogger().Printf(format, args...)
}

// DebugLogger returns the logger that Debug writes to, so it can be
// handed to helpers that expect a logging.Logger.
func (c *Context) DebugLogger() logging.Logger {
	if len(c.debug) == 0 {
		return logging.NullLogger()
	}
	return c.debug[len(c.debug)-1]
}

type contextKeyType struct{}

var contextKey contextKeyType

// WithContext returns a copy of parent carrying c. This is the explicit
// propagation mechanism for spawned goroutines: a new goroutine never
// inherits a stack implicitly, but a caller that wants assertions in
// spawned work attributed to the current scope can pass a context.Context
// built with WithContext. The receiving goroutine must still be the only
// user of c for the duration.
func WithContext(parent context.Context, c *Context) context.Context {
	return context.WithValue(parent, contextKey, c)
}

// FromContext returns the Context attached with WithContext, or nil.
func FromContext(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey).(*Context)
	return c
}
