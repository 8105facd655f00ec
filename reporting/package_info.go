// Package reporting is the core of the composable test-reporting protocol.
//
// The general model is:
//
// 1. Every evaluated assertion produces exactly one immutable Result (pass,
// fail, or error). The layer that evaluates assertions is not part of this
// package; it only hands finished Results to the core.
//
// 2. Each execution context (normally one goroutine) owns a Context with a
// stack of active test sets. Results are always recorded against the test
// set on top of the stack. When the stack is empty, the process-wide
// fail-fast default set receives them instead, so a failing assertion with
// no scope active aborts immediately.
//
// 3. Entering a scope (Context.Scope) pushes an aggregating test set; the
// scope's body records into it; leaving the scope pops it and finishes it.
// A nested scope's summary is recorded as a single composite entry in its
// parent, so results form a tree. Failures never abort mid-scope: they
// surface exactly once, at the outermost boundary, as a
// TestingAbortedError carrying the whole summary.
//
// Contexts are never shared between goroutines, so none of the stack
// operations lock. A spawned goroutine does not inherit its parent's stack;
// if assertions in spawned work should attribute to an enclosing scope, the
// *Context must be handed over explicitly (directly, or through a
// context.Context built with WithContext).
package reporting
