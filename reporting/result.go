package reporting

import (
	"fmt"
	"strings"
)

// Kind classifies the outcome of one evaluated assertion.
type Kind int

const (
	// KindPass means the assertion held.
	KindPass Kind = iota
	// KindFail means the assertion was evaluated and did not hold.
	KindFail
	// KindError means evaluating the assertion itself failed.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindPass:
		return "pass"
	case KindFail:
		return "fail"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Result is the record of one evaluated assertion. It is immutable once
// constructed; use Pass, Fail, or Error rather than building one directly.
type Result struct {
	// Kind tells whether the assertion passed, failed, or errored.
	Kind Kind
	// ExprText is the source text of the asserted expression, kept for
	// diagnostics only.
	ExprText string
	// Message is an optional human-readable explanation for a failure.
	Message string
	// Cause is the underlying error for KindError results.
	Cause error
}

// Pass returns the result of an assertion that held.
func Pass(exprText string) Result {
	return Result{Kind: KindPass, ExprText: exprText}
}

// Fail returns the result of an assertion that was evaluated and did not
// hold. The message may be empty.
func Fail(exprText, message string) Result {
	return Result{Kind: KindFail, ExprText: exprText, Message: message}
}

// Error returns the result of an assertion whose evaluation itself failed.
func Error(exprText string, cause error) Result {
	return Result{Kind: KindError, ExprText: exprText, Cause: cause}
}

func (r Result) String() string {
	switch r.Kind {
	case KindFail:
		if r.Message == "" {
			return fmt.Sprintf("fail: %s", r.ExprText)
		}
		return fmt.Sprintf("fail: %s (%s)", r.ExprText, r.Message)
	case KindError:
		if r.Cause == nil {
			return fmt.Sprintf("error: %s", r.ExprText)
		}
		return fmt.Sprintf("error: %s (%s)", r.ExprText, r.Cause)
	default:
		return fmt.Sprintf("%s: %s", r.Kind, r.ExprText)
	}
}

// ScopeID identifies a scope by the descriptions of all scopes enclosing
// it, outermost first.
type ScopeID struct {
	Path []string
}

func (id ScopeID) String() string {
	return strings.Join(id.Path, "/")
}

func (id ScopeID) child(name string) ScopeID {
	path := make([]string, 0, len(id.Path)+1)
	path = append(path, id.Path...)
	return ScopeID{Path: append(path, name)}
}
