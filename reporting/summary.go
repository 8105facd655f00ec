package reporting

import (
	"fmt"
	"strings"
)

// Entry is one recorded item in a Summary: either a single assertion
// result, or the completed summary of a nested scope. Exactly one of the
// two fields is non-nil.
type Entry struct {
	Result *Result
	Child  *Summary
}

// Summary is the finished state of a test set: its description and every
// entry recorded under it, in evaluation order. Nested scopes appear as
// composite entries rather than being flattened, so the tree structure of
// the run is preserved for reporting.
type Summary struct {
	Description string
	Entries     []Entry
}

// Counts returns the number of pass, fail, and error results in the
// summary, including everything recorded in nested child summaries.
func (s Summary) Counts() (pass, fail, errs int) {
	for _, e := range s.Entries {
		switch {
		case e.Result != nil:
			switch e.Result.Kind {
			case KindPass:
				pass++
			case KindFail:
				fail++
			case KindError:
				errs++
			}
		case e.Child != nil:
			p, f, er := e.Child.Counts()
			pass, fail, errs = pass+p, fail+f, errs+er
		}
	}
	return
}

// OK reports whether the summary's subtree contains no failures or errors.
func (s Summary) OK() bool {
	_, fail, errs := s.Counts()
	return fail == 0 && errs == 0
}

// Failure attributes one failing result to the scope that recorded it.
type Failure struct {
	ID     ScopeID
	Result Result
}

func (f Failure) String() string {
	if len(f.ID.Path) == 0 {
		return f.Result.String()
	}
	return fmt.Sprintf("[%s] %s", f.ID, f.Result)
}

// Failures returns every fail and error result in the summary and its
// descendants, in evaluation order, each attributed to the path of scope
// descriptions that owns it.
func (s Summary) Failures() []Failure {
	var root ScopeID
	if s.Description != "" {
		root = ScopeID{Path: []string{s.Description}}
	}
	return s.appendFailures(nil, root)
}

func (s Summary) appendFailures(out []Failure, id ScopeID) []Failure {
	for _, e := range s.Entries {
		switch {
		case e.Result != nil && e.Result.Kind != KindPass:
			out = append(out, Failure{ID: id, Result: *e.Result})
		case e.Child != nil:
			out = e.Child.appendFailures(out, id.child(e.Child.Description))
		}
	}
	return out
}

// TestingAbortedError is the single error that terminates a run: the
// fail-fast default set returns it for the first failing result it sees,
// and an outermost scope produces it once, at its boundary, when anything
// in its subtree failed. The summary always contains every recorded
// result, so nothing is lost by aborting.
type TestingAbortedError struct {
	Summary Summary
}

func (e *TestingAbortedError) Error() string {
	_, fail, errs := e.Summary.Counts()
	lines := []string{fmt.Sprintf("testing failed (%d failed, %d errored)", fail, errs)}
	for _, f := range e.Summary.Failures() {
		lines = append(lines, "  "+f.String())
	}
	return strings.Join(lines, "\n")
}
