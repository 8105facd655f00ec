// Package script loads and replays recorded test runs. A script is a YAML
// document describing a tree of scopes whose assertion outcomes were
// already evaluated elsewhere; executing it feeds those outcomes through
// the reporting core exactly as a live run would, which makes it useful
// both for rendering saved runs and for exercising reporters end to end.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/launchdarkly/testset-reporting/reporting"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
	"gopkg.in/yaml.v3"
)

// Script is the top-level document: a list of outermost scopes.
type Script struct {
	Scopes []Scope `yaml:"scopes"`
}

// Scope is one test region. Checks run first, then nested scopes, in
// document order. Repeat greater than zero replays the scope that many
// times, each repetition with its own independent test set; only the
// description varies, by appending the iteration number here in the
// script layer.
type Scope struct {
	Description string                 `yaml:"description"`
	Options     map[string]interface{} `yaml:"options"`
	Repeat      int                    `yaml:"repeat"`
	Checks      []Check                `yaml:"checks"`
	Scopes      []Scope                `yaml:"scopes"`
}

// Check is one recorded assertion outcome. Outcome is "pass" (the default
// when empty), "fail", or "error"; Message is the failure message or the
// error text.
type Check struct {
	Expr    string `yaml:"expr"`
	Outcome string `yaml:"outcome"`
	Message string `yaml:"message"`
}

// Parse reads a script from r. Unknown YAML fields are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// ParseFile reads a script from the named file.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Execute replays the script against c. The returned error is the run's
// outcome: nil when everything passed (or failures were swallowed by
// scope options), a *reporting.TestingAbortedError when an outermost
// scope had failures, or a plain error for a malformed script.
func (s *Script) Execute(c *reporting.Context) error {
	for _, scope := range s.Scopes {
		if err := runScope(c, scope); err != nil {
			return err
		}
	}
	return nil
}

func runScope(c *reporting.Context, scope Scope) error {
	repeat := scope.Repeat
	if repeat <= 0 {
		repeat = 1
	}
	for i := 1; i <= repeat; i++ {
		description := scope.Description
		if scope.Repeat > 0 {
			description = fmt.Sprintf("%s #%d", scope.Description, i)
		}
		err := c.Scope(description, optionValues(scope.Options), func(c *reporting.Context) error {
			for _, check := range scope.Checks {
				res, err := check.result()
				if err != nil {
					return err
				}
				if err := c.Record(res); err != nil {
					return err
				}
			}
			for _, nested := range scope.Scopes {
				if err := runScope(c, nested); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func optionValues(options map[string]interface{}) map[string]ldvalue.Value {
	if len(options) == 0 {
		return nil
	}
	out := make(map[string]ldvalue.Value, len(options))
	for key, value := range options {
		out[key] = ldvalue.CopyArbitraryValue(value)
	}
	return out
}

func (c Check) result() (reporting.Result, error) {
	switch c.Outcome {
	case "", "pass":
		return reporting.Pass(c.Expr), nil
	case "fail":
		return reporting.Fail(c.Expr, c.Message), nil
	case "error":
		message := c.Message
		if message == "" {
			message = "evaluation failed"
		}
		return reporting.Error(c.Expr, errors.New(message)), nil
	default:
		return reporting.Result{}, fmt.Errorf("check %q has unknown outcome %q", c.Expr, c.Outcome)
	}
}
