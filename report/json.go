// Package report writes finished run summaries as JSON, for consumption
// by tooling rather than humans. It also provides a Collector, a reporter
// implementation that retains outermost summaries so a report can be
// produced after the run.
package report

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/launchdarkly/testset-reporting/reporting"
)

type jsonRunReport struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Passed      int         `json:"passed"`
	Failed      int         `json:"failed"`
	Errored     int         `json:"errored"`
	Scopes      []jsonScope `json:"scopes"`
}

type jsonScope struct {
	Description string      `json:"description"`
	Passed      int         `json:"passed"`
	Failed      int         `json:"failed"`
	Errored     int         `json:"errored"`
	Entries     []jsonEntry `json:"entries"`
}

// jsonEntry mirrors reporting.Entry: exactly one of the fields is set.
type jsonEntry struct {
	Result *jsonResult `json:"result,omitempty"`
	Scope  *jsonScope  `json:"scope,omitempty"`
}

type jsonResult struct {
	Outcome string `json:"outcome"`
	Expr    string `json:"expr"`
	Message string `json:"message,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

func makeJSONScope(sum reporting.Summary) jsonScope {
	pass, fail, errs := sum.Counts()
	out := jsonScope{
		Description: sum.Description,
		Passed:      pass,
		Failed:      fail,
		Errored:     errs,
	}
	for _, e := range sum.Entries {
		switch {
		case e.Result != nil:
			r := jsonResult{
				Outcome: e.Result.Kind.String(),
				Expr:    e.Result.ExprText,
				Message: e.Result.Message,
			}
			if e.Result.Cause != nil {
				r.Cause = e.Result.Cause.Error()
			}
			out.Entries = append(out.Entries, jsonEntry{Result: &r})
		case e.Child != nil:
			child := makeJSONScope(*e.Child)
			out.Entries = append(out.Entries, jsonEntry{Scope: &child})
		}
	}
	return out
}

// Write marshals the given outermost summaries, with overall totals and a
// generation timestamp, to w. When pretty is true the output is indented.
func Write(w io.Writer, summaries []reporting.Summary, pretty bool) error {
	out := jsonRunReport{GeneratedAt: time.Now()}
	for _, sum := range summaries {
		pass, fail, errs := sum.Counts()
		out.Passed += pass
		out.Failed += fail
		out.Errored += errs
		out.Scopes = append(out.Scopes, makeJSONScope(sum))
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteFile writes the report to the named file.
func WriteFile(path string, summaries []reporting.Summary, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, summaries, pretty); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
