package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/launchdarkly/testset-reporting/reporting"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	scriptFile  string
	filters     reporting.RegexFilters
	debug       bool
	debugAll    bool
	jsonOutput  string
	prettyJSON  bool
	showMetrics bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.scriptFile, "file", "", "path of the scripted run to replay")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select scopes to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select scopes not to run")
	fs.BoolVar(&c.debug, "debug", false, "show captured debug output for failed scopes")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show captured debug output for all scopes")
	fs.StringVar(&c.jsonOutput, "json-output", "", "write a JSON report to this file")
	fs.BoolVar(&c.prettyJSON, "pretty", false, "indent the JSON report")
	fs.BoolVar(&c.showMetrics, "show-metrics", false, "print collected metrics after the run")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.scriptFile == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		fs.Usage()
		return false
	}
	return true
}

func printFilterDescription(filters reporting.RegexFilters) {
	fmt.Println("Some scopes will be skipped based on the filter criteria for this run:")
	if filters.MustMatch.IsDefined() {
		fmt.Printf("  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Printf("  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Println()
}

// rerunCommand builds a copy-pasteable command line that replays only the
// outermost scopes that contained failures.
func rerunCommand(params commandParams, failures []reporting.Failure) string {
	var b commandBuilder
	b.add(os.Args[0], "-file", params.scriptFile)
	seen := make(map[string]bool)
	for _, f := range failures {
		if len(f.ID.Path) == 0 {
			continue
		}
		top := f.ID.Path[0]
		if seen[top] {
			continue
		}
		seen[top] = true
		// match the scope itself and everything nested under it
		b.add("-run", "^"+regexp.QuoteMeta(top)+"(/|$)")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
