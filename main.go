package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/launchdarkly/testset-reporting/console"
	"github.com/launchdarkly/testset-reporting/metrics"
	"github.com/launchdarkly/testset-reporting/report"
	"github.com/launchdarkly/testset-reporting/reporting"
	"github.com/launchdarkly/testset-reporting/script"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	s, err := script.ParseFile(params.scriptFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot load script: %s\n", err)
		return 1
	}

	consoleReporter := console.NewReporter(os.Stdout)
	consoleReporter.DebugOutputOnFailure = params.debug || params.debugAll
	consoleReporter.DebugOutputOnSuccess = params.debugAll
	metricsReporter := metrics.NewReporter()
	collector := &report.Collector{}

	c := reporting.NewContext(reporting.CombineReporters(consoleReporter, metricsReporter, collector))
	if params.filters.MustMatch.IsDefined() || params.filters.MustNotMatch.IsDefined() {
		printFilterDescription(params.filters)
		c.SetFilter(params.filters.AsFilter)
	}

	fmt.Printf("Replaying scripted run from %s\n", params.scriptFile)
	runErr := s.Execute(c)

	fmt.Println()
	exitCode := 0
	var aborted *reporting.TestingAbortedError
	switch {
	case runErr == nil:
		fmt.Println("All scopes passed")
		for _, sum := range collector.Summaries() {
			console.PrintSummary(os.Stdout, sum)
		}
	case errors.As(runErr, &aborted):
		console.PrintSummary(os.Stdout, aborted.Summary)
		fmt.Println()
		fmt.Println(aborted.Error())
		fmt.Println()
		fmt.Printf("To replay only the failing scopes:\n  %s\n", rerunCommand(params, aborted.Summary.Failures()))
		exitCode = 1
	default:
		fmt.Fprintf(os.Stderr, "Run error: %s\n", runErr)
		return 1
	}

	if params.jsonOutput != "" {
		if err := report.WriteFile(params.jsonOutput, collector.Summaries(), params.prettyJSON); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot write JSON report: %s\n", err)
			return 1
		}
		fmt.Printf("JSON report written to %s\n", params.jsonOutput)
	}

	if params.showMetrics {
		fmt.Println()
		fmt.Printf("results recorded: pass=%.0f fail=%.0f error=%.0f\n",
			metricsReporter.ResultCount("pass"),
			metricsReporter.ResultCount("fail"),
			metricsReporter.ResultCount("error"))
		fmt.Printf("scopes finished: passed=%.0f failed=%.0f skipped=%.0f\n",
			metricsReporter.ScopeCount(metrics.OutcomePassed),
			metricsReporter.ScopeCount(metrics.OutcomeFailed),
			metricsReporter.ScopeCount(metrics.OutcomeSkipped))
	}

	return exitCode
}
