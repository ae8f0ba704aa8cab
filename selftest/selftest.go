// Package selftest runs the page's runtime assertions when the host location
// carries the debug sentinel fragment.
package selftest

import (
	"log"
	"strings"

	"sup3rbob.dev/folio/content"
)

// Sentinel is the fragment identifier that enables the self-test.
const Sentinel = "test"

const group = "SelfTest: PortfolioMock"

// Assertion is a named runtime check.
type Assertion struct {
	Message string
	Check   func() bool
}

// Result is the outcome of one assertion.
type Result struct {
	Message string
	Passed  bool
}

// Assertions are the checks evaluated in debug mode.
var Assertions = []Assertion{
	{
		Message: "Should render at least 5 projects",
		Check:   func() bool { return len(content.Projects()) >= 5 },
	},
	{
		Message: "Palette accent should be string",
		Check:   func() bool { return content.GetPalette().Accent != "" },
	},
}

// Enabled reports whether location's fragment is the sentinel.
func Enabled(location string) bool {
	_, fragment, ok := strings.Cut(location, "#")
	return ok && fragment == Sentinel
}

// Run evaluates Assertions when location enables debug mode and writes a grouped
// report to logger. Failures are logged, never raised.
func Run(location string, logger *log.Logger) []Result {
	if !Enabled(location) {
		return nil
	}
	return Evaluate(Assertions, logger)
}

// Evaluate checks each assertion in order and logs the outcome.
func Evaluate(assertions []Assertion, logger *log.Logger) []Result {
	if logger == nil {
		logger = log.Default()
	}

	logger.Printf("%s", group)
	results := make([]Result, 0, len(assertions))
	failed := 0
	for _, a := range assertions {
		r := Result{Message: a.Message, Passed: a.Check()}
		if r.Passed {
			logger.Printf("  ok: %s", r.Message)
		} else {
			failed++
			logger.Printf("  Assertion failed: %s", r.Message)
		}
		results = append(results, r)
	}
	logger.Printf("%s: %d/%d passed", group, len(results)-failed, len(results))
	return results
}
