package selftest

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestEnabled(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"http://localhost:8080/#test", true},
		{"#test", true},
		{"http://localhost:8080/", false},
		{"http://localhost:8080/#work", false},
		{"http://localhost:8080/#testing", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Enabled(tt.location); got != tt.want {
			t.Fatalf("Enabled(%q) = %v, want %v", tt.location, got, tt.want)
		}
	}
}

func TestRunWithSentinel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	results := Run("http://localhost/#test", logger)
	if len(results) != 2 {
		t.Fatalf("expected exactly 2 assertions, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Fatalf("assertion failed: %s", r.Message)
		}
	}

	out := buf.String()
	if strings.Count(out, "  ok: ") != 2 {
		t.Fatalf("expected two assertion lines, got:\n%s", out)
	}
	if !strings.Contains(out, "SelfTest: PortfolioMock: 2/2 passed") {
		t.Fatalf("missing summary:\n%s", out)
	}
}

func TestRunWithoutSentinel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	if results := Run("http://localhost/#about", logger); results != nil {
		t.Fatalf("expected no results, got %v", results)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log output, got %q", buf.String())
	}
}

func TestEvaluateFailureIsNonFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	results := Evaluate([]Assertion{
		{Message: "always fails", Check: func() bool { return false }},
		{Message: "still runs", Check: func() bool { return true }},
	}, logger)

	if len(results) != 2 {
		t.Fatalf("expected evaluation to continue past a failure, got %d results", len(results))
	}
	if results[0].Passed || !results[1].Passed {
		t.Fatalf("unexpected results %+v", results)
	}
	if !strings.Contains(buf.String(), "Assertion failed: always fails") {
		t.Fatalf("failure not logged:\n%s", buf.String())
	}
}
