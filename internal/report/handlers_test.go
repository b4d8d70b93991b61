package report

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/nao1215/logreport/internal/model"
)

// sampleResults mirrors a single file with three request lines.
func sampleResults() []model.AnalysisResult {
	r := model.NewAnalysisResult("app.log")
	r.TotalRequests = 3
	r.HandlerCounts.Add("/api/v1/test/", model.LevelInfo, 1)
	r.HandlerCounts.Add("/api/v1/test/", model.LevelDebug, 1)
	r.HandlerCounts.Add("/api/v1/error/", model.LevelError, 1)
	return []model.AnalysisResult{r}
}

// TestGenerateHandlersReport tests the text table layout.
func TestGenerateHandlersReport(t *testing.T) {
	t.Parallel()

	t.Run("renders sample report", func(t *testing.T) {
		t.Parallel()

		expected := strings.Join([]string{
			"Total requests: 3",
			"",
			"HANDLER        DEBUG INFO WARNING ERROR CRITICAL ",
			"/api/v1/error/ 0     0    0       1     0        ",
			"/api/v1/test/  1     1    0       0     0        ",
			"               1     1    0       1     0        ",
		}, "\n")

		got := GenerateHandlersReport(sampleResults())
		if got != expected {
			t.Errorf("unexpected report:\ngot:\n%q\nexpected:\n%q", got, expected)
		}
	})

	t.Run("renders empty input", func(t *testing.T) {
		t.Parallel()

		expected := strings.Join([]string{
			"Total requests: 0",
			"",
			"HANDLER DEBUG INFO WARNING ERROR CRITICAL ",
			"        0     0    0       0     0        ",
		}, "\n")

		got := GenerateHandlersReport(nil)
		if got != expected {
			t.Errorf("unexpected report:\ngot:\n%q\nexpected:\n%q", got, expected)
		}
	})

	t.Run("merges results from several files", func(t *testing.T) {
		t.Parallel()

		a := model.NewAnalysisResult("a.log")
		a.TotalRequests = 1
		a.HandlerCounts.Add("/a/", model.LevelInfo, 1)
		b := model.NewAnalysisResult("b.log")
		b.TotalRequests = 1
		b.HandlerCounts.Add("/a/", model.LevelInfo, 1)

		got := GenerateHandlersReport([]model.AnalysisResult{a, b})
		if !strings.HasPrefix(got, "Total requests: 2\n\n") {
			t.Errorf("expected total of 2, got %q", got)
		}
		lines := strings.Split(got, "\n")
		if lines[3] != "/a/     0     2    0       0     0        " {
			t.Errorf("unexpected row %q", lines[3])
		}
	})

	t.Run("total includes requests without handler counts", func(t *testing.T) {
		t.Parallel()

		r := model.NewAnalysisResult("")
		r.TotalRequests = 5
		r.HandlerCounts.Add("/a/", model.LevelWarning, 2)

		got := GenerateHandlersReport([]model.AnalysisResult{r})
		if !strings.HasPrefix(got, "Total requests: 5\n") {
			t.Errorf("expected total of 5, got %q", got)
		}
	})

	t.Run("unknown levels are not rendered as columns", func(t *testing.T) {
		t.Parallel()

		r := model.NewAnalysisResult("")
		r.TotalRequests = 1
		r.HandlerCounts.Add("/a/", "NOTICE", 1)

		got := GenerateHandlersReport([]model.AnalysisResult{r})
		if strings.Contains(got, "NOTICE") {
			t.Errorf("unexpected NOTICE column in %q", got)
		}
		if !strings.Contains(got, "/a/     0     0    0       0     0        ") {
			t.Errorf("expected zero-filled row for /a/, got %q", got)
		}
	})

	t.Run("widens columns for large counts", func(t *testing.T) {
		t.Parallel()

		r := model.NewAnalysisResult("")
		r.TotalRequests = 1234567
		r.HandlerCounts.Add("/a/", model.LevelInfo, 1234567)

		lines := strings.Split(GenerateHandlersReport([]model.AnalysisResult{r}), "\n")
		if lines[2] != "HANDLER DEBUG INFO    WARNING ERROR CRITICAL " {
			t.Errorf("unexpected header %q", lines[2])
		}
		if lines[3] != "/a/     0     1234567 0       0     0        " {
			t.Errorf("unexpected row %q", lines[3])
		}
	})

	t.Run("pads non-ASCII endpoints by rune count", func(t *testing.T) {
		t.Parallel()

		r := model.NewAnalysisResult("")
		r.TotalRequests = 1
		r.HandlerCounts.Add("/café/", model.LevelInfo, 1)

		lines := strings.Split(GenerateHandlersReport([]model.AnalysisResult{r}), "\n")
		if lines[3] != "/café/  0     1    0       0     0        " {
			t.Errorf("unexpected row %q", lines[3])
		}
	})

	t.Run("output is deterministic", func(t *testing.T) {
		t.Parallel()

		results := sampleResults()
		first := GenerateHandlersReport(results)
		for range 20 {
			if got := GenerateHandlersReport(results); got != first {
				t.Fatalf("output changed between calls:\n%q\n%q", first, got)
			}
		}
	})
}

// TestLookup tests the report type registry.
func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("finds handlers report", func(t *testing.T) {
		t.Parallel()

		gen, err := Lookup("handlers")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := gen(sampleResults()); got != GenerateHandlersReport(sampleResults()) {
			t.Errorf("handlers generator returned %q", got)
		}
	})

	t.Run("rejects unknown report", func(t *testing.T) {
		t.Parallel()

		_, err := Lookup("errors")
		if !errors.Is(err, ErrUnknownReportType) {
			t.Fatalf("expected ErrUnknownReportType, got %v", err)
		}
		if !strings.Contains(err.Error(), "handlers") {
			t.Errorf("expected error to list available reports, got %q", err.Error())
		}
	})

	t.Run("lists types in order", func(t *testing.T) {
		t.Parallel()

		types := Types()
		if !slices.Contains(types, HandlersReport) {
			t.Errorf("expected handlers in %v", types)
		}
		if !slices.IsSorted(types) {
			t.Errorf("expected sorted types, got %v", types)
		}
	})
}

// TestRegister tests adding report types.
func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("registered generator is found by Lookup", func(t *testing.T) {
		t.Parallel()

		name := "register-test-total"
		gen := func(results []model.AnalysisResult) string {
			return "total " + strconv.Itoa(model.Merge(results...).TotalRequests)
		}
		if err := Register(name, gen); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := Lookup(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := found(sampleResults()); got != "total 3" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()

		err := Register(HandlersReport, GenerateHandlersReport)
		if !errors.Is(err, ErrDuplicateReportType) {
			t.Errorf("expected ErrDuplicateReportType, got %v", err)
		}
	})

	t.Run("rejects empty name and nil generator", func(t *testing.T) {
		t.Parallel()

		if err := Register("", GenerateHandlersReport); err == nil {
			t.Error("expected error for empty name")
		}
		if err := Register("register-test-nil", nil); err == nil {
			t.Error("expected error for nil generator")
		}
	})
}
