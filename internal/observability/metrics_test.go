package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/api/quizzes", "200", time.Millisecond)
	m.ObserveAggregateOperation("Quiz.QuizAggregate.CreateQuiz", "success", time.Millisecond)
	m.IncAggregateConflict("x")
	m.IncAuthEvent("login", "success")
	m.IncSearch(0)
	if err := m.WritePrometheus(&bytes.Buffer{}); err != nil {
		t.Fatalf("nil write: %v", err)
	}
}

func TestWritePrometheusIsStable(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("GET", "/api/quizzes", "200", 20*time.Millisecond)
	m.ObserveAPI("POST", "/api/quizzes", "500", 2*time.Second)
	m.ObserveAPI("DELETE", "/api/quizzes/:id", "404", time.Millisecond)
	m.IncAuthEvent("login", "failure")
	m.IncAuthEvent("login", "success")

	var first, second bytes.Buffer
	if err := m.WritePrometheus(&first); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := m.WritePrometheus(&second); err != nil {
		t.Fatalf("write: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("exposition output should be deterministic")
	}

	out := first.String()
	for _, want := range []string{
		`quizhub_api_requests_total{method="POST",route="/api/quizzes",status="500"} 1`,
		`quizhub_api_requests_error_total 1`,
		`quizhub_auth_events_total{event="login",outcome="failure"} 1`,
		`quizhub_api_request_duration_seconds_bucket{method="GET",route="/api/quizzes",status="200",le="+Inf"} 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, `method="DELETE"`) > strings.Index(out, `method="GET"`) {
		t.Fatalf("label sets should be sorted")
	}
}

func TestHistogramBuckets(t *testing.T) {
	h := NewHistogramVec("h", "test", []string{"op"}, []float64{0.1, 1})
	h.Observe(0.05, "a")
	h.Observe(0.5, "a")
	h.Observe(5, "a")

	var buf bytes.Buffer
	if err := h.WritePrometheus(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`h_bucket{op="a",le="0.1"} 1`,
		`h_bucket{op="a",le="1"} 2`,
		`h_bucket{op="a",le="+Inf"} 3`,
		`h_count{op="a"} 3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestLabelEscaping(t *testing.T) {
	got := labelString([]string{"route"}, []string{`a"b\c`})
	if got != `{route="a\"b\\c"}` {
		t.Fatalf("unexpected label string %s", got)
	}
	if got := labelString([]string{"a", "b"}, []string{"x"}); got != `{a="x",b="unknown"}` {
		t.Fatalf("missing values should read unknown, got %s", got)
	}
}
