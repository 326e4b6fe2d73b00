package bsc

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/internal/metrics"
	"github.com/nathanhack/hamming74/linearblock/hamming"
)

func TestRunBSC(t *testing.T) {
	m := metrics.NewDecodes()
	stats := RunBSC(context.Background(), hamming.Default(), m, 0, 50, 2, benchmarking.Stats{}, nil, false)

	if stats.Trials() != 50 {
		t.Fatalf("expected 50 trials but found %v", stats.Trials())
	}
	if stats.Clean.Mean != 1 || stats.Undetected.Mean != 0 {
		t.Fatalf("expected only clean decodes but found %v", stats)
	}

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(recorder.Result().Body)
	if !strings.Contains(string(body), `hamming74_decodes_total{status="NoError"} 50`) {
		t.Fatalf("expected 50 clean decodes counted but found:\n%s", body)
	}
	if !strings.Contains(string(body), "hamming74_channel_bit_flips_total 0") {
		t.Fatalf("expected no flips counted but found:\n%s", body)
	}
}

func TestRunBSC_Continue(t *testing.T) {
	previous := RunBSC(context.Background(), hamming.Default(), nil, 0, 10, 1, benchmarking.Stats{}, nil, false)
	stats := RunBSC(context.Background(), hamming.Default(), nil, 0, 30, 1, previous, nil, false)
	if stats.Trials() != 30 {
		t.Fatalf("expected 30 trials but found %v", stats.Trials())
	}
}

func TestTypeInfo(t *testing.T) {
	expected := "BSC:github.com/nathanhack/hamming74/linearblock/hamming/Code"
	if actual := typeInfo(); actual != expected {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
}
