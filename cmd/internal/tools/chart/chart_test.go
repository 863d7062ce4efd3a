package chart

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathanhack/hamming13/benchmarking"
	"github.com/nathanhack/hamming13/cmd/internal/tools"
)

func TestRender(t *testing.T) {
	results := filepath.Join(t.TempDir(), "bsc.json")

	s := benchmarking.Stats{}
	s.CodewordError.Update(0.25)
	err := tools.SaveResults(results, &tools.SimulationStats{TypeInfo: "BSC:syndrome", Stats: map[float64]benchmarking.Stats{0.01: s, 0.1: s}})
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	out := bytes.Buffer{}
	err = Render(&out, []string{results}, tools.CodewordMetric)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	html := out.String()
	for _, expected := range []string{"Results", "codeword error rates", "bsc.json"} {
		if !strings.Contains(html, expected) {
			t.Fatalf("expected %v in the chart", expected)
		}
	}
}

func TestRenderMissingFile(t *testing.T) {
	out := bytes.Buffer{}
	err := Render(&out, []string{filepath.Join(t.TempDir(), "missing.json")}, tools.CodewordMetric)
	if err == nil {
		t.Fatalf("expected an error")
	}
}
