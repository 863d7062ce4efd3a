package bpsk

import (
	"context"
	"testing"

	"github.com/nathanhack/hamming13/benchmarking"
	"github.com/nathanhack/hamming13/cmd/internal/tools"
)

func TestRunBPSK(t *testing.T) {
	correct, err := tools.Corrector(tools.SyndromeDecoder, 20)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	stats := RunBPSK(context.Background(), 100, 50, 2, correct, benchmarking.Stats{}, nil, false)
	if stats.SymbolError.Count != 50 {
		t.Fatalf("expected %v but found %v", 50, stats.SymbolError.Count)
	}

	stats = RunBPSK(context.Background(), 100, 30, 2, correct, stats, nil, false)
	if stats.SymbolError.Count != 80 {
		t.Fatalf("expected %v but found %v", 80, stats.SymbolError.Count)
	}
	if stats.CodewordError.Mean != 0 || stats.SymbolError.Mean != 0 {
		t.Fatalf("expected no errors but found %v", stats)
	}
}
