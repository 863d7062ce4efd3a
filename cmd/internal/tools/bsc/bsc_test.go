package bsc

import (
	"context"
	"testing"

	"github.com/nathanhack/hamming13/benchmarking"
	"github.com/nathanhack/hamming13/cmd/internal/tools"
)

func TestRunBSC(t *testing.T) {
	tests := []struct {
		decoder     string
		probability float64
		expected    float64
	}{
		{tools.SyndromeDecoder, 0, 0},
		{tools.GallagerDecoder, 0, 0},
		{tools.NoDecoder, 1, 1},
	}
	for _, test := range tests {
		t.Run(test.decoder, func(t *testing.T) {
			correct, err := tools.Corrector(test.decoder, 20)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}

			stats := RunBSC(context.Background(), test.probability, 64, 2, correct, benchmarking.Stats{}, nil, false)
			if stats.CodewordError.Count != 64 {
				t.Fatalf("expected %v but found %v", 64, stats.CodewordError.Count)
			}
			if stats.CodewordError.Mean != test.expected || stats.SymbolError.Mean != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, stats)
			}
		})
	}
}
