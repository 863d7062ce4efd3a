package bpsk

import (
	"context"
	"fmt"

	"github.com/nathanhack/hamming13/benchmarking"
	"github.com/nathanhack/hamming13/cmd/internal/signals"
	"github.com/nathanhack/hamming13/cmd/internal/tools"
	"github.com/nathanhack/hamming13/codeword"
	"github.com/nathanhack/hamming13/linearblock"
	"github.com/spf13/cobra"
	mat2 "gonum.org/v1/gonum/mat"
)

var (
	Trials  uint
	EbN0    []float64
	Threads uint
	MaxIter uint
	Decoder string
)

var BpskRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}

	for _, e := range EbN0 {
		if e <= 0 {
			fmt.Printf("Eb/N0 must be > 0 but found %v\n", e)
			return
		}
	}

	correct, err := tools.Corrector(Decoder, int(MaxIter))
	if err != nil {
		fmt.Println(err)
		return
	}

	block := linearblock.New()
	data, err := tools.LoadOrCreateResults(args[0], tools.TypeInfo("BPSK", Decoder), tools.Md5Sum(block.H))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := signals.Context()
	defer cancel()

	step := func(ctx context.Context, ebn0 float64, trials int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats {
		return RunBPSK(ctx, ebn0, trials, int(Threads), correct, previous, checkpoint, false)
	}
	tools.RunSimulation(ctx, data, args[0], EbN0, int(Trials), int(Threads), step)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

//RunBPSK simulates BPSK over an AWGN channel at the given E_b/N_0 with a hard decision at 0.
func RunBPSK(ctx context.Context,
	ebn0 float64, trials, threads int,
	correct benchmarking.Correction,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	createCharacter := func(trial int) codeword.Character {
		return codeword.Character(trial % 256)
	}

	channel := func(bpsk mat2.Vector) mat2.Vector {
		return benchmarking.RandomNoiseBPSK(bpsk, ebn0)
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, trials, threads, createCharacter, channel, correct, checkpoints, previousStats, showProgress)
}
