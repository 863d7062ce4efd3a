package bsc

import (
	"context"
	"fmt"

	"github.com/nathanhack/hamming13/benchmarking"
	"github.com/nathanhack/hamming13/cmd/internal/signals"
	"github.com/nathanhack/hamming13/cmd/internal/tools"
	"github.com/nathanhack/hamming13/codeword"
	"github.com/nathanhack/hamming13/linearblock"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	MaxIter          uint
	Decoder          string
)

var BscRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}

	correct, err := tools.Corrector(Decoder, int(MaxIter))
	if err != nil {
		fmt.Println(err)
		return
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	block := linearblock.New()
	data, err := tools.LoadOrCreateResults(args[0], tools.TypeInfo("BSC", Decoder), tools.Md5Sum(block.H))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := signals.Context()
	defer cancel()

	step := func(ctx context.Context, p float64, trials int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats {
		return RunBSC(ctx, p, trials, int(Threads), correct, previous, checkpoint, false)
	}
	tools.RunSimulation(ctx, data, args[0], ErrorProbability, int(Trials), int(Threads), step)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

//RunBSC simulates a binary symmetric channel flipping each transmitted bit with
// crossoverProbability. Trials cycle through every character.
func RunBSC(ctx context.Context,
	crossoverProbability float64, trials, threads int,
	correct benchmarking.Correction,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	createCharacter := func(trial int) codeword.Character {
		return codeword.Character(trial % 256)
	}

	channel := func(original codeword.Codeword) codeword.Codeword {
		return benchmarking.RandomFlipProbability(original, crossoverProbability)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createCharacter, channel, correct, checkpoints, previousStats, showProgress)
}
