package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/hamming13/bitfield"
	"github.com/nathanhack/hamming13/codeword"
	"github.com/nathanhack/threadpool"
	mat2 "gonum.org/v1/gonum/mat"
)

// the channel never touches the reserved bit
const transmittedBits = codeword.Length - 1

// bits 1..12; a double error can leave Correct flipping one of bits 13..15
const transmittedMask codeword.Codeword = 0x1FFE

type Stats struct {
	CodewordError avgstd.AvgStd // fraction of codeword bits still wrong after correction
	MessageError  avgstd.AvgStd // fraction of character bits still wrong after correction
	SymbolError   avgstd.AvgStd // fraction of characters decoded wrong
}

func (s Stats) String() string {
	return fmt.Sprintf("{Codeword:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f), Symbol:%0.02f(+/-%0.02f)}",
		s.CodewordError.Mean, math.Sqrt(s.CodewordError.SampledVariance()),
		s.MessageError.Mean, math.Sqrt(s.MessageError.SampledVariance()),
		s.SymbolError.Mean, math.Sqrt(s.SymbolError.SampledVariance()),
	)
}

type Checkpoints func(updatedStats Stats)

type CharacterConstructor func(trial int) codeword.Character

// Correction repairs the received codeword in place
type Correction func(received *codeword.Codeword)

//specific to BSC
type BinarySymmetricChannel func(c codeword.Codeword) (channelInduced codeword.Codeword)

//specific to BPSK
type BPSKChannel func(bpsk mat2.Vector) (channelInduced mat2.Vector)

func BenchmarkBSC(ctx context.Context,
	trials int, threads int,
	createCharacter CharacterConstructor,
	channel BinarySymmetricChannel,
	correct Correction,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, trials, threads, createCharacter, channel, correct, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	trials int, threads int,
	createCharacter CharacterConstructor,
	channel BinarySymmetricChannel,
	correct Correction,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	return run(ctx, trials, threads, createCharacter, channel, correct, checkpoints, previousStats, showProgress)
}

//BenchmarkBPSK sends codewords as BPSK symbols, the receiver makes a hard
// decision at 0 before correcting.
func BenchmarkBPSK(ctx context.Context,
	trials int, threads int,
	createCharacter CharacterConstructor,
	channel BPSKChannel,
	correct Correction,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBPSKContinueStats(ctx, trials, threads, createCharacter, channel, correct, checkpoints, Stats{}, showProgress)
}

func BenchmarkBPSKContinueStats(ctx context.Context,
	trials int, threads int,
	createCharacter CharacterConstructor,
	channel BPSKChannel,
	correct Correction,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	transmit := func(c codeword.Codeword) codeword.Codeword {
		return BPSKToBits(channel(BitsToBPSK(c)), 0)
	}
	return run(ctx, trials, threads, createCharacter, transmit, correct, checkpoints, previousStats, showProgress)
}

func run(ctx context.Context,
	trials int, threads int,
	createCharacter CharacterConstructor,
	transmit func(c codeword.Codeword) codeword.Codeword,
	correct Correction,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.CodewordError.Count
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		// pick the character
		sent := createCharacter(i)

		// encode to get our codeword
		original := codeword.Encode(sent)

		// send through the channel to get channel induced errors
		received := transmit(original)

		// repair the codeword (if possible)
		correct(&received)

		codewordErrors, messageErrors, symbolError := Metrics(sent, original, received)

		statsMux.Lock()
		previousStats.CodewordError.Update(codewordErrors)
		previousStats.MessageError.Update(messageErrors)
		previousStats.SymbolError.Update(symbolError)
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.CodewordError.Count; i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

//Metrics returns the fraction of wrong codeword bits, wrong character bits and
// whether the character itself is wrong (0 or 1).
func Metrics(sent codeword.Character, original, repaired codeword.Codeword) (codewordErrors, messageErrors, symbolError float64) {
	decoded := codeword.ToCharacter(repaired)
	codewordErrors = float64(HammingDistance(original&transmittedMask, repaired&transmittedMask)) / float64(transmittedBits)
	messageErrors = float64(HammingDistance(sent, decoded)) / float64(bitfield.Width[codeword.Character]())
	if decoded != sent {
		symbolError = 1
	}
	return
}

//HammingDistance calculates the number of bits different.
func HammingDistance[T bitfield.Container](a, b T) int {
	return bitfield.PopCount(a ^ b)
}

//BitsToBPSK converts the transmitted bits of c into a [-1,1] vector
func BitsToBPSK(c codeword.Codeword) mat2.Vector {
	output := mat2.NewVecDense(transmittedBits, nil)

	for i := 0; i < transmittedBits; i++ {
		if bitfield.IsBitSet(c, i+1) {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits converts a BPSK vector [-1,1] back into a codeword.
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) codeword.Codeword {
	var result codeword.Codeword

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			bitfield.SetBit(i+1, &result)
		}
	}
	return result
}
