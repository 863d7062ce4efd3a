package tools

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/hamming13/benchmarking"
	"github.com/sirupsen/logrus"
)

//Step runs a channel simulation at point until trials have been done, continuing from previous.
type Step func(ctx context.Context, point float64, trials int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats

//RunSimulation grows every point of data in chunks so all points advance together,
// saving data to outputFilename as checkpoints come in.
func RunSimulation(ctx context.Context, data *SimulationStats, outputFilename string, points []float64, trials, threads int, step Step) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	trialsPerIter := threads * 10
	bar := pb.StartNew(trials * len(points))
	done := 0
trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		target := min(t, trials)
		for _, p := range points {
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[p] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}
			previous := data.Stats[p]
			data.Stats[p] = step(ctx, p, target, previous, checkpoint)
			added := data.Stats[p].CodewordError.Count - previous.CodewordError.Count
			bar.Add(added)
			done += added
		}

		if target == trials {
			break
		}
	}
	bar.Finish()
	logrus.Debugf("ran %v trials over %v points", done, len(points))
}
