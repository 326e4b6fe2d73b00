package tools

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/linearblock/hamming"
)

// Simulate runs trials for one channel parameter, continuing from previous.
type Simulate func(ctx context.Context, parameter float64, trials, threads int, previous benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats

// PrepareResults loads outputFilename, or creates new results, and checks they belong to typeInfo and code.
func PrepareResults(outputFilename, typeInfo string, code *hamming.Code) (*SimulationStats, error) {
	data, err := LoadResults(outputFilename)
	if err != nil {
		return nil, err
	}

	eccInfo := Md5Sum(code.Block().H)
	if data == nil {
		data = &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  eccInfo,
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo {
		return nil, fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != eccInfo {
		return nil, fmt.Errorf("results loaded do not match the ECC")
	}
	return data, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// RunSimulation grows every parameter's trial count in rounds so all parameters
// progress together, saving to outputFilename as it goes.
func RunSimulation(ctx context.Context, data *SimulationStats, parameters []float64, trials, threads int, outputFilename string, simulate Simulate) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	if threads == 0 {
		threads = runtime.NumCPU()
	}

	trialsPerIter := threads * 10
	bar := pb.StartNew(trials * len(parameters))
trialLoops:
	for t := trialsPerIter; t < trials+trialsPerIter; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, p := range parameters {
			parameter := p
			checkpoint := func(stats benchmarking.Stats) {
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[parameter] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}

			before := data.Stats[parameter].Trials()
			stats := simulate(ctx, parameter, min(t, trials), threads, data.Stats[parameter], checkpoint)

			checkpointMux.Lock()
			data.Stats[parameter] = stats
			checkpointMux.Unlock()
			bar.Add(stats.Trials() - before)
		}
	}
	bar.Finish()
}
