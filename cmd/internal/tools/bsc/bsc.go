package bsc

import (
	"context"
	"fmt"
	"reflect"

	"github.com/nathanhack/hamming74/benchmarking"
	"github.com/nathanhack/hamming74/cmd/internal/tools"
	"github.com/nathanhack/hamming74/internal/metrics"
	"github.com/nathanhack/hamming74/linearblock/hamming"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	ErrorProbability []float64
	ECCFile          string
)

var BscRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}

	ctx := tools.SignalContext()

	code, err := tools.LoadCode(ctx, ECCFile)
	if err != nil {
		fmt.Println(err)
		return
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.PrepareResults(args[0], typeInfo(), code)
	if err != nil {
		fmt.Println(err)
		return
	}

	var m *metrics.Decodes
	if addr := viper.GetString("bsc.metrics-addr"); addr != "" {
		m = metrics.NewDecodes()
		m.Serve(ctx, addr)
	}

	simulate := func(ctx context.Context, p float64, trials, threads int, previous benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBSC(ctx, code, m, p, trials, threads, previous, checkpoints, false)
	}
	tools.RunSimulation(ctx, data, ErrorProbability, viper.GetInt("bsc.trials"), viper.GetInt("bsc.threads"), args[0], simulate)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

func typeInfo() string {
	t := reflect.TypeOf(hamming.Code{})
	return fmt.Sprintf("BSC:%v/%v", t.PkgPath(), t.Name())
}

// RunBSC sends random messages through a binary symmetric channel flipping every
// bit with crossoverProbability and decodes them with code.
func RunBSC(ctx context.Context,
	code *hamming.Code,
	m *metrics.Decodes,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(hamming.MessageLength)
	}

	channel := func(trial int, originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		erroredCodeword = benchmarking.RandomFlipBits(originalCodeword, crossoverProbability)
		if m != nil {
			m.Flipped(erroredCodeword.HammingDistance(originalCodeword))
		}
		return erroredCodeword
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, code.Encode, channel, tools.Decoder(code, m), checkpoints, previousStats, showProgress)
}
