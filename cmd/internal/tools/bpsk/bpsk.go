package bpsk

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
	mat2 "gonum.org/v1/gonum/mat"
)

var (
	EbPerN0 []float64
	ECCFile string
)

var BpskRun = func(cmd *cobra.Command, args []string) {
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

	data, err := tools.PrepareResults(args[0], typeInfo(), code)
	if err != nil {
		fmt.Println(err)
		return
	}

	var m *metrics.Decodes
	if addr := viper.GetString("bpsk.metrics-addr"); addr != "" {
		m = metrics.NewDecodes()
		m.Serve(ctx, addr)
	}

	simulate := func(ctx context.Context, ebPerN0 float64, trials, threads int, previous benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBPSK(ctx, code, m, ebPerN0, trials, threads, previous, checkpoints, false)
	}
	tools.RunSimulation(ctx, data, EbPerN0, viper.GetInt("bpsk.trials"), viper.GetInt("bpsk.threads"), args[0], simulate)

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

func typeInfo() string {
	t := reflect.TypeOf(hamming.Code{})
	return fmt.Sprintf("BPSK:%v/%v", t.PkgPath(), t.Name())
}

// RunBPSK sends random messages as BPSK symbols through an AWGN channel with the
// given E_b/N_0 and decodes the hard decisions with code.
func RunBPSK(ctx context.Context,
	code *hamming.Code,
	m *metrics.Decodes,
	ebPerN0 float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(hamming.MessageLength)
	}

	channel := func(trial int, codeword mat2.Vector) mat2.Vector {
		received := benchmarking.RandomNoiseBPSK(codeword, ebPerN0)
		if m != nil {
			m.Flipped(benchmarking.BPSKToBits(received, 0).HammingDistance(benchmarking.BPSKToBits(codeword, 0)))
		}
		return received
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, code.Encode, channel, tools.Decoder(code, m), checkpoints, previousStats, showProgress)
}
