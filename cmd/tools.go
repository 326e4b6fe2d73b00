package cmd

import (
	"github.com/nathanhack/hamming74/cmd/internal/tools/bpsk"
	"github.com/nathanhack/hamming74/cmd/internal/tools/bsc"
	"github.com/nathanhack/hamming74/cmd/internal/tools/chart"
	"github.com/nathanhack/hamming74/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for the Hamming(7,4) codec`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator. Every bit is flipped independently with the crossover probability.`,
	Args:  cobra.ExactArgs(1),
	Run:   bsc.BscRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk RESULT_JSON",
	Short: "A BPSK over AWGN channel simulator",
	Long:  `A BPSK over AWGN channel simulator using hard decisions before decoding.`,
	Args:  cobra.ExactArgs(1),
	Run:   bpsk.BpskRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an HTML bar chart",
	Long:    `Export to an HTML bar chart`,
	Run:     chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().Uint("trials", 1_000_000, "the number of trials per step")
	toolsBscCmd.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50}, "probability of crossover errors to test [0, 0.5]")
	toolsBscCmd.Flags().Uint("threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBscCmd.Flags().String("metrics-addr", "", "serve prometheus metrics on this address while running, e.g. :9100")
	toolsBscCmd.Flags().StringVar(&bsc.ECCFile, "ecc", "", "a code created with 'create hamming74' (default is the built-in code)")
	viper.BindPFlag("bsc.trials", toolsBscCmd.Flags().Lookup("trials"))
	viper.BindPFlag("bsc.threads", toolsBscCmd.Flags().Lookup("threads"))
	viper.BindPFlag("bsc.metrics-addr", toolsBscCmd.Flags().Lookup("metrics-addr"))

	toolsChansimCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.Flags().Uint("trials", 1_000_000, "the number of trials per step")
	toolsBpskCmd.Flags().Float64SliceVarP(&bpsk.EbPerN0, "ebn0", "e", []float64{0.5, 1, 2, 4, 8}, "E_b/N_0 values to test (linear, >0)")
	toolsBpskCmd.Flags().Uint("threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBpskCmd.Flags().String("metrics-addr", "", "serve prometheus metrics on this address while running, e.g. :9100")
	toolsBpskCmd.Flags().StringVar(&bpsk.ECCFile, "ecc", "", "a code created with 'create hamming74' (default is the built-in code)")
	viper.BindPFlag("bpsk.trials", toolsBpskCmd.Flags().Lookup("trials"))
	viper.BindPFlag("bpsk.threads", toolsBpskCmd.Flags().Lookup("threads"))
	viper.BindPFlag("bpsk.metrics-addr", toolsBpskCmd.Flags().Lookup("metrics-addr"))

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().StringVarP(&csv.Metric, "metric", "m", "message", "one of message, clean, corrected, uncorrectable, undetected")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().StringVarP(&chart.Metric, "metric", "m", "message", "one of message, clean, corrected, uncorrectable, undetected")
}
