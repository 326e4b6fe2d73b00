package cmd

import (
	"github.com/nathanhack/hamming74/cmd/internal/create/hamming"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new ECC",
	Long:    `create saves the matrices of an ECC so they can be inspected, edited and used later by the codec and the tools.`,
}

// createHammingCmd represents the hamming74 command
var createHammingCmd = &cobra.Command{
	Use:     "hamming74 OUTPUT_HAMMING_JSON",
	Aliases: []string{"h", "ham"},
	Short:   "Saves the Hamming(7,4) code",
	Long:    `Saves the generator, parity check and decoder selection matrices of the Hamming(7,4) code as JSON.`,
	Args:    cobra.ExactArgs(1),
	Run:     hamming.HammingRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createHammingCmd)
}
