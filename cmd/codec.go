package cmd

import (
	"github.com/nathanhack/hamming74/cmd/internal/codec"

	"github.com/spf13/cobra"
)

// codecCmd represents the codec command
var codecCmd = &cobra.Command{
	Use:     "codec",
	Aliases: []string{"cd"},
	Short:   "Encode, check and decode codewords",
	Long: `Encode, check and decode codewords. Messages and codewords may be given as digits,
for example 1010 or "1 0 1 0".`,
}

// codecEncodeCmd represents the encode command
var codecEncodeCmd = &cobra.Command{
	Use:     "encode MESSAGE",
	Aliases: []string{"e"},
	Short:   "Encodes a 4 bit message",
	Long:    `Encodes a 4 bit message into a 7 bit codeword.`,
	Args:    cobra.ExactArgs(1),
	Run:     codec.EncodeRun,
}

// codecSyndromeCmd represents the syndrome command
var codecSyndromeCmd = &cobra.Command{
	Use:     "syndrome CODEWORD",
	Aliases: []string{"s"},
	Short:   "Checks the syndrome of a 7 bit codeword",
	Long:    `Checks the syndrome of a 7 bit codeword and reports whether an error could be corrected. The codeword is not changed.`,
	Args:    cobra.ExactArgs(1),
	Run:     codec.SyndromeRun,
}

// codecDecodeCmd represents the decode command
var codecDecodeCmd = &cobra.Command{
	Use:     "decode CODEWORD",
	Aliases: []string{"d"},
	Short:   "Decodes a 7 bit codeword",
	Long:    `Decodes a 7 bit codeword, correcting a single error when possible, and reports the original 4 bit message.`,
	Args:    cobra.ExactArgs(1),
	Run:     codec.DecodeRun,
}

// codecFlipCmd represents the flip command
var codecFlipCmd = &cobra.Command{
	Use:     "flip CODEWORD",
	Aliases: []string{"f"},
	Short:   "Injects bit errors into a codeword",
	Long:    `Flips --count random bits (at most 2) or the bit at --index (0-6) of a 7 bit codeword. The two flags can not be combined.`,
	Args:    cobra.ExactArgs(1),
	Run:     codec.FlipRun,
}

func init() {
	rootCmd.AddCommand(codecCmd)

	codecCmd.PersistentFlags().StringVarP(&codec.Format, "format", "o", "json", "output format: json or yaml")

	codecCmd.AddCommand(codecEncodeCmd)
	codecEncodeCmd.Flags().StringVar(&codec.ECCFile, "ecc", "", "a code created with 'create hamming74' (default is the built-in code)")

	codecCmd.AddCommand(codecSyndromeCmd)
	codecSyndromeCmd.Flags().StringVar(&codec.ECCFile, "ecc", "", "a code created with 'create hamming74' (default is the built-in code)")

	codecCmd.AddCommand(codecDecodeCmd)
	codecDecodeCmd.Flags().StringVar(&codec.ECCFile, "ecc", "", "a code created with 'create hamming74' (default is the built-in code)")

	codecCmd.AddCommand(codecFlipCmd)
	codecFlipCmd.Flags().IntVarP(&codec.Count, "count", "c", 1, "the number of random bits to flip (0-2)")
	codecFlipCmd.Flags().IntVarP(&codec.Index, "index", "i", 0, "the 0-based index of the bit to flip")
}
