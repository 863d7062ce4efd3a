package cmd

import (
	"github.com/nathanhack/hamming13/cmd/internal/receive"

	"github.com/spf13/cobra"
)

// receiveCmd represents the receive command
var receiveCmd = &cobra.Command{
	Use:     "receive [MESSAGE_FILE]",
	Aliases: []string{"r", "rx"},
	Short:   "Decodes a transmitted message",
	Long: `Reads one line of whitespace separated codewords (decimal 16 bit integers) from MESSAGE_FILE
or, when no file is given, from standard input. Prints the message as it was received and
after every single bit error has been corrected.`,
	Args: cobra.MaximumNArgs(1),
	Run:  receive.ReceiveRun,
}

func init() {
	rootCmd.AddCommand(receiveCmd)
	receiveCmd.Flags().UintVarP(&receive.Threads, "threads", "t", 0, "the number of threads to use; note 0 means use the number of cpus")
	receiveCmd.Flags().BoolVarP(&receive.Details, "details", "d", false, "print a table with the decoding of every word")
}
