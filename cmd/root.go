package cmd

import (
	"fmt"
	"os"

	"github.com/nathanhack/hamming13/cmd/internal/logging"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hamming13",
	Short: "Receiver for characters sent as 13 bit Hamming codewords",
	Long: `hamming13 decodes characters that were sent as 13 bit Hamming single error correcting codewords,
repairing any single bit flip per word. It also has tools to simulate the code over noisy channels.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := logging.Setup(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&logging.Verbose, "verbose", "v", false, "enable verbose info")
	rootCmd.PersistentFlags().StringVar(&logging.File, "log-file", "", "also write log entries as JSON to this file")
}
