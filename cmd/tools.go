package cmd

import (
	"github.com/nathanhack/hamming13/cmd/internal/tools"
	"github.com/nathanhack/hamming13/cmd/internal/tools/bpsk"
	"github.com/nathanhack/hamming13/cmd/internal/tools/bsc"
	"github.com/nathanhack/hamming13/cmd/internal/tools/chart"
	"github.com/nathanhack/hamming13/cmd/internal/tools/csv"
	"github.com/nathanhack/hamming13/cmd/internal/tools/info"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for the codeword layout",
	Long:    `Tools for the codeword layout`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators sending random characters as codewords and correcting them on arrival`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator. Running again with the same RESULT_JSON continues the simulation.`,
	Args:  cobra.ExactArgs(1),
	Run:   bsc.BscRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk RESULT_JSON",
	Short: "A BPSK over AWGN channel simulator",
	Long:  `A BPSK over AWGN channel simulator using a hard decision before correction. Running again with the same RESULT_JSON continues the simulation.`,
	Args:  cobra.ExactArgs(1),
	Run:   bpsk.BpskRun,
}

// toolsInfoCmd represents the info command
var toolsInfoCmd = &cobra.Command{
	Use:     "info",
	Aliases: []string{"i"},
	Short:   "Shows the codeword layout",
	Long:    `Shows the codeword layout with its parity check and generator matrices after checking they agree.`,
	Args:    cobra.NoArgs,
	Run:     info.InfoRun,
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
	Args:    cobra.MinimumNArgs(1),
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Export to an html bar chart",
	Long:  `Export to an html bar chart`,
	Args:  cobra.MinimumNArgs(1),
	Run:   chart.ChartRun,
}

const decoderUsage = "the decoder: " + tools.SyndromeDecoder + ", " + tools.GallagerDecoder + " or " + tools.NoDecoder
const metricUsage = "the error rate to output: " + tools.CodewordMetric + ", " + tools.MessageMetric + " or " + tools.SymbolMetric

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)
	toolsCmd.AddCommand(toolsInfoCmd)
	toolsInfoCmd.Flags().BoolVarP(&info.JSON, "json", "j", false, "output as JSON")

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().UintVarP(&bsc.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBscCmd.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.01, 0.02, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.40, 0.50}, "probability of crossover errors to test [0, 0.5]")
	toolsBscCmd.Flags().UintVar(&bsc.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBscCmd.Flags().UintVarP(&bsc.MaxIter, "iters", "i", 20, "max number of iterations the gallager bitflip algorithm is allowed")
	toolsBscCmd.Flags().StringVarP(&bsc.Decoder, "decoder", "d", tools.SyndromeDecoder, decoderUsage)

	toolsChansimCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.Flags().UintVarP(&bpsk.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBpskCmd.Flags().Float64SliceVarP(&bpsk.EbN0, "ebn0", "e", []float64{0.5, 1, 2, 3, 4, 5, 6, 8, 10}, "E_b/N_0 values to test (>0)")
	toolsBpskCmd.Flags().UintVar(&bpsk.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBpskCmd.Flags().UintVarP(&bpsk.MaxIter, "iters", "i", 20, "max number of iterations the gallager bitflip algorithm is allowed")
	toolsBpskCmd.Flags().StringVarP(&bpsk.Decoder, "decoder", "d", tools.SyndromeDecoder, decoderUsage)

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().StringVarP(&csv.Metric, "metric", "m", tools.CodewordMetric, metricUsage)

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().StringVarP(&chart.Metric, "metric", "m", tools.CodewordMetric, metricUsage)
}
