package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/hamming13/cmd/internal/tools"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string
var Metric string

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = Render(f, args, Metric)
	if err != nil {
		fmt.Println(err)
	}
}

//Render draws a bar chart with one series per results file.
func Render(w io.Writer, resultFiles []string, metric string) error {
	stats, points, err := tools.LoadAllResults(resultFiles)
	if err != nil {
		return err
	}

	xnames := make([]string, len(points))
	for i, p := range points {
		xnames[i] = fmt.Sprint(p)
	}

	// create a new bar instance
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: fmt.Sprintf("%v error rates", metric),
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Remaining Error",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)

	for i, s := range stats {
		bar.AddSeries(resultFiles[i], series(s, points, metric))
	}

	return errors.Wrap(bar.Render(w), "rendering chart")
}

func series(stat *tools.SimulationStats, values []float64, metric string) []opts.BarData {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: tools.Metric(x, metric),
		}
	}
	return results
}
