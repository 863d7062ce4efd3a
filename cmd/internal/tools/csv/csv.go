package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/hamming13/cmd/internal/tools"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var OutputFile string
var Metric string

var CSVRun = func(cmd *cobra.Command, args []string) {
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

	err = Export(f, args, Metric)
	if err != nil {
		fmt.Println(err)
	}
}

//Export writes one row per results file and one column per point.
func Export(f io.Writer, resultFiles []string, metric string) error {
	stats, points, err := tools.LoadAllResults(resultFiles)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	defer w.Flush()

	//first write headers
	header := []string{"Results File"}
	for _, p := range points {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err = w.Write(header)
	if err != nil {
		return errors.Wrap(err, "writing csv header")
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(resultFiles[i], filepath.Ext(resultFiles[i]))

		for j, p := range points {
			if v, has := s.Stats[p]; has {
				record[j+1] = fmt.Sprintf("%v", tools.Metric(v, metric))
			}
		}

		err = w.Write(record)
		if err != nil {
			return errors.Wrap(err, "writing csv record")
		}
	}
	return nil
}
