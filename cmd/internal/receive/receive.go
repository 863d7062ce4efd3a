package receive

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nathanhack/hamming13/cmd/internal/signals"
	"github.com/nathanhack/hamming13/receiver"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Threads uint
	Details bool
)

const prompt = "Please enter the transmitted message: "

var ReceiveRun = func(cmd *cobra.Command, args []string) {
	input := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Println("unable to open message file: ", err)
			return
		}
		defer f.Close()
		input = f
	} else {
		fmt.Print(prompt)
	}

	ctx, cancel := signals.Context()
	defer cancel()

	err := Run(ctx, input, os.Stdout, int(Threads), Details)
	if err != nil {
		fmt.Println(err)
	}
}

// Run reads a message from in, decodes it and writes both renderings to out.
func Run(ctx context.Context, in io.Reader, out io.Writer, threads int, details bool) error {
	words, err := receiver.ReadMessage(in)
	if err != nil {
		return err
	}

	report, err := receiver.Receive(ctx, words, threads)
	if err != nil {
		return err
	}
	logrus.Debugf("%v of %v words corrected", report.Corrections(), len(report.Words))

	_, err = fmt.Fprintf(out, "\n\n Transmitted Message:\n%v\n", report.Transmitted())
	if err != nil {
		return errors.Wrap(err, "writing message")
	}
	_, err = fmt.Fprintf(out, "\n\n Corrected Transmitted Message:\n%v\n", report.Corrected())
	if err != nil {
		return errors.Wrap(err, "writing message")
	}

	if details {
		writeDetails(out, report)
	}
	return nil
}

func writeDetails(out io.Writer, report *receiver.Report) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Raw", "Bits", "Syndrome", "Corrected", "Received", "Character"})
	for i, w := range report.Words {
		table.Append([]string{
			strconv.Itoa(i),
			w.Raw.String(),
			w.Raw.Bits(),
			strconv.Itoa(w.Syndrome),
			w.Corrected.String(),
			strconv.Quote(w.Received.String()),
			strconv.Quote(w.Character.String()),
		})
	}
	table.Render()
}
