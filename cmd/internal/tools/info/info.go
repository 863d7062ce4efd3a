package info

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nathanhack/hamming13/codeword"
	"github.com/nathanhack/hamming13/linearblock"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var JSON bool

var InfoRun = func(cmd *cobra.Command, args []string) {
	err := Write(os.Stdout, JSON)
	if err != nil {
		fmt.Println(err)
	}
}

type layout struct {
	CodewordLength int
	MessageLength  int
	ParitySymbols  int
	CodeRate       float64
	DataBits       [8]int
	ParityMasks    map[int]string
	H              string
	G              string
}

//Write prints the codeword layout and its matrices, checking them against each other first.
func Write(w io.Writer, asJSON bool) error {
	block := linearblock.New()
	if !block.Validate() {
		return errors.New("generator and parity check matrices do not agree")
	}

	masks := block.ParityMasks()
	for i, g := range codeword.ParityGroups {
		if masks[i] != g.Mask {
			return errors.Errorf("parity check %v covers %v but the layout has %v", g.Bit, masks[i], g.Mask)
		}
	}
	logrus.Debugf("matrices validated")

	if !asJSON {
		_, err := fmt.Fprintf(w, "(%v,%v) code rate %0.3f\ndata bits %v\n%v",
			block.CodewordLength(), block.MessageLength(), block.CodeRate(), codeword.DataBits, block)
		return errors.Wrap(err, "writing info")
	}

	l := layout{
		CodewordLength: block.CodewordLength(),
		MessageLength:  block.MessageLength(),
		ParitySymbols:  block.ParitySymbols(),
		CodeRate:       block.CodeRate(),
		DataBits:       codeword.DataBits,
		ParityMasks:    map[int]string{},
		H:              block.H.String(),
		G:              block.G.String(),
	}
	for _, g := range codeword.ParityGroups {
		l.ParityMasks[g.Bit] = g.Mask.String()
	}

	bs, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing info")
	}
	_, err = fmt.Fprintln(w, string(bs))
	return errors.Wrap(err, "writing info")
}
