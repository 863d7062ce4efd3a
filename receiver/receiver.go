package receiver

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/nathanhack/hamming13/codeword"
	"github.com/nathanhack/threadpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MaxMessageLength is the most words read from one message, the rest are dropped.
const MaxMessageLength = 2048

// Report holds every decoded word of a message in input order.
type Report struct {
	Words []codeword.Decoded
}

// Transmitted is the message as received, before correction.
func (r *Report) Transmitted() string {
	buf := make([]byte, len(r.Words))
	for i, w := range r.Words {
		buf[i] = byte(w.Received)
	}
	return string(buf)
}

// Corrected is the message after correction.
func (r *Report) Corrected() string {
	buf := make([]byte, len(r.Words))
	for i, w := range r.Words {
		buf[i] = byte(w.Character)
	}
	return string(buf)
}

// Corrections counts the words that had a bit flipped.
func (r *Report) Corrections() (count int) {
	for _, w := range r.Words {
		if w.Repaired() {
			count++
		}
	}
	return
}

// ParseLine reads whitespace separated decimal words. Negative values are taken
// as two's complement 16 bit words so both signed and unsigned renderings work.
func ParseLine(line string) ([]uint16, error) {
	tokens := strings.Fields(line)
	if len(tokens) > MaxMessageLength {
		logrus.Warnf("message has %v words, only the first %v are used", len(tokens), MaxMessageLength)
		tokens = tokens[:MaxMessageLength]
	}

	words := make([]uint16, len(tokens))
	for i, token := range tokens {
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "word %v", i)
		}
		if v < math.MinInt16 || v > math.MaxUint16 {
			return nil, errors.Errorf("word %v: %v does not fit in 16 bits", i, v)
		}
		words[i] = uint16(v)
	}
	return words, nil
}

// ReadMessage parses the first line of r.
func ReadMessage(r io.Reader) ([]uint16, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "reading message")
	}
	return ParseLine(line)
}

// Receive decodes every word independently using threads workers (<=0 means the
// number of cpus). The report keeps the input order.
func Receive(ctx context.Context, words []uint16, threads int) (*Report, error) {
	report := &Report{
		Words: make([]codeword.Decoded, len(words)),
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "receiving message")
	}
	if len(words) == 0 {
		return report, nil
	}

	pool := threadpool.NewFixedSize(ctx, threads, len(words))
	for i := range words {
		index := i
		pool.Add(func() {
			report.Words[index] = codeword.Decode(words[index])
		})
	}
	pool.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "receiving message")
	}

	for i, w := range report.Words {
		if w.Repaired() {
			logrus.Debugf("word %v: flipped bit %v, %v -> %v (%q -> %q)", i, w.Syndrome, w.Raw, w.Corrected, w.Received.String(), w.Character.String())
		}
	}
	return report, nil
}
