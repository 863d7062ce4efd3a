package receiver

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/nathanhack/hamming13/codeword"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line      string
		expected  []uint16
		expectErr bool
	}{
		{"", []uint16{}, false},
		{"2448 2512", []uint16{2448, 2512}, false},
		{"  2448\t 3226 \n", []uint16{2448, 3226}, false},
		{"-1 65535 -32768", []uint16{0xFFFF, 0xFFFF, 0x8000}, false},
		{"2448 x", nil, true},
		{"65536", nil, true},
		{"-32769", nil, true},
		{"0x990", nil, true},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := ParseLine(test.line)
			if test.expectErr {
				if err == nil {
					t.Fatalf("expected an error but found %v", actual)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if len(actual) != len(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
			for j := range actual {
				if actual[j] != test.expected[j] {
					t.Fatalf("expected %v but found %v", test.expected, actual)
				}
			}
		})
	}
}

func TestParseLineTruncates(t *testing.T) {
	line := strings.Repeat("2448 ", MaxMessageLength+10)
	actual, err := ParseLine(line)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if len(actual) != MaxMessageLength {
		t.Fatalf("expected %v but found %v", MaxMessageLength, len(actual))
	}
}

func TestReadMessage(t *testing.T) {
	actual, err := ReadMessage(strings.NewReader("2512 3226\n9999\n"))
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if len(actual) != 2 || actual[0] != 2512 || actual[1] != 3226 {
		t.Fatalf("expected [2512 3226] but found %v", actual)
	}

	actual, err = ReadMessage(strings.NewReader("2448"))
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if len(actual) != 1 || actual[0] != 2448 {
		t.Fatalf("expected [2448] but found %v", actual)
	}
}

func TestReceive(t *testing.T) {
	message := "Hello, World!"
	words := make([]uint16, len(message))
	for i := range message {
		words[i] = uint16(codeword.Encode(codeword.Character(message[i])))
	}
	// one bit error in every other word
	for i := 0; i < len(words); i += 2 {
		words[i] ^= 1 << (1 + i%12)
	}

	report, err := Receive(context.Background(), words, 4)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if report.Corrected() != message {
		t.Fatalf("expected %v but found %v", message, report.Corrected())
	}
	if report.Corrections() != (len(words)+1)/2 {
		t.Fatalf("expected %v but found %v", (len(words)+1)/2, report.Corrections())
	}
	if report.Transmitted() == message {
		t.Fatalf("expected the transmitted message to differ from %v", message)
	}
	for i, w := range report.Words {
		if w.Raw != codeword.Codeword(words[i]) {
			t.Fatalf("expected %v but found %v", codeword.Codeword(words[i]), w.Raw)
		}
	}
}

func TestReceiveEmpty(t *testing.T) {
	report, err := Receive(context.Background(), nil, 0)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if report.Transmitted() != "" || report.Corrected() != "" {
		t.Fatalf("expected empty messages")
	}
}

func TestReceiveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Receive(ctx, []uint16{2448}, 1)
	if err == nil {
		t.Fatalf("expected an error")
	}
}
