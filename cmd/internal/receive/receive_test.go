package receive

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		input       string
		transmitted string
		corrected   string
	}{
		// "Hi", the H has bit 6 flipped
		{"2512 3226\n", "Li", "Hi"},
		{"2448 3226", "Hi", "Hi"},
		{"3115", "c", "g"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			out := bytes.Buffer{}
			err := Run(context.Background(), strings.NewReader(test.input), &out, 1, false)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			expected := "\n\n Transmitted Message:\n" + test.transmitted + "\n\n\n Corrected Transmitted Message:\n" + test.corrected + "\n"
			if out.String() != expected {
				t.Fatalf("expected %q but found %q", expected, out.String())
			}
		})
	}
}

func TestRunDetails(t *testing.T) {
	out := bytes.Buffer{}
	err := Run(context.Background(), strings.NewReader("2512 3226"), &out, 0, true)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	for _, expected := range []string{"SYNDROME", "0x09D0", "0x0990", "0100111010000"} {
		if !strings.Contains(out.String(), expected) {
			t.Fatalf("expected %q in\n%v", expected, out.String())
		}
	}
}

func TestRunBadInput(t *testing.T) {
	out := bytes.Buffer{}
	err := Run(context.Background(), strings.NewReader("2512 abc"), &out, 1, false)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output but found %q", out.String())
	}
}
