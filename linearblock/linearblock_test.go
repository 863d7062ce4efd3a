package linearblock

import (
	"testing"

	"github.com/nathanhack/hamming13/codeword"
)

func TestNew(t *testing.T) {
	l := New()
	if !l.Validate() {
		t.Fatalf("expected valid linearblock code")
	}
	if l.MessageLength() != 8 || l.ParitySymbols() != 4 || l.CodewordLength() != codeword.Length {
		t.Fatalf("expected (8,4,%v) but found (%v,%v,%v)", codeword.Length, l.MessageLength(), l.ParitySymbols(), l.CodewordLength())
	}
}

func TestParityMasks(t *testing.T) {
	l := New()
	actual := l.ParityMasks()
	for i, g := range codeword.ParityGroups {
		if actual[i] != g.Mask {
			t.Fatalf("expected %v but found %v", g.Mask, actual[i])
		}
	}
}

func TestSyndrome(t *testing.T) {
	l := New()
	for v := 0; v < 1<<codeword.Length; v++ {
		c := codeword.Codeword(v)
		expected := codeword.Syndrome(c)
		actual := l.Syndrome(c)
		if actual != expected {
			t.Fatalf("expected %v but found %v for %v", expected, actual, c.Bits())
		}
	}
}

func TestEncode(t *testing.T) {
	l := New()
	for ch := 0; ch < 256; ch++ {
		expected := codeword.Encode(codeword.Character(ch))
		actual := l.Encode(codeword.Character(ch))
		if actual != expected {
			t.Fatalf("expected %v but found %v", expected, actual)
		}
		if back := l.Decode(ToVector(actual)); back != codeword.Character(ch) {
			t.Fatalf("expected %v but found %v", codeword.Character(ch), back)
		}
	}
}

func TestToFromVector(t *testing.T) {
	for v := 0; v < 1<<codeword.Length; v += 5 {
		c := codeword.Codeword(v)
		actual := FromVector(ToVector(c))
		if actual != c {
			t.Fatalf("expected %v but found %v", c, actual)
		}
	}
}
