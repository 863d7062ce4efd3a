package info

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	out := bytes.Buffer{}
	if err := Write(&out, false); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if !strings.HasPrefix(out.String(), "(13,8) code rate 0.615") {
		t.Fatalf("expected the code dimensions but found %q", out.String())
	}
}

func TestWriteJSON(t *testing.T) {
	out := bytes.Buffer{}
	if err := Write(&out, true); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}

	var actual layout
	if err := json.Unmarshal(out.Bytes(), &actual); err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if actual.ParityMasks[8] != "0x1E00" || actual.ParitySymbols != 4 {
		t.Fatalf("expected P8 mask 0x1E00 and 4 parity symbols but found %+v", actual)
	}
}
