package codeword

// Decoded is the outcome of decoding one raw word.
type Decoded struct {
	Raw       Codeword  // as received
	Corrected Codeword  // after correction
	Syndrome  int       // 0 when no bit was flipped
	Received  Character // extracted before correction
	Character Character // extracted after correction
}

// Repaired returns true if correction flipped a bit.
func (d Decoded) Repaired() bool {
	return d.Syndrome != 0
}

// DecodeOne corrects raw and returns the character it carries.
func DecodeOne(raw uint16) Character {
	c := Codeword(raw)
	Correct(&c)
	return ToCharacter(c)
}

// Inspect returns the character carried by raw without correcting it.
func Inspect(raw uint16) Character {
	return ToCharacter(Codeword(raw))
}

// Decode reports both the as received and the corrected view of raw.
func Decode(raw uint16) Decoded {
	d := Decoded{
		Raw:       Codeword(raw),
		Corrected: Codeword(raw),
		Received:  Inspect(raw),
	}
	d.Syndrome = Correct(&d.Corrected)
	d.Character = ToCharacter(d.Corrected)
	return d
}
