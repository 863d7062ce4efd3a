package codeword

import "fmt"

func ExampleDecodeOne() {
	// "Hi" with bit 6 of the first word flipped in transit
	message := []uint16{0x09D0, 0x0C9A}

	for _, raw := range message {
		fmt.Print(Inspect(raw))
	}
	fmt.Println()
	for _, raw := range message {
		fmt.Print(DecodeOne(raw))
	}
	fmt.Println()
	//Output:
	// Li
	// Hi
}
