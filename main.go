package main

import "github.com/nathanhack/hamming13/cmd"

func main() {
	cmd.Execute()
}
