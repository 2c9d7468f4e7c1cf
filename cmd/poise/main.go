// Package main provides the poise CLI, which scores a recorded interview
// answer for vocal confidence, nervousness and fluency.
//
// Usage:
//
//	poise [flags] <command> [args]
//
// Commands:
//
//	analyze - Score an audio file against its transcript
//	config  - Print the effective analysis configuration
//	version - Print the build version
package main

import (
	"fmt"
	"os"

	"github.com/RyanBlaney/sonido-poise/cmd/poise/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
