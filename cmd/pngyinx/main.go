// pngyinx hides, reveals and removes text messages stored in private PNG chunks.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "pngyinx error: %s\n", err)
		os.Exit(1)
	}
}
