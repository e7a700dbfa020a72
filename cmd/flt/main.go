// Command flt reads arithmetic expressions interactively and prints their
// syntax trees.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("flt: ")
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
