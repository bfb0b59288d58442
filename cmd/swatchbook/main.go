// Swatchbook - a colour catalog and lookup tool
//
// Swatchbook maintains a deterministic named colour catalog and answers
// colour questions: classification, similarity, and free-text search.
package main

import (
	"os"

	"swatchbook/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
