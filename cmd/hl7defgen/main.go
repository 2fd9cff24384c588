// hl7defgen generates the static HL7 v2.x definition data compiled into
// the hl7def package. It is normally run through go:generate from the
// package root.
package main

import (
	"os"

	"github.com/hl7kit/hl7def/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
