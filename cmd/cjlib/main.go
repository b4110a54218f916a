// Command cjlib is a thin CLI driver over the cjlib facade: get/set/rm a
// key, cat (stringify) a whole document, fmt (re-dump) one or more
// documents, or import a YAML source as JSON. It adds no core semantics
// of its own.
package main

import (
	"fmt"
	"os"

	"github.com/constarg/cjlib-go/internal/cli"
)

func main() {
	root := cli.NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
