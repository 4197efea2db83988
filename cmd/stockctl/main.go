// Command stockctl pulls inventory collections from a stockroom REST backend,
// or from local JSON files, and runs the list engine and alert analytics on
// them locally.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
