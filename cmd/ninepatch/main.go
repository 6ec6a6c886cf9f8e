// Command ninepatch inspects and scales 9-Patch images.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ninepatch: %v\n", err)
		os.Exit(1)
	}
}
