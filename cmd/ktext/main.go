// Command ktext renders typed values through the ktext encoders, for inspecting how a message
// will look, and where it will be cut, in a buffer of a given size.
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
