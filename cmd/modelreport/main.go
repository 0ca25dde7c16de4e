// modelreport entrypoint. All logic lives in src/cli and the packages below
// it; this binary only dispatches and sets the exit code.
package main

import (
	"fmt"
	"os"

	"github.com/Vanish0314/model-format-comparision/src/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
