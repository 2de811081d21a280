// Command spantween loads span tween scenes and steps them offline.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/spantween/cmd/spantween/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
