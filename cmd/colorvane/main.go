// colorvane maintains a curated color-name catalog and answers
// nearest-color-name queries against it.
package main

import (
	"os"

	"github.com/colorvane/colorvane/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
