// Command cruisequote estimates cruise prices and compares featured sailings
// from the terminal. It shares the catalog, rates and use cases with the
// HTTP service.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
