// testfilter removes unsupported storage tests from an e2e test listing read
// on stdin.
package main

import (
	"os"

	"github.com/hupe1980/testfilter/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
