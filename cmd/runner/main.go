// Command runner executes a single command under supervision, redacting
// secrets from its output and killing its process group on timeout or
// interrupt.
package main

import (
	"os"

	"github.com/jmgilman/go/runner/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
