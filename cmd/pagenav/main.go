// Command pagenav renders and previews page navigation bars.
package main

import (
	"os"

	"github.com/rshade/pagenav/internal/cli"
	"github.com/rshade/pagenav/pkg/version"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes the root command. Cobra reports the error to stderr.
func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
