// cmd/server/main.go
// This is the entry point for the hello-visits server.
// All commands (serve, migrate, version) live in internal/cli; main only runs them
// and turns a returned error into a non-zero exit status.
package main

import (
	"os"

	"github.com/trentd187/hello-visits/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// cobra has already printed the error.
		os.Exit(1)
	}
}
