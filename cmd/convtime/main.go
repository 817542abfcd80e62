package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gnsskit/convtime/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			// Flag-parse and PersistentPreRunE errors never reach a
			// command's own error output; print them here.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(cli.ExitCommandError)
		}
		os.Exit(exitErr.Code)
	}
}
