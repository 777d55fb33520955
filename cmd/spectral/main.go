package main

import (
	"fmt"
	"io"
	"os"

	apperrors "spectralcli/internal/errors"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if apperrors.IsLoadFailure(err) {
			fmt.Fprintf(stderr, "file not found: %v\n", err)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}
