package main

import (
	"fmt"
	"os"

	"github.com/vimtools/vsm/internal/cmd"
	"github.com/vimtools/vsm/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *errors.ExitCodeError
		if errors.As(err, &exitErr) {
			// The editor already wrote whatever it had to say; just
			// mirror its exit code.
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "vsm: %v\n", err)
		os.Exit(1)
	}
}
