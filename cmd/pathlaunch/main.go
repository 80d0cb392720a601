// Command pathlaunch starts the newest installed version of an application
// whose install path is described in a paths file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/pathlaunch/launcher"
)

const (
	exitUser  = 1
	exitError = 2
)

func main() {
	err := newRootCommand(os.Stdout, os.Stderr).Execute()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode maps missing versions and executables, which the launcher has
// already reported, to exitUser. Any other failure is written to stderr and
// maps to exitError.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, launcher.ErrNoVersions), errors.Is(err, launcher.ErrExecutableNotFound):
		return exitUser
	default:
		_, _ = fmt.Fprintf(stderr, "pathlaunch: %v\n", err)

		return exitError
	}
}
