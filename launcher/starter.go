package launcher

import (
	"fmt"
	"os/exec"
)

// Starter starts an executable without waiting for it.
type Starter interface {
	Start(executable string, args []string) error
}

// ExecStarter starts executables as detached child processes.
type ExecStarter struct{}

// Start spawns the executable and releases it; its exit status is never collected.
func (ExecStarter) Start(executable string, args []string) error {
	cmd := exec.Command(executable, args...) //nolint:gosec // G204: executable comes from the operator's paths file

	err := cmd.Start()
	if err != nil {
		return fmt.Errorf("starting %q: %w", executable, err)
	}

	err = cmd.Process.Release()
	if err != nil {
		return fmt.Errorf("releasing %q: %w", executable, err)
	}

	return nil
}
