package common

import (
	"context"
	"os"
	"os/exec"
)

type RealCommandExecutor struct{}

func (e *RealCommandExecutor) RunCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.Output()
}

// RunWithEnv runs a child process with extra environment variables on top
// of the current environment, wired to the caller's terminal. The child's
// exit status is preserved in the returned error.
func (e *RealCommandExecutor) RunWithEnv(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
