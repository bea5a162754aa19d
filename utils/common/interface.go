package common

import "context"

// CommandExecutor abstracts process execution so commands can be tested
// without spawning real children.
type CommandExecutor interface {
	RunCommand(name string, args ...string) ([]byte, error)
	RunWithEnv(ctx context.Context, env []string, name string, args ...string) error
	LookPath(file string) (string, error)
}
