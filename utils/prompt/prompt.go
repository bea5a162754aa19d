package promptutils

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
)

type Prompter interface {
	PromptForSelection(label string, items []string) (string, error)
}

type RealPrompter struct{}

var ErrInterrupted = errors.New("operation interrupted")

// stderrWriter keeps the interactive UI off stdout, which is reserved for
// output a wrapper may eval.
type stderrWriter struct{}

func (stderrWriter) Write(p []byte) (int, error) { return os.Stderr.Write(p) }
func (stderrWriter) Close() error                { return nil }

func (p *RealPrompter) HandlePromptError(err error) error {
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			fmt.Fprintln(os.Stderr, "\nReceived termination signal. Exiting.")
			return ErrInterrupted
		}
		return fmt.Errorf("failed to select an option: %w", err)
	}
	return nil
}

func (p *RealPrompter) PromptForSelection(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label:  label,
		Items:  items,
		Stdout: stderrWriter{},
	}
	_, selected, err := prompt.Run()

	err = p.HandlePromptError(err)
	if err != nil {
		if errors.Is(err, ErrInterrupted) {
			return "", ErrInterrupted
		}
		return "", err
	}

	return selected, nil
}

func NewPrompt() Prompter {
	return &RealPrompter{}
}
