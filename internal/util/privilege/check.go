// Package privilege gates destructive runs on elevated execution, with
// an interactive confirm-to-continue fallback when it is absent.
package privilege

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrNotConfirmed means the run was not elevated and the operator
// declined (or could not be asked) to continue anyway.
var ErrNotConfirmed = errors.New("not running elevated and continuation was not confirmed")

// Check result hooks, replaced in tests.
var (
	isElevated = func() bool { return os.Geteuid() == 0 }
	isTerminal = func() bool { return isatty.IsTerminal(os.Stdin.Fd()) }
	confirm    = askConfirm
)

// Ensure verifies the process runs elevated. When it does not,
// skipPrompt grants continuation outright (the --yes flag); otherwise
// an interactive confirmation is required. A non-interactive,
// non-elevated, non-confirmed run fails before any mutation.
func Ensure(skipPrompt bool) error {
	if isElevated() {
		return nil
	}

	if skipPrompt {
		return nil
	}

	if !isTerminal() {
		return fmt.Errorf("%w: stdin is not a terminal, pass --yes to proceed", ErrNotConfirmed)
	}

	ok, err := confirm()
	if err != nil {
		return fmt.Errorf("confirmation prompt failed: %w", err)
	}
	if !ok {
		return ErrNotConfirmed
	}
	return nil
}

func askConfirm() (bool, error) {
	var proceed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Not running with elevated privileges").
				Description("podcycle deletes live pods. Continue anyway?").
				Affirmative("Continue").
				Negative("Abort").
				Value(&proceed),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return proceed, nil
}
