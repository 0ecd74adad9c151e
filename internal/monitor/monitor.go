// Package monitor hands control of the terminal to an external
// interactive monitoring tool after a reset run completes.
package monitor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Tool describes the external monitor binary.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Args are extra arguments passed to the binary.
	Args []string

	// InstallURL provides a URL for installation instructions,
	// shown when the binary is missing.
	InstallURL string
}

// installURLs maps known monitors to their install instructions.
var installURLs = map[string]string{
	"k9s": "https://k9scli.io/topics/install/",
}

// External is a Monitor backed by a subprocess with inherited stdio.
type External struct {
	path string
	args []string
}

// New resolves the monitor binary in PATH. A missing binary is reported
// with an install hint when one is known.
func New(name string, args []string) (*External, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if url, ok := installURLs[name]; ok {
			return nil, fmt.Errorf("monitor %s not found in PATH (install: %s)", name, url)
		}
		return nil, fmt.Errorf("monitor %s not found in PATH", name)
	}

	return &External{path: path, args: args}, nil
}

// Path returns the resolved binary path.
func (e *External) Path() string {
	return e.path
}

// Handoff runs the monitor with the terminal attached and blocks until
// it exits. This is a terminal step: the caller does not resume
// orchestration afterwards.
func (e *External) Handoff(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, e.path, e.args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("monitor %s: %w", e.path, err)
	}
	return nil
}
