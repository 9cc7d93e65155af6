package mux

import (
	"fmt"
	"os"
	"os/exec"
)

// Detect picks the multiplexer binary for this environment.
// It checks environment variables first, then falls back to looking for
// the screen binary on PATH.
func Detect() (string, error) {
	if os.Getenv("STY") != "" {
		return "screen", nil
	}
	if os.Getenv("TMUX") != "" {
		return "", fmt.Errorf("tmux support is not yet implemented")
	}

	if path, err := exec.LookPath("screen"); err == nil && path != "" {
		return "screen", nil
	}

	return "", fmt.Errorf("no supported terminal multiplexer detected (set $STY or install screen)")
}

// FromName validates a multiplexer name.
func FromName(name string) (string, error) {
	switch name {
	case "screen":
		return name, nil
	case "tmux", "zellij":
		return "", fmt.Errorf("%s support is not yet implemented", name)
	default:
		return "", fmt.Errorf("unknown multiplexer: %q (supported: screen)", name)
	}
}
