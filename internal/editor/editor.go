// Package editor opens a file in the user's editor with the cursor placed
// at a given position.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jnew-dev/jnew/internal/config"
)

// Editor returns the editor command line to use: options.editor, then
// $VISUAL, then $EDITOR, then notepad on Windows or vi elsewhere.
func Editor(cfg *config.Config) string {
	if cfg != nil && strings.TrimSpace(cfg.Options.Editor) != "" {
		return strings.TrimSpace(cfg.Options.Editor)
	}
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// Args returns the arguments that open path at the 1-based line and column
// for the editor named by bin.
func Args(bin, path string, line, col int) []string {
	name := strings.TrimSuffix(strings.ToLower(filepath.Base(bin)), ".exe")

	switch name {
	case "vim", "nvim", "vi", "gvim", "mvim":
		return []string{fmt.Sprintf("+call cursor(%d,%d)", line, col), path}
	case "emacs", "emacsclient", "nano":
		return []string{fmt.Sprintf("+%d:%d", line, col), path}
	case "code", "code-insiders", "codium":
		return []string{"--goto", fmt.Sprintf("%s:%d:%d", path, line, col)}
	case "subl", "sublime_text":
		return []string{fmt.Sprintf("%s:%d:%d", path, line, col)}
	case "notepad":
		return []string{path}
	default:
		return []string{fmt.Sprintf("+%d", line), path}
	}
}

// Command builds the editor invocation for path. line and col are the
// zero-based cursor from rendering.
func Command(ctx context.Context, cfg *config.Config, path string, line, col int) (*exec.Cmd, error) {
	fields := strings.Fields(Editor(cfg))
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor configured")
	}

	args := append(fields[1:], Args(fields[0], path, line+1, col+1)...)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// Open launches the editor on path and waits for it to exit. It does
// nothing when options.auto_open is off.
func Open(ctx context.Context, cfg *config.Config, path string, line, col int) error {
	if cfg != nil && !cfg.Options.AutoOpen {
		return nil
	}

	cmd, err := Command(ctx, cfg, path, line, col)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", cmd.Path, err)
	}
	return nil
}
