// Package shell provides the external command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/depcollect/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	// baseEnv returns the environment overrides are applied to.
	baseEnv func() []string
}

// NewRunner creates a Runner that inherits the process environment.
func NewRunner() *Runner {
	return &Runner{baseEnv: os.Environ}
}

// NewCleanRunner creates a Runner that starts every command from an empty environment.
func NewCleanRunner() *Runner {
	return &Runner{baseEnv: func() []string { return nil }}
}

// Run executes the command and captures its combined output.
// The environment is the base environment with env applied on top.
// The executable is looked up in the resolved environment's PATH.
func (r *Runner) Run(ctx context.Context, name string, args []string, env []string) (ports.CommandResult, error) {
	cmdEnv := resolveEnvironment(r.baseEnv(), env)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		lp, err := lookPath(name, cmdEnv)
		if err != nil {
			return ports.CommandResult{ExitCode: -1}, zerr.With(zerr.Wrap(err, "command not found"), "command", name)
		}
		executable = lp
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // command comes from configuration
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Env = cmdEnv

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	result := ports.CommandResult{Output: out.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		return result, zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "command", name), "exit_code", result.ExitCode)
	}

	return result, nil
}

// resolveEnvironment applies overrides on top of the base environment.
// Later entries win; the order of first appearance is kept.
func resolveEnvironment(base, overrides []string) []string {
	index := make(map[string]int)
	result := make([]string, 0, len(base)+len(overrides))
	for _, entry := range append(append([]string{}, base...), overrides...) {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, exists := index[k]; exists {
			result[i] = entry
			continue
		}
		index[k] = len(result)
		result = append(result, entry)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
