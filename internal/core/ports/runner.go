package ports

import "context"

// CommandResult holds the outcome of an external command.
type CommandResult struct {
	// Output is the combined stdout and stderr of the command.
	Output   []byte
	ExitCode int
}

// CommandRunner runs external commands to completion.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes name with args. env holds "KEY=VALUE" overrides applied on top of the base environment.
	// A non-zero exit is returned as an error together with the captured result.
	Run(ctx context.Context, name string, args []string, env []string) (CommandResult, error)
}
