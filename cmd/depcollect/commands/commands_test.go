package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depcollect/cmd/depcollect/commands"
	"go.trai.ch/depcollect/internal/build"
)

type mockApp struct {
	collectFunc func(ctx context.Context, dest string, inputs []string) error
	verifyFunc  func(ctx context.Context, dest string) error
}

func (m *mockApp) Collect(ctx context.Context, dest string, inputs []string) error {
	if m.collectFunc != nil {
		return m.collectFunc(ctx, dest, inputs)
	}
	return nil
}

func (m *mockApp) Verify(ctx context.Context, dest string) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, dest)
	}
	return nil
}

func TestCommands_Collect(t *testing.T) {
	t.Run("passes destination and inputs in order", func(t *testing.T) {
		var gotDest string
		var gotInputs []string

		mock := &mockApp{
			collectFunc: func(_ context.Context, dest string, inputs []string) error {
				gotDest = dest
				gotInputs = inputs
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"/tmp/out", "/usr/bin/app", "/usr/lib/plugins"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/tmp/out", gotDest)
		assert.Equal(t, []string{"/usr/bin/app", "/usr/lib/plugins"}, gotInputs)
	})

	t.Run("fails fast with too few arguments", func(t *testing.T) {
		mock := &mockApp{
			collectFunc: func(_ context.Context, _ string, _ []string) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
		cli.SetOutput(stdout, stderr)
		cli.SetArgs([]string{"/tmp/out"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires at least 2 arg(s)")
		assert.Contains(t, stderr.String(), "Usage:")
		assert.Empty(t, stdout.String())
	})

	t.Run("destination named like a subcommand", func(t *testing.T) {
		var gotDest string
		mock := &mockApp{
			collectFunc: func(_ context.Context, dest string, _ []string) error {
				gotDest = dest
				return nil
			},
			verifyFunc: func(_ context.Context, _ string) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"./verify", "/bin/ls"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "./verify", gotDest)
	})

	t.Run("returns error on collect failure", func(t *testing.T) {
		mock := &mockApp{
			collectFunc: func(_ context.Context, _ string, _ []string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"/tmp/out", "/usr/bin/app"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Verify(t *testing.T) {
	var gotDest string
	mock := &mockApp{
		verifyFunc: func(_ context.Context, dest string) error {
			gotDest = dest
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"verify", "/tmp/out"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/tmp/out", gotDest)
}

func TestCommands_Version(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), "depcollect version "+build.Version)
	})

	t.Run("flag", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"--version"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), build.Version)
		assert.Contains(t, buf.String(), build.Commit)
	})
}
