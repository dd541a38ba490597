package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/osmike/memobench/internal/bench"
)

// isolate points the YAML source at a file that does not exist.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "absent.yaml"))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := InitApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), append([]string{"memobench"}, args...))
	return out.String(), err
}

func countCalls(out, label string) int {
	return strings.Count(out, "["+label+"] Time for call ")
}

func TestRunEndToEnd(t *testing.T) {
	isolate(t)

	out, err := run(t, "--delay=0", "--tries=5", "--randomizer=10", "--display-first-and-last-results=2")

	require.NoError(t, err)
	assert.Equal(t, 4, countCalls(out, bench.LabelNoMemo))
	assert.Equal(t, 4, countCalls(out, bench.LabelMemo))
	assert.Equal(t, 2, strings.Count(out, "Average time"))
	assert.Equal(t, 2, strings.Count(out, "Total time"))
}

func TestInvalidFlagsFailBeforeAnyTrial(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{
		{"--delay=-1"},
		{"--tries=0"},
		{"--randomizer=0"},
		{"-d=-1"},
	} {
		t.Run(args[0], func(t *testing.T) {
			out, err := run(t, args...)

			assert.ErrorIs(t, err, bench.ErrInvalidConfig)
			assert.Empty(t, out)
		})
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("MEMOBENCH_TRIES", "7")
	t.Setenv("MEMOBENCH_DISPLAY", "1")

	out, err := run(t)

	require.NoError(t, err)
	assert.Contains(t, out, "[NO-MEMO] Time for call 7:")
	assert.Equal(t, 2, countCalls(out, bench.LabelNoMemo))
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("MEMOBENCH_TRIES", "7")

	out, err := run(t, "--tries=3", "-d=0")

	require.NoError(t, err)
	assert.Zero(t, countCalls(out, bench.LabelNoMemo))
	assert.Contains(t, out, "[MEMO] SUMMARY")
}

func TestYAMLConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memobench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tries: 6\nrandomizer: 3\ndisplayFirstAndLastResults: 1\n"), 0o600))
	t.Setenv(EnvConfig, path)

	out, err := run(t)

	require.NoError(t, err)
	assert.Contains(t, out, "[MEMO] Time for call 6:")
	assert.NotContains(t, out, "Time for call 7:")
	assert.Equal(t, 2, countCalls(out, bench.LabelMemo))
}

func TestConfigFromCommand(t *testing.T) {
	isolate(t)

	var got bench.Config
	app := InitApp()
	app.Action = func(_ context.Context, cmd *cli.Command) error {
		got = ConfigFromCommand(cmd)
		return nil
	}
	err := app.Run(context.Background(), []string{
		"memobench", "--delay=15", "-n=20", "-r=4", "-d=3", "--seed=99", "--single-flight",
	})

	require.NoError(t, err)
	assert.Equal(t, bench.Config{
		Delay:                      15 * time.Millisecond,
		Tries:                      20,
		Randomizer:                 4,
		DisplayFirstAndLastResults: 3,
		Seed:                       99,
		SingleFlight:               true,
	}, got)
}

func TestLogLevelValidator(t *testing.T) {
	assert.NoError(t, LogLevelValidator("DEBUG"))
	assert.Error(t, LogLevelValidator("verbose"))

	isolate(t)
	_, err := run(t, "--log-level=verbose", "--tries=1")
	assert.Error(t, err)
}

func TestNegativeSeedIsRejected(t *testing.T) {
	assert.NoError(t, NonNegativeValidator(0))
	assert.NoError(t, NonNegativeValidator(42))
	assert.Error(t, NonNegativeValidator(-5))

	isolate(t)
	out, err := run(t, "--seed=-5", "--tries=1")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestConfigPath(t *testing.T) {
	t.Setenv(EnvConfig, "")
	assert.Equal(t, defaultConfigFile, ConfigPath())

	t.Setenv(EnvConfig, "/etc/memobench.yaml")
	assert.Equal(t, "/etc/memobench.yaml", ConfigPath())
}
