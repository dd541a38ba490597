// Package command wires the benchmark to its command line.
package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/osmike/memobench/internal/bench"
	mylog "github.com/osmike/memobench/internal/log"
)

// InitApp builds the root command. Flag values are resolved from the command
// line, the environment and the YAML file named by ConfigPath.
func InitApp() *cli.Command {
	app := &cli.Command{
		Name:  "memobench",
		Usage: "compare un-memoized and memoized calls to a slow function",
		Flags: NewBenchFlags(ConfigPath()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if lvl := cmd.String("log-level"); lvl != "" {
				if err := mylog.SetLevel(lvl); err != nil {
					return err
				}
			}

			r, err := bench.NewRunner(ConfigFromCommand(cmd), bench.WithOutput(cmd.Root().Writer))
			if err != nil {
				return err
			}
			_, err = r.Run(ctx)
			return err
		},
	}
	return app
}

// ConfigFromCommand maps parsed flags onto a bench.Config. The result is not
// validated.
func ConfigFromCommand(cmd *cli.Command) bench.Config {
	return bench.Config{
		Delay:                      time.Duration(cmd.Int("delay")) * time.Millisecond,
		Tries:                      cmd.Int("tries"),
		Randomizer:                 cmd.Int("randomizer"),
		DisplayFirstAndLastResults: cmd.Int("display-first-and-last-results"),
		Seed:                       uint64(cmd.Int("seed")),
		SingleFlight:               cmd.Bool("single-flight"),
	}
}
