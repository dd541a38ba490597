package command

import (
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	mylog "github.com/osmike/memobench/internal/log"
)

// EnvConfig names the environment variable pointing at the YAML config file.
const EnvConfig = "MEMOBENCH_CONFIG"

const defaultConfigFile = "memobench.yaml"

// ConfigPath returns the YAML file flags fall back to. A missing file is
// not an error; its keys are simply never found.
func ConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return defaultConfigFile
}

// sources chains an env var and a top-level key of the YAML file at path.
func sources(env, key, path string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar(env),
		yaml.YAML(key, altsrc.StringSourcer(path)),
	)
}

// NewBenchFlags builds the benchmark flags. Precedence is command line, then
// environment, then the YAML file at path, then the default.
func NewBenchFlags(path string) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "delay",
			Usage:   "artificial latency of every call, in milliseconds",
			Sources: sources("MEMOBENCH_DELAY", "delay", path),
			Value:   0,
		},
		&cli.IntFlag{
			Name:    "tries",
			Aliases: []string{"n"},
			Usage:   "number of trials per pass",
			Sources: sources("MEMOBENCH_TRIES", "tries", path),
			Value:   1000,
		},
		&cli.IntFlag{
			Name:    "randomizer",
			Aliases: []string{"r"},
			Usage:   "upper bound (inclusive) of the random operands",
			Sources: sources("MEMOBENCH_RANDOMIZER", "randomizer", path),
			Value:   10,
		},
		&cli.IntFlag{
			Name:    "display-first-and-last-results",
			Aliases: []string{"d"},
			Usage:   "number of leading and trailing calls to print individually",
			Sources: sources("MEMOBENCH_DISPLAY", "displayFirstAndLastResults", path),
			Value:   10,
		},
		&cli.IntFlag{
			Name:    "seed",
			Usage:   "seed for the operand generator, 0 seeds from the clock",
			Sources: sources("MEMOBENCH_SEED", "seed", path),
			Value:   0,
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "single-flight",
			Usage:       "share one execution between overlapping memoized calls",
			Sources:     sources("MEMOBENCH_SINGLE_FLIGHT", "singleFlight", path),
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, warn, error), overrides $" + mylog.EnvLevel,
			Validator: func(value string) error {
				return FlagValidators(value, LogLevelValidator)
			},
		},
	}
}
