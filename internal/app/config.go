package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vidslide/internal/feed"
	"vidslide/internal/puzzle"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// envPrefix namespaces the environment variables read by NewConfig.
const envPrefix = "VIDSLIDE_"

// Config represents the command-line parameters for the application.
type Config struct {
	Source      string
	Rows        int
	Scale       int
	TPS         int
	Seed        int64
	ShuffleSeed int64
	Shuffle     bool
	Strict      bool
	Loop        bool
	Debug       bool
	SimW        int
	SimH        int

	envErrs []error
}

// NewConfig returns a Config populated with defaults, overridden by any
// VIDSLIDE_* environment variables.
func NewConfig() *Config {
	c := defaultConfig()
	c.applyEnv(os.LookupEnv)
	return c
}

func defaultConfig() *Config {
	return &Config{Source: "life", Rows: 3, Scale: 3, TPS: 15, Seed: 42, Loop: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "sim name (life, briansbrain, elementary) or image/GIF path")
	fs.IntVar(&c.Rows, "rows", c.Rows, "tiles per row and column")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one sim cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "sim steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the sim")
	fs.Int64Var(&c.ShuffleSeed, "shuffle-seed", c.ShuffleSeed, "seed for the tile shuffle (0 = random per session)")
	fs.BoolVar(&c.Shuffle, "shuffle", c.Shuffle, "shuffle tiles at start instead of starting solved")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "panic on board invariant violations")
	fs.BoolVar(&c.Loop, "loop", c.Loop, "loop GIF sources")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.IntVar(&c.SimW, "sim-w", c.SimW, "sim grid width in cells (0 = sim default)")
	fs.IntVar(&c.SimH, "sim-h", c.SimH, "sim grid height in cells (0 = sim default)")
}

// Validate rejects configurations the puzzle cannot start with, including
// environment overrides that failed to parse.
func (c *Config) Validate() error {
	errs := append([]error(nil), c.envErrs...)
	if strings.TrimSpace(c.Source) == "" {
		errs = append(errs, errors.New("source must not be empty"))
	}
	if c.Rows < 2 {
		errs = append(errs, fmt.Errorf("rows must be at least 2, got %d", c.Rows))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.TPS < 1 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.SimW < 0 || c.SimH < 0 {
		errs = append(errs, fmt.Errorf("sim size must not be negative, got %dx%d", c.SimW, c.SimH))
	}
	return errors.Join(errs...)
}

// FeedOptions converts the configuration for feed.Open.
func (c *Config) FeedOptions(log logrus.FieldLogger) feed.Options {
	sim := map[string]string{}
	if c.SimW > 0 {
		sim["w"] = strconv.Itoa(c.SimW)
	}
	if c.SimH > 0 {
		sim["h"] = strconv.Itoa(c.SimH)
	}
	return feed.Options{
		Scale: c.Scale,
		TPS:   c.TPS,
		Seed:  c.Seed,
		Loop:  c.Loop,
		Sim:   sim,
		Log:   log,
	}
}

// PuzzleOptions converts the configuration for puzzle.NewGame.
func (c *Config) PuzzleOptions(log logrus.FieldLogger) []puzzle.Option {
	opts := []puzzle.Option{puzzle.WithLogger(log)}
	if c.ShuffleSeed != 0 {
		opts = append(opts, puzzle.WithSeed(c.ShuffleSeed))
	}
	if c.Shuffle {
		opts = append(opts, puzzle.WithShuffleOnAttach())
	}
	if c.Strict {
		opts = append(opts, puzzle.WithStrictInvariants())
	}
	return opts
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	parse := func(key string, set func(string) error) {
		v, ok := lookup(envPrefix + key)
		if !ok {
			return
		}
		if err := set(v); err != nil {
			c.envErrs = append(c.envErrs, fmt.Errorf("%s%s=%q: %w", envPrefix, key, v, err))
		}
	}
	str := func(key string, dst *string) {
		parse(key, func(v string) error {
			if v != "" {
				*dst = v
			}
			return nil
		})
	}
	num := func(key string, dst *int) {
		parse(key, func(v string) error {
			n, err := strconv.Atoi(v)
			if err == nil {
				*dst = n
			}
			return err
		})
	}
	num64 := func(key string, dst *int64) {
		parse(key, func(v string) error {
			n, err := strconv.ParseInt(v, 10, 64)
			if err == nil {
				*dst = n
			}
			return err
		})
	}
	boolean := func(key string, dst *bool) {
		parse(key, func(v string) error {
			b, err := strconv.ParseBool(v)
			if err == nil {
				*dst = b
			}
			return err
		})
	}

	str("SOURCE", &c.Source)
	num("ROWS", &c.Rows)
	num("SCALE", &c.Scale)
	num("TPS", &c.TPS)
	num("SIM_W", &c.SimW)
	num("SIM_H", &c.SimH)
	num64("SEED", &c.Seed)
	num64("SHUFFLE_SEED", &c.ShuffleSeed)
	boolean("SHUFFLE", &c.Shuffle)
	boolean("STRICT", &c.Strict)
	boolean("LOOP", &c.Loop)
	boolean("DEBUG", &c.Debug)
}

// LoadEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set. Missing files are not an
// error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
