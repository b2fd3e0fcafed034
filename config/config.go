// Package config assembles process settings for the evcharge binary.
//
// Precedence, lowest first: built-in defaults, a .env file, environment
// variables, command-line flags. The result is validated before use.
//
// Environment:
//
//	EVCHARGE_ADDR         HTTP listen address           (:8080)
//	EVCHARGE_LOCATIONS    location table path           (Locations.txt)
//	EVCHARGE_WEIGHTS      weight matrix path            (Weights.txt)
//	EVCHARGE_COST_PER_KM  travel cost per distance unit (0.1)
//	EVCHARGE_FREE_LIMIT   free-charge limit in kWh      (25)
//	EVCHARGE_SEED         seed for generated amounts    (0 = time based)
//	EVCHARGE_LOG_FORMAT   text or json                  (text)
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/evcharge/core"
)

// ErrBadValue indicates an environment variable that does not parse.
var ErrBadValue = errors.New("config: bad value")

// DefaultEnvFile is read when Load is given an empty env file path.
const DefaultEnvFile = ".env"

// Config holds every process setting.
type Config struct {
	Addr            string  `validate:"required"`
	LocationsPath   string  `validate:"required"`
	WeightsPath     string  `validate:"required"`
	CostPerDistance float64 `validate:"gte=0"`
	FreeChargeLimit int     `validate:"gte=0"`
	Seed            uint64
	LogFormat       string `validate:"oneof=text json"`

	// Args are the positional arguments left after flag parsing.
	Args []string `validate:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:            ":8080",
		LocationsPath:   "Locations.txt",
		WeightsPath:     "Weights.txt",
		CostPerDistance: 0.1,
		FreeChargeLimit: 25,
		LogFormat:       "text",
	}
}

// Load builds a Config from envFile (DefaultEnvFile when empty; a missing
// file is not an error), the process environment and args.
// Variables already present in the environment win over the file.
func Load(envFile string, args []string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: %s: %w", envFile, err)
	}

	c := Default()
	if err := c.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := c.applyFlags(args); err != nil {
		return Config{}, err
	}
	if err := core.Validate(c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return c, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("EVCHARGE_ADDR"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("EVCHARGE_LOCATIONS"); ok {
		c.LocationsPath = v
	}
	if v, ok := os.LookupEnv("EVCHARGE_WEIGHTS"); ok {
		c.WeightsPath = v
	}
	if v, ok := os.LookupEnv("EVCHARGE_LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := os.LookupEnv("EVCHARGE_COST_PER_KM"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: EVCHARGE_COST_PER_KM=%q: %w", v, ErrBadValue)
		}
		c.CostPerDistance = f
	}
	if v, ok := os.LookupEnv("EVCHARGE_FREE_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: EVCHARGE_FREE_LIMIT=%q: %w", v, ErrBadValue)
		}
		c.FreeChargeLimit = n
	}
	if v, ok := os.LookupEnv("EVCHARGE_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: EVCHARGE_SEED=%q: %w", v, ErrBadValue)
		}
		c.Seed = n
	}

	return nil
}

func (c *Config) applyFlags(args []string) error {
	set := flag.NewFlagSet("evcharge", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	set.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	set.StringVar(&c.LocationsPath, "locations", c.LocationsPath, "location table file")
	set.StringVar(&c.WeightsPath, "weights", c.WeightsPath, "weight matrix file")
	set.Float64Var(&c.CostPerDistance, "cost-per-km", c.CostPerDistance, "travel cost per distance unit")
	set.IntVar(&c.FreeChargeLimit, "free-limit", c.FreeChargeLimit, "largest amount a free station may serve")
	set.Uint64Var(&c.Seed, "seed", c.Seed, "seed for generated charging amounts (0 = time based)")
	set.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log output: text or json")
	if err := set.Parse(args); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Args = set.Args()

	return nil
}
