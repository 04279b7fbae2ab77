package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultRecords     = 100000
	DefaultMaxClientID = 5000
	DefaultMaxAmount   = 1000
)

type Config struct {
	Generator Generator `mapstructure:"generator"`
}

type Generator struct {
	Records     int64  `mapstructure:"records"`
	MaxClientID int64  `mapstructure:"max_client_id"`
	MaxAmount   int64  `mapstructure:"max_amount"`
	Seed        uint64 `mapstructure:"seed"`
}

// Seeded reports whether a deterministic random source was requested.
// Seed 0 means "draw a fresh unseeded source".
func (g Generator) Seeded() bool {
	return g.Seed != 0
}

func Load() (*Config, error) {
	return LoadWithArgs(os.Args[1:])
}

// LoadWithArgs resolves configuration with flag > config file > default
// precedence. The config file is optional; a missing one is not an error.
func LoadWithArgs(args []string) (cfg *Config, err error) {
	flags := pflag.NewFlagSet("txdatagen", pflag.ContinueOnError)
	flags.Int64("records", DefaultRecords, "number of data lines to emit")
	flags.Int64("max-client-id", DefaultMaxClientID, "inclusive upper bound for client identifiers")
	flags.Int64("max-amount", DefaultMaxAmount, "inclusive upper bound for sampled amounts")
	flags.Uint64("seed", 0, "random seed; 0 draws an unseeded source")

	if err = flags.Parse(args); err != nil {
		return cfg, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath("./config")

	if err = v.BindPFlag("generator.records", flags.Lookup("records")); err != nil {
		return cfg, err
	}
	if err = v.BindPFlag("generator.max_client_id", flags.Lookup("max-client-id")); err != nil {
		return cfg, err
	}
	if err = v.BindPFlag("generator.max_amount", flags.Lookup("max-amount")); err != nil {
		return cfg, err
	}
	if err = v.BindPFlag("generator.seed", flags.Lookup("seed")); err != nil {
		return cfg, err
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
