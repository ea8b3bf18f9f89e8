// Package cliconfig loads the optional TOML configuration for mmh3sum.
package cliconfig

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/hashbridge/mmh3/errors"
)

// Backend name "auto" defers to the facade's build-time default.
const BackendAuto = "auto"

type Config struct {
	// Digest variant: "32", "64" or "128".
	Variant string `toml:"variant"`
	// Hash seed, 0..2^32-1.
	Seed int64 `toml:"seed"`
	// Backend: "auto", "native" or "cffi".
	Backend string `toml:"backend"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Variant: "128",
		Seed:    0,
		Backend: BackendAuto,
	}
}

// Load reads path, fills in defaults for omitted keys and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	switch cfg.Variant {
	case "32", "64", "128":
	default:
		return errors.Newf("invalid variant %q (want 32, 64 or 128)", cfg.Variant)
	}
	if cfg.Seed < 0 || cfg.Seed > math.MaxUint32 {
		return errors.Newf("seed %d out of range (want 0..%d)", cfg.Seed, math.MaxUint32)
	}
	switch cfg.Backend {
	case BackendAuto, "native", "cffi":
	default:
		return errors.Newf("invalid backend %q (want auto, native or cffi)", cfg.Backend)
	}
	return nil
}
