// Package host holds the flag, logger and settings bootstrap shared by the blockfall commands.
package host

import (
	"flag"
	"math/rand/v2"

	"github.com/plus3/blockfall/config"
	"go.uber.org/zap"
)

// Flags are the options every host command accepts.
type Flags struct {
	ConfigPath string
	Seed       int64
	JSONLog    bool
	Verbose    bool
}

// RegisterFlags adds the common flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "path to a game YAML file (default: built-in settings)")
	fs.Int64Var(&f.Seed, "seed", -1, "random seed; negative uses the config file's seed or a random one")
	fs.BoolVar(&f.JSONLog, "json-log", false, "log JSON lines instead of console output")
	fs.BoolVar(&f.Verbose, "v", false, "log engine events at debug level")
	return f
}

// Logger builds the process logger.
func (f *Flags) Logger() (*zap.Logger, error) {
	var cfg zap.Config
	if f.JSONLog {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	if f.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// Settings loads the config file, if any, and applies the seed flag. When neither gives a seed a
// random one is drawn so every run differs.
func (f *Flags) Settings() (config.Settings, error) {
	settings := config.Default()
	if f.ConfigPath != "" {
		var err error
		settings, err = config.Load(f.ConfigPath)
		if err != nil {
			return config.Settings{}, err
		}
	}

	switch {
	case f.Seed >= 0:
		settings.Field.Seed = uint64(f.Seed)
		settings.SeedSet = true
	case !settings.SeedSet:
		settings.Field.Seed = rand.Uint64()
	}
	return settings, nil
}
