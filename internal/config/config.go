// Package config holds the configuration of the hashmap-bench program.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment prefix used by viper, e.g. HASHMAP_BENCH_KEYS.
const EnvPrefix = "hashmap"

const (
	HasherMaphash = "maphash"
	HasherXXHash  = "xxhash"
	HasherXXH3    = "xxh3"
)

type Config struct {
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
	Bench BenchConfig `mapstructure:"bench" yaml:"bench"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is console or json.
	Format string `mapstructure:"format" yaml:"format"`

	// File rotates logs through lumberjack when set, otherwise logs go to stderr.
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"maxSize" yaml:"maxSize"`
	MaxAge     int    `mapstructure:"maxAge" yaml:"maxAge"`
	MaxBackups int    `mapstructure:"maxBackups" yaml:"maxBackups"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

type BenchConfig struct {
	Keys       int     `mapstructure:"keys" yaml:"keys"`
	KeySize    int     `mapstructure:"keySize" yaml:"keySize"`
	Lookups    int     `mapstructure:"lookups" yaml:"lookups"`
	EraseRatio float64 `mapstructure:"eraseRatio" yaml:"eraseRatio"`
	Capacity   int     `mapstructure:"capacity" yaml:"capacity"`
	Hasher     string  `mapstructure:"hasher" yaml:"hasher"`
	Seed       int64   `mapstructure:"seed" yaml:"seed"`

	// Listen serves pprof and prometheus metrics and repeats the workload until interrupted.
	Listen string `mapstructure:"listen" yaml:"listen"`
}

// New returns the default config.
func New() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 3,
		},
		Bench: BenchConfig{
			Keys:       65536,
			KeySize:    16,
			Lookups:    1 << 20,
			EraseRatio: 0.25,
			Capacity:   8,
			Hasher:     HasherMaphash,
			Seed:       1,
		},
	}
}

// Validate checks the config values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return errors.Errorf("invalid log format %q", c.Log.Format)
	}

	if c.Bench.Keys <= 0 {
		return errors.New("bench keys must be positive")
	}
	if c.Bench.KeySize <= 0 {
		return errors.New("bench key size must be positive")
	}
	if c.Bench.Lookups < 0 {
		return errors.New("bench lookups must not be negative")
	}
	if c.Bench.EraseRatio < 0 || c.Bench.EraseRatio > 1 {
		return errors.Errorf("bench erase ratio %v out of [0, 1]", c.Bench.EraseRatio)
	}
	if c.Bench.Capacity <= 0 {
		return errors.New("bench capacity must be positive")
	}
	switch c.Bench.Hasher {
	case HasherMaphash, HasherXXHash, HasherXXH3:
	default:
		return errors.Errorf("unknown hasher %q", c.Bench.Hasher)
	}
	return nil
}

// Load reads the optional config file and environment into a copy of the defaults.
func Load(v *viper.Viper, file string) (*Config, error) {
	cfg := New()

	setDefaults(v, cfg)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// setDefaults registers every key so that environment variables are seen by Unmarshal.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.maxSize", cfg.Log.MaxSize)
	v.SetDefault("log.maxAge", cfg.Log.MaxAge)
	v.SetDefault("log.maxBackups", cfg.Log.MaxBackups)
	v.SetDefault("log.compress", cfg.Log.Compress)

	v.SetDefault("bench.keys", cfg.Bench.Keys)
	v.SetDefault("bench.keySize", cfg.Bench.KeySize)
	v.SetDefault("bench.lookups", cfg.Bench.Lookups)
	v.SetDefault("bench.eraseRatio", cfg.Bench.EraseRatio)
	v.SetDefault("bench.capacity", cfg.Bench.Capacity)
	v.SetDefault("bench.hasher", cfg.Bench.Hasher)
	v.SetDefault("bench.seed", cfg.Bench.Seed)
	v.SetDefault("bench.listen", cfg.Bench.Listen)
}
