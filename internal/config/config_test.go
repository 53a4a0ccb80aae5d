package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, New().Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"level", func(c *Config) { c.Log.Level = "trace" }},
		{"format", func(c *Config) { c.Log.Format = "xml" }},
		{"keys", func(c *Config) { c.Bench.Keys = 0 }},
		{"key size", func(c *Config) { c.Bench.KeySize = -1 }},
		{"lookups", func(c *Config) { c.Bench.Lookups = -1 }},
		{"erase ratio", func(c *Config) { c.Bench.EraseRatio = 1.5 }},
		{"capacity", func(c *Config) { c.Bench.Capacity = 0 }},
		{"hasher", func(c *Config) { c.Bench.Hasher = "md5" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := New()
			c.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFile(t *testing.T) {
	want := New()
	want.Log.Format = "json"
	want.Bench.Keys = 1000
	want.Bench.Hasher = HasherXXH3
	want.Bench.EraseRatio = 0.5

	data, err := yaml.Marshal(want)
	require.NoError(t, err)
	file := filepath.Join(t.TempDir(), "hashmap.yaml")
	require.NoError(t, os.WriteFile(file, data, 0o644))

	got, err := Load(viper.New(), file)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HASHMAP_BENCH_KEYS", "42")
	t.Setenv("HASHMAP_BENCH_HASHER", "xxhash")

	got, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Bench.Keys)
	assert.Equal(t, HasherXXHash, got.Bench.Hasher)
	assert.Equal(t, New().Log, got.Log)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("HASHMAP_BENCH_HASHER", "md5")
	_, err = Load(viper.New(), "")
	assert.ErrorContains(t, err, "unknown hasher")
}
