package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	codes "massnet.org/sha256sum/errors"
	"massnet.org/sha256sum/testutil"
)

func TestUsageArgs(t *testing.T) {
	check := usageArgs(cobra.RangeArgs(1, 2))
	assert.NoError(t, check(RootCmd, []string{"abc"}))
	assert.NoError(t, check(RootCmd, []string{"abc", abcHash}))

	err := check(RootCmd, nil)
	assert.True(t, testutil.SameCause(err, codes.ErrUsage))
	assert.Equal(t, codes.ErrCodeUsage, codes.CodeOf(err))
	assert.True(t, testutil.SameCause(check(RootCmd, []string{"a", "b", "c"}), codes.ErrUsage))
}

func TestLoadConfig(t *testing.T) {
	defer viper.Reset()

	viper.Reset()
	cfg := new(Config)
	loadConfig(cfg)
	assert.Equal(t, defaultLogDir, cfg.LogDir)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.Equal(t, defaultWorkers, cfg.Workers)
	assert.False(t, cfg.NoOutput)

	viper.Set("log_level", "debug")
	viper.Set("workers", 3)
	viper.Set("cache_size", -5)
	viper.Set("no_output", true)
	loadConfig(cfg)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, defaultCacheSize, cfg.CacheSize)
	assert.True(t, cfg.NoOutput)
}

func TestSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["sum"])
	assert.True(t, names["check"])
	assert.True(t, names["version"])
}
