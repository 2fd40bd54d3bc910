package cmd

import (
	"runtime"

	"github.com/spf13/viper"
	"massnet.org/sha256sum/logging"
	"massnet.org/sha256sum/version"
)

const (
	defaultLogDir      = "sha256sum-logs"
	defaultLogFilename = "sha256sum"
	defaultLogLevel    = "info"
	defaultCacheSize   = 1024
	envPrefix          = "sha256sum"
	outputSuffix       = ".SHA256.txt"
)

var defaultWorkers = runtime.NumCPU()

var (
	flagLogDir      string
	flagLogLevel    string
	flagWorkers     int
	flagCacheSize   int
	flagString      bool
	flagNoOutput    bool
	cfgFile         string
	usingConfigFile bool
	config          = new(Config)
)

type Config struct {
	LogDir    string `json:"log_dir"`
	LogLevel  string `json:"log_level"`
	Workers   int    `json:"workers"`
	CacheSize int    `json:"cache_size"`
	NoOutput  bool   `json:"no_output"`
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName(".sha256sum")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		usingConfigFile = true
	}

	loadConfig(config)
}

// loadConfig copies the merged viper settings into cfg, falling back to
// defaults for unset or invalid values.
func loadConfig(cfg *Config) {
	cfg.LogDir = viper.GetString("log_dir")
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogLevel = viper.GetString("log_level")
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	cfg.Workers = viper.GetInt("workers")
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	cfg.CacheSize = viper.GetInt("cache_size")
	if cfg.CacheSize < 0 {
		cfg.CacheSize = defaultCacheSize
	}
	cfg.NoOutput = viper.GetBool("no_output")
}

// initLogger initializes logging module by config.
func initLogger() {
	if err := logging.Init(config.LogDir, defaultLogFilename, config.LogLevel, 1, false); err != nil {
		logging.CPrint(logging.WARN, "file logging disabled", logging.LogFormat{"dir": config.LogDir, "err": err})
	}
}

// logBasicInfo logs the basic info on initializing.
func logBasicInfo() {
	logging.VPrint(logging.INFO, "sha256sum started", logging.LogFormat{
		"version":     version.GetVersion(),
		"config_file": usingConfigFile,
		"workers":     config.Workers,
	})
}
