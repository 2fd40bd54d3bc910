package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	codes "massnet.org/sha256sum/errors"
	"massnet.org/sha256sum/logging"
)

// RootCmd hashes a file, or the argument itself when it names no file.
var RootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]) + " <file|string> [reference_hash]",
	Short: "SHA-256 message digest generator",
	Long: "Computes the SHA-256 digest of a file, or of the given string when it\n" +
		"does not name a file, and optionally checks it against a reference.\n" +
		"\nArguments:\n" +
		"  <file|string>      path of the file to hash, or a literal string.\n" +
		"  [reference_hash]   optional, 64 hex characters.\n",
	Args:          usageArgs(cobra.RangeArgs(1, 2)),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var reference string
		if len(args) > 1 {
			reference = args[1]
		}
		return runDigest(os.Stdout, args[0], reference, digestOptions{
			forceString: flagString,
			writeOutput: !config.NoOutput,
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logging.CPrint(logging.ERROR, "fail on RootCmd.Execute", logging.LogFormat{"err": err})
		os.Exit(codes.CodeOf(err))
	}
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.Wrap(codes.ErrUsage, err.Error())
		}
		return nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)
	cobra.OnInitialize(logBasicInfo)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.sha256sum.json)")
	RootCmd.PersistentFlags().StringVar(&flagLogDir, "log_dir", defaultLogDir, "directory for log files")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", defaultLogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", defaultWorkers, "number of files hashed concurrently by sum and check")
	RootCmd.PersistentFlags().IntVar(&flagCacheSize, "cache_size", defaultCacheSize, "number of file digests remembered by sum and check")

	viper.BindPFlag("log_dir", RootCmd.PersistentFlags().Lookup("log_dir"))
	viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log_level"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("cache_size", RootCmd.PersistentFlags().Lookup("cache_size"))

	RootCmd.Flags().BoolVarP(&flagString, "string", "s", false, "hash the argument as a string even if it names a file")
	RootCmd.Flags().BoolVarP(&flagNoOutput, "no-output", "n", false, "do not write the report to <file>"+outputSuffix)
	viper.BindPFlag("no_output", RootCmd.Flags().Lookup("no-output"))

	RootCmd.AddCommand(sumCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(versionCmd)
}
