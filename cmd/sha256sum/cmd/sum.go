package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"massnet.org/sha256sum/logging"
)

var sumCmd = &cobra.Command{
	Use:   "sum <file>...",
	Short: "Prints the digests of several files.",
	Long: "Hashes every file concurrently and prints one '<digest>  <file>' line\n" +
		"per file, in argument order.\n",
	Args:          usageArgs(cobra.MinimumNArgs(1)),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSum(os.Stdout, args, config.Workers, config.CacheSize)
	},
}

func runSum(w io.Writer, paths []string, workers, cacheSize int) error {
	b, err := newBatchHasher(workers, cacheSize)
	if err != nil {
		return err
	}
	defer b.Release()

	var failed error
	for _, res := range b.hashFiles(paths) {
		if res.Err != nil {
			logging.CPrint(logging.ERROR, "cannot hash file", logging.LogFormat{"path": res.Path, "err": res.Err})
			if failed == nil {
				failed = res.Err
			}
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", res.Digest, res.Path)
	}
	if failed != nil {
		return errors.WithMessage(failed, "sum")
	}
	return nil
}
