package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"massnet.org/sha256sum/crypto/sha256"
	codes "massnet.org/sha256sum/errors"
	"massnet.org/sha256sum/logging"
)

var errMalformedLine = errors.New("malformed checksum line")

var checkCmd = &cobra.Command{
	Use:   "check <list>",
	Short: "Verifies files against a checksum list.",
	Long: "Reads '<digest>  <file>' lines, as printed by sum, and checks every\n" +
		"listed file.\n" +
		"\nArguments:\n" +
		"  <list>   checksum list file, '-' reads standard input.\n",
	Args:          usageArgs(cobra.ExactArgs(1)),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open checksum list")
			}
			defer f.Close()
			r = f
		}
		return runCheck(os.Stdout, r, config.Workers, config.CacheSize)
	},
}

type checkEntry struct {
	Want sha256.Digest
	Path string
}

// parseChecksumLine parses '<64 hex> <space|*><path>'.
func parseChecksumLine(line string) (checkEntry, error) {
	const hexLen = 2 * sha256.Size
	if len(line) < hexLen+3 || line[hexLen] != ' ' || (line[hexLen+1] != ' ' && line[hexLen+1] != '*') {
		return checkEntry{}, errMalformedLine
	}
	want, err := sha256.DecodeString(line[:hexLen])
	if err != nil {
		return checkEntry{}, errors.Wrap(errMalformedLine, err.Error())
	}
	return checkEntry{Want: want, Path: line[hexLen+2:]}, nil
}

func readChecksumList(r io.Reader) ([]checkEntry, int, error) {
	var entries []checkEntry
	var malformed int
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := parseChecksumLine(line)
		if err != nil {
			logging.CPrint(logging.WARN, "skip checksum line", logging.LogFormat{"line": n, "err": err})
			malformed++
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "read checksum list")
	}
	return entries, malformed, nil
}

func runCheck(w io.Writer, list io.Reader, workers, cacheSize int) error {
	entries, malformed, err := readChecksumList(list)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.Wrap(codes.ErrUsage, "no properly formatted checksum lines found")
	}

	b, err := newBatchHasher(workers, cacheSize)
	if err != nil {
		return err
	}
	defer b.Release()

	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}

	var mismatched, unreadable int
	for i, res := range b.hashFiles(paths) {
		switch {
		case res.Err != nil:
			unreadable++
			logging.VPrint(logging.WARN, "cannot hash file", logging.LogFormat{"path": res.Path, "err": res.Err})
			fmt.Fprintf(w, "%s: FAILED open or read\n", res.Path)
		case !res.Digest.Equal(entries[i].Want):
			mismatched++
			fmt.Fprintf(w, "%s: FAILED\n", res.Path)
		default:
			fmt.Fprintf(w, "%s: OK\n", res.Path)
		}
	}

	if malformed > 0 {
		logging.CPrint(logging.WARN, "improperly formatted lines", logging.LogFormat{"count": malformed})
	}
	if unreadable > 0 {
		logging.CPrint(logging.WARN, "listed files could not be read", logging.LogFormat{"count": unreadable})
	}
	if mismatched > 0 {
		return errors.Wrapf(codes.ErrMismatch, "%d of %d computed checksums did NOT match", mismatched, len(entries))
	}
	if unreadable > 0 {
		return errors.Errorf("%d of %d listed files could not be read", unreadable, len(entries))
	}
	return nil
}
