package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"massnet.org/sha256sum/crypto/sha256"
	codes "massnet.org/sha256sum/errors"
	"massnet.org/sha256sum/logging"
)

type digestOptions struct {
	forceString bool
	writeOutput bool
}

// runDigest hashes one input, prints the report to w and, for file
// inputs, saves it next to the file.
func runDigest(w io.Writer, input, reference string, opts digestOptions) error {
	src, err := openSource(input, opts.forceString)
	if err != nil {
		return err
	}
	defer src.Close()

	logging.VPrint(logging.INFO, "hashing input", logging.LogFormat{
		"name":   src.Name,
		"file":   src.IsFile,
		"length": src.Length,
	})

	start := time.Now()
	d, err := sha256.SumReader(src, src.Length)
	if err != nil {
		return errors.Wrapf(err, "hash %s", src.Name)
	}
	rep := newReport(d, reference, time.Since(start))

	if reference != "" && !rep.Checked {
		logging.CPrint(logging.WARN, msgBadRef, logging.LogFormat{"length": len(reference)})
	}

	text := rep.String()
	fmt.Fprintln(w, text)

	if src.IsFile && opts.writeOutput {
		out := src.Name + outputSuffix
		if err := ioutil.WriteFile(out, []byte(text), 0644); err != nil {
			return errors.Wrapf(err, "write report %s", out)
		}
		logging.VPrint(logging.INFO, "report written", logging.LogFormat{"file": out})
	}

	if rep.Checked && !rep.Match {
		return errors.Wrap(codes.ErrMismatch, src.Name)
	}
	return nil
}
