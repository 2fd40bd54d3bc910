package cmd

import (
	"fmt"
	"strings"
	"time"

	"massnet.org/sha256sum/crypto/sha256"
)

const (
	msgMatch    = "Hashes match, Integrity check passed."
	msgMismatch = "Hashes do not match, Integrity check failed."
	msgBadRef   = "Provided reference hash is of incorrect length."
)

// report is the outcome of hashing one input.
type report struct {
	Computed  sha256.Digest
	Reference string
	// Checked is set when a reference of the right length was given.
	Checked bool
	Match   bool
	Elapsed time.Duration
}

// newReport compares computed against reference. A reference of the wrong
// length is not checked. The comparison is on the exact text, so only the
// lower-case form matches.
func newReport(computed sha256.Digest, reference string, elapsed time.Duration) *report {
	r := &report{Computed: computed, Elapsed: elapsed}
	if len(reference) != 2*sha256.Size {
		return r
	}
	r.Reference = reference
	r.Checked = true
	r.Match = computed.String() == reference
	return r
}

func (r *report) String() string {
	lines := []string{"Computed Hash: " + r.Computed.String()}
	if r.Checked {
		lines = append(lines, "Reference Hash: "+r.Reference)
		if r.Match {
			lines = append(lines, msgMatch)
		} else {
			lines = append(lines, msgMismatch)
		}
	}
	lines = append(lines, fmt.Sprintf("Execution time: %vs", float32(r.Elapsed.Seconds())))
	return strings.Join(lines, "\n")
}
