package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	codes "massnet.org/sha256sum/errors"
)

const readBufferSize = 64 * 1024

// source is a message ready to be hashed, with its exact length.
type source struct {
	io.Reader
	closer io.Closer
	Name   string
	Length int64
	IsFile bool
}

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// openSource opens arg as a file when it names one, otherwise the bytes of
// arg itself are the message. forceString skips the file lookup.
func openSource(arg string, forceString bool) (*source, error) {
	if !forceString {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.Mode().IsRegular():
			f, err := os.Open(arg)
			if err != nil {
				return nil, errors.Wrap(err, "open input file")
			}
			return &source{
				Reader: bufio.NewReaderSize(f, readBufferSize),
				closer: f,
				Name:   arg,
				Length: info.Size(),
				IsFile: true,
			}, nil
		case err == nil:
			return nil, errors.Wrapf(codes.ErrUsage, "%s is not a regular file", arg)
		case os.IsPermission(err):
			return nil, errors.Wrap(err, "stat input file")
		}
	}

	return &source{
		Reader: strings.NewReader(arg),
		Name:   arg,
		Length: int64(len(arg)),
	}, nil
}
