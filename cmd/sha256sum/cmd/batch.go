package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/golang/groupcache/singleflight"
	"github.com/panjf2000/ants"
	"github.com/pkg/errors"
	"massnet.org/sha256sum/ccache"
	"massnet.org/sha256sum/crypto/sha256"
	codes "massnet.org/sha256sum/errors"
	"massnet.org/sha256sum/logging"
)

// fileResult is the digest of one file, or why it has none.
type fileResult struct {
	Path   string
	Digest sha256.Digest
	Err    error
}

// batchHasher hashes files concurrently, one engine per file. Each version
// of a file is hashed at most once.
type batchHasher struct {
	hashed int64 // files actually read, first for 64-bit alignment
	pool   *ants.Pool
	cache  *ccache.DigestCache
	group  singleflight.Group
}

func newBatchHasher(workers, cacheSize int) (*batchHasher, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	return &batchHasher{
		pool:  pool,
		cache: ccache.NewDigestCache(cacheSize),
	}, nil
}

func (b *batchHasher) Release() {
	logging.VPrint(logging.DEBUG, "batch finished", logging.LogFormat{
		"hashed": b.Hashed(),
		"cached": b.cache.Len(),
	})
	b.pool.Release()
}

// hashFiles returns one result per path, in the order given.
func (b *batchHasher) hashFiles(paths []string) []fileResult {
	results := make([]fileResult, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			results[i] = b.hashFile(path)
		})
		if err != nil {
			wg.Done()
			results[i] = fileResult{Path: path, Err: errors.Wrap(err, "submit task")}
		}
	}
	wg.Wait()
	return results
}

func (b *batchHasher) hashFile(path string) fileResult {
	res := fileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		res.Err = err
		return res
	}
	if !info.Mode().IsRegular() {
		res.Err = errors.Wrapf(codes.ErrUsage, "%s is not a regular file", path)
		return res
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	key := ccache.FileKey{Path: abs, Size: info.Size(), ModTime: info.ModTime()}
	v, err := b.group.Do(flightKey(key), func() (interface{}, error) {
		if d, ok := b.cache.Get(key); ok {
			return d, nil
		}
		d, err := b.sumFile(path, info.Size())
		if err != nil {
			return nil, err
		}
		b.cache.Add(key, d)
		return d, nil
	})
	if err != nil {
		res.Err = err
		return res
	}
	res.Digest = v.(sha256.Digest)
	return res
}

func (b *batchHasher) sumFile(path string, size int64) (sha256.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return sha256.Digest{}, err
	}
	defer f.Close()

	atomic.AddInt64(&b.hashed, 1)
	d, err := sha256.SumReader(bufio.NewReaderSize(f, readBufferSize), size)
	if err != nil {
		logging.VPrint(logging.WARN, "hash file failed", logging.LogFormat{"path": path, "err": err})
		return sha256.Digest{}, errors.Wrapf(err, "hash %s", path)
	}
	return d, nil
}

// Hashed returns how many files were read so far.
func (b *batchHasher) Hashed() int64 {
	return atomic.LoadInt64(&b.hashed)
}

func flightKey(k ccache.FileKey) string {
	return fmt.Sprintf("%s|%d|%d", k.Path, k.Size, k.ModTime.UnixNano())
}
