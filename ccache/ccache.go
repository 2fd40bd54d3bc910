package ccache

import (
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"massnet.org/sha256sum/crypto/sha256"
)

// FileKey identifies one version of a file on disk.
type FileKey struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// DigestCache is a concurrent safe lru cache of file digests.
type DigestCache struct {
	l     sync.Mutex
	cache *lru.Cache
}

func NewDigestCache(maxEntries int) *DigestCache {
	return &DigestCache{
		cache: lru.New(maxEntries),
	}
}

func (c *DigestCache) Get(key FileKey) (sha256.Digest, bool) {
	c.l.Lock()
	defer c.l.Unlock()
	v, ok := c.cache.Get(key)
	if !ok {
		return sha256.Digest{}, false
	}
	return v.(sha256.Digest), true
}

func (c *DigestCache) Add(key FileKey, d sha256.Digest) {
	c.l.Lock()
	c.cache.Add(key, d)
	c.l.Unlock()
}

func (c *DigestCache) Len() int {
	c.l.Lock()
	defer c.l.Unlock()
	return c.cache.Len()
}
