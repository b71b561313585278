package gumble

import "sync"

// BlobKind identifies which entity field a cached blob backs.
type BlobKind int

const (
	BlobKindUserComment BlobKind = iota
	BlobKindUserAvatar
	BlobKindChannelDescription
)

// BlobCache stores the large, hash-addressed payloads (comments, avatars,
// channel descriptions) that the control channel otherwise only ever
// references by hash. Get reports whether payload for hash is cached;
// callers must treat a hash mismatch as "stale, re-fetch".
// When Config.BlobCache is nil the client uses an in-memory cache whose
// contents do not survive a restart. gumble/blobcache provides a
// modernc.org/sqlite-backed implementation, used only when set as
// Config.BlobCache; any type with this method set can be substituted there.
type BlobCache interface {
	Get(kind BlobKind, id uint32, hash []byte) ([]byte, bool)
	Put(kind BlobKind, id uint32, hash []byte, payload []byte) error
}

// memoryBlobCache is the default cache when Config.BlobCache is nil.
type memoryBlobCache struct {
	mu    sync.Mutex
	items map[blobCacheKey][]byte
}

type blobCacheKey struct {
	kind BlobKind
	id   uint32
	hash string
}

func newMemoryBlobCache() *memoryBlobCache {
	return &memoryBlobCache{items: make(map[blobCacheKey][]byte)}
}

func (c *memoryBlobCache) Get(kind BlobKind, id uint32, hash []byte) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[blobCacheKey{kind, id, string(hash)}]
	return v, ok
}

func (c *memoryBlobCache) Put(kind BlobKind, id uint32, hash []byte, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[blobCacheKey{kind, id, string(hash)}] = payload
	return nil
}

// blobRequestKey identifies a pending RequestBlob fetch, used to
// deduplicate and batch requests across a read-dispatch tick.
type blobRequestKey struct {
	kind BlobKind
	id   uint32
}

// blobRequestBatch accumulates pending blob fetches so the replicator can
// flush them as one (or a few) RequestBlob commands per tick instead of
// one wire message per blob.
type blobRequestBatch struct {
	mu      sync.Mutex
	pending map[blobRequestKey]struct{}
}

func newBlobRequestBatch() *blobRequestBatch {
	return &blobRequestBatch{pending: make(map[blobRequestKey]struct{})}
}

func (b *blobRequestBatch) add(kind BlobKind, id uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[blobRequestKey{kind, id}] = struct{}{}
}

// drain returns and clears the accumulated set of pending requests.
func (b *blobRequestBatch) drain() []blobRequestKey {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return nil
	}
	out := make([]blobRequestKey, 0, len(b.pending))
	for k := range b.pending {
		out = append(out, k)
	}
	b.pending = make(map[blobRequestKey]struct{})
	return out
}
