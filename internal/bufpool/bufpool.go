// Package bufpool provides a pool of scratch byte buffers for the
// decompression copy loops in internal/codec. Buffers are reused only as
// transient copy scratch space; nothing handed back to a caller is ever
// pooled.
package bufpool

import "sync"

var pool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 4096)
	},
}

// Get returns a scratch buffer of at least size bytes.
func Get(size int) []byte {
	buf := pool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size, size*2)
	}
	return buf[:size]
}

// Release returns buf to the pool for reuse.
func Release(buf []byte) {
	pool.Put(buf[:0]) //nolint:staticcheck // reusing the backing array is the point
}
