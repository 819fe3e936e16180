package classfile

import (
	"bytes"
	"sync"
)

// readerPool recycles bytes.Reader instances across decodes. Code attribute
// bodies spawn a sub-reader each, so decoding churns through readers fast.
var readerPool = sync.Pool{
	New: func() interface{} {
		return &bytes.Reader{}
	},
}

// getReader returns a pooled reader positioned at the start of data.
func getReader(data []byte) *bytes.Reader {
	r := readerPool.Get().(*bytes.Reader)
	r.Reset(data)
	return r
}

// putReader returns a reader to the pool.
func putReader(r *bytes.Reader) {
	readerPool.Put(r)
}
