package spiflash

import (
	"fmt"
)

// Reader adapts the engine's word transactions to io.ReaderAt, with reader
// offset 0 at a fixed bus base address. It lets blob consumers run unchanged
// over flash-backed and memory-backed storage.
//
// Flash has no end-of-medium, so Reader never returns io.EOF; reads past the
// mapped contents come back as erased bytes and are caught by the blob's own
// framing checks.
type Reader struct {
	engine *Engine
	base   uint32
}

// NewReader creates a Reader over the engine starting at the given bus byte
// address.
func NewReader(engine *Engine, base uint32) *Reader {
	if engine == nil {
		panic("engine cannot be nil")
	}
	return &Reader{engine: engine, base: base}
}

// ReadAt implements io.ReaderAt using word transactions. Unaligned spans are
// handled by picking bytes out of the little-endian response words.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset %d", off)
	}

	n := 0
	for n < len(p) {
		addr := r.base + uint32(off) + uint32(n)
		word, err := r.engine.ReadWord(addr)
		if err != nil {
			return n, err
		}
		for shift := (addr % 4) * 8; shift < 32 && n < len(p); shift += 8 {
			p[n] = byte(word >> shift)
			n++
		}
	}
	return n, nil
}
