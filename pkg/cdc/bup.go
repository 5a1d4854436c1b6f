package cdc

import (
	"fmt"

	"github.com/zhengshuai-xiao/RollSum/internal"
)

const (
	windowBits = 6

	// WindowSize is the number of trailing bytes the bup checksum covers.
	WindowSize = 1 << windowBits

	// CharOffset is the fixed per-byte offset folded into the checksum,
	// as in bup's bupsplit.c.
	CharOffset = 31
)

// Bup is the rolling checksum used by bup: an Adler-like pair of
// accumulators over a sliding 64-byte window. A boundary is declared
// where the low chunkBits bits of the digest are all 1.
//
// The zero-filled window is part of the initial state, so the first
// WindowSize calls evict zeros. This mirrors the reference bupsplit
// behavior exactly, quirks included, to stay output-compatible with
// data chunked by other bupsplit implementations.
type Bup struct {
	s1, s2    uint32
	window    [WindowSize]byte
	wofs      int
	chunkBits uint32
}

// NewBup creates a bup engine with the default chunk-bits setting.
func NewBup() *Bup {
	return &Bup{
		s1:        WindowSize * CharOffset,
		s2:        WindowSize * (WindowSize - 1) * CharOffset,
		chunkBits: DefaultChunkBits,
	}
}

// NewBupWithChunkBits creates a bup engine that needs `chunkBits` low
// digest bits set for a boundary. chunkBits must fit the 32-bit digest.
func NewBupWithChunkBits(chunkBits uint32) (*Bup, error) {
	if chunkBits >= 32 {
		return nil, fmt.Errorf("bup: chunkBits %d does not fit a 32-bit digest: %w",
			chunkBits, internal.ErrInvalidChunkBits)
	}
	b := NewBup()
	b.chunkBits = chunkBits
	logger.Tracef("created bup engine, chunkBits=%d", chunkBits)
	return b, nil
}

// add drops one byte from the accumulators and folds in a new one.
// Arithmetic wraps; that is what bupsplit does.
func (r *Bup) add(drop, add byte) {
	r.s1 += uint32(add) - uint32(drop)
	r.s2 += r.s1 - WindowSize*(uint32(drop)+CharOffset)
}

// RollByte slides the window forward by one byte.
func (r *Bup) RollByte(ch byte) {
	r.add(r.window[r.wofs], ch)
	r.window[r.wofs] = ch
	r.wofs = (r.wofs + 1) % WindowSize
}

// Roll slides the window over every byte of buf in order.
func (r *Bup) Roll(buf []byte) {
	for _, ch := range buf {
		r.RollByte(ch)
	}
}

// Digest packs the low halves of both accumulators: s1 in the high 16
// bits, s2 in the low 16.
func (r *Bup) Digest() uint32 {
	return r.s1<<16 | r.s2&0xffff
}

// Reset returns the engine to its freshly-constructed state, keeping
// the chunk-bits setting.
func (r *Bup) Reset() {
	*r = Bup{
		s1:        WindowSize * CharOffset,
		s2:        WindowSize * (WindowSize - 1) * CharOffset,
		chunkBits: r.chunkBits,
	}
}

// ChunkBits returns the configured boundary width.
func (r *Bup) ChunkBits() uint32 {
	return r.chunkBits
}

// FindChunk scans buf for the first position where the low chunkBits
// bits of the digest are all 1. On a hit the engine resets and the
// consumed chunk plus the remainder of buf are returned. Otherwise the
// whole buffer is rolled into the state and found is false.
func (r *Bup) FindChunk(buf []byte) (chunk, rest []byte, found bool) {
	chunkMask := uint32(1)<<r.chunkBits - 1
	for i, ch := range buf {
		r.RollByte(ch)
		if r.Digest()&chunkMask == chunkMask {
			r.Reset()
			return buf[:i+1], buf[i+1:], true
		}
	}
	return nil, nil, false
}

// CountBits reports how strong the current boundary is: the number of
// contiguous 1-bits in the digest starting from bit 0, assuming the low
// chunkBits bits are already known to be set (i.e. the digest is at a
// boundary found by FindChunk).
//
// The loop shifts before it tests, so the bit directly above chunkBits
// is never examined. Other bupsplit implementations share this quirk
// and tools compare the results, so it is kept, not fixed.
func (r *Bup) CountBits() uint32 {
	bits := r.chunkBits
	rsum := r.Digest() >> r.chunkBits
	for {
		rsum >>= 1
		if rsum&1 == 0 {
			break
		}
		bits++
	}
	return bits
}
