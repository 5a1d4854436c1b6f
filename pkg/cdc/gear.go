package cdc

import (
	"fmt"

	"github.com/zhengshuai-xiao/RollSum/internal"
)

// gearDigestBits is the width of the gear digest.
const gearDigestBits = 64

// Gear is a shift-register rolling hash: every byte shifts the digest
// left by one bit and adds a fixed per-byte random constant, with
// 64-bit wraparound. A boundary is declared where the top chunkBits
// bits of the digest are all 0.
//
// There is no explicit window. Each shift pushes older contributions
// toward bit 63 and eventually out, so only the most recent 64 bytes
// can reach the checked high bits.
type Gear struct {
	digest    uint64
	chunkBits uint32
}

// NewGear creates a gear engine with the default chunk-bits setting.
func NewGear() *Gear {
	return &Gear{chunkBits: DefaultChunkBits}
}

// NewGearWithChunkBits creates a gear engine that needs `chunkBits`
// clear high digest bits for a boundary. chunkBits must fit the 64-bit
// digest.
func NewGearWithChunkBits(chunkBits uint32) (*Gear, error) {
	if chunkBits >= gearDigestBits {
		return nil, fmt.Errorf("gear: chunkBits %d does not fit a 64-bit digest: %w",
			chunkBits, internal.ErrInvalidChunkBits)
	}
	logger.Tracef("created gear engine, chunkBits=%d", chunkBits)
	return &Gear{chunkBits: chunkBits}, nil
}

// RollByte folds one byte into the digest.
func (g *Gear) RollByte(b byte) {
	g.digest = g.digest<<1 + gearTable[b]
}

// Roll folds every byte of buf into the digest, identically to calling
// RollByte for each byte in order.
func (g *Gear) Roll(buf []byte) {
	digest := g.digest
	for _, b := range buf {
		digest = digest<<1 + gearTable[b]
	}
	g.digest = digest
}

// Digest returns the current hash value.
func (g *Gear) Digest() uint64 {
	return g.digest
}

// Reset clears the digest, keeping the chunk-bits setting.
func (g *Gear) Reset() {
	g.digest = 0
}

// ChunkBits returns the configured boundary width.
func (g *Gear) ChunkBits() uint32 {
	return g.chunkBits
}

// FindChunk scans buf for the first position where the top chunkBits
// bits of the digest are all 0. See Chunker for the split and
// continuation semantics.
func (g *Gear) FindChunk(buf []byte) (chunk, rest []byte, found bool) {
	mask := ^uint64(0) << (gearDigestBits - g.chunkBits)
	return g.FindChunkMask(buf, mask)
}

// FindChunkMask behaves like FindChunk but declares a boundary wherever
// digest&mask == 0, for an arbitrary caller-supplied mask.
func (g *Gear) FindChunkMask(buf []byte, mask uint64) (chunk, rest []byte, found bool) {
	digest := g.digest
	for i, b := range buf {
		digest = digest<<1 + gearTable[b]
		if digest&mask == 0 {
			g.Reset()
			return buf[:i+1], buf[i+1:], true
		}
	}
	g.digest = digest
	return nil, nil, false
}

// FindChunkFunc behaves like FindChunk but evaluates an arbitrary
// condition over the engine after every byte is rolled.
func (g *Gear) FindChunkFunc(buf []byte, cond func(*Gear) bool) (chunk, rest []byte, found bool) {
	for i, b := range buf {
		g.digest = g.digest<<1 + gearTable[b]
		if cond(g) {
			g.Reset()
			return buf[:i+1], buf[i+1:], true
		}
	}
	return nil, nil, false
}
