// Package cdc implements content-defined chunking on top of two rolling
// hash engines: the windowed checksum used by bup's bupsplit, and a
// 64-bit gear (shift-register) hash.
//
// Both engines split a byte stream at positions chosen by a predicate
// over the rolling digest, so boundaries depend only on nearby content
// and stay put when bytes are inserted or deleted elsewhere in the
// stream. That makes the chunks a stable unit for deduplication.
//
// A caller repeatedly asks an engine for the next boundary in a buffer.
// On a hit the engine resets itself and hands back the chunk and the
// unconsumed remainder; on a miss it keeps its rolled state, so the
// caller can continue with more data from the same stream.
package cdc

import (
	"github.com/zhengshuai-xiao/RollSum/internal"
)

var logger = internal.GetLogger("rollsum")

const (
	// DefaultChunkBits is the default number of digest bits a boundary
	// must satisfy, giving an expected chunk size of DefaultChunkSize.
	DefaultChunkBits = 13

	// DefaultChunkSize is the expected average chunk size with
	// DefaultChunkBits.
	DefaultChunkSize = 1 << DefaultChunkBits
)

// RollingHash32 is a rolling checksum with a 32-bit digest.
//
// RollByte folds one byte into the state in O(1). Roll folds a whole
// buffer and must leave the engine in exactly the state byte-at-a-time
// rolling would. Digest is pure. Reset restores the freshly-constructed
// state but keeps configuration such as the chunk-bits setting.
type RollingHash32 interface {
	RollByte(b byte)
	Roll(buf []byte)
	Digest() uint32
	Reset()
}

// RollingHash64 is a rolling checksum with a 64-bit digest.
type RollingHash64 interface {
	RollByte(b byte)
	Roll(buf []byte)
	Digest() uint64
	Reset()
}

// Chunker finds content-defined chunk boundaries.
//
// FindChunk rolls through buf looking for the earliest boundary. When it
// finds one it resets the engine and returns the consumed chunk and the
// remaining bytes of buf. When the buffer runs out first it returns
// found=false and keeps the rolled state, so a later call with more data
// continues the same scan.
type Chunker interface {
	FindChunk(buf []byte) (chunk, rest []byte, found bool)
}

var (
	_ RollingHash32 = (*Bup)(nil)
	_ RollingHash64 = (*Gear)(nil)
	_ Chunker       = (*Bup)(nil)
	_ Chunker       = (*Gear)(nil)
)
