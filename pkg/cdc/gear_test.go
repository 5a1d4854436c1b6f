package cdc

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhengshuai-xiao/RollSum/internal"
)

func TestNewGearWithChunkBits(t *testing.T) {
	testCases := []struct {
		chunkBits   uint32
		expectError bool
	}{
		{1, false},
		{13, false},
		{32, false},
		{63, false},
		{64, true},
		{200, true},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("chunkBits=%d", tc.chunkBits), func(t *testing.T) {
			g, err := NewGearWithChunkBits(tc.chunkBits)
			if tc.expectError {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, internal.ErrInvalidChunkBits))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.chunkBits, g.ChunkBits())
				assert.Equal(t, uint64(0), g.Digest())
			}
		})
	}
}

func TestGearRollEquivalence(t *testing.T) {
	data := testData(4096, 11)

	bulk := NewGear()
	bulk.Roll(data)

	byteWise := NewGear()
	for _, b := range data {
		byteWise.RollByte(b)
	}

	assert.Equal(t, byteWise.Digest(), bulk.Digest())
}

func TestGearReset(t *testing.T) {
	g, err := NewGearWithChunkBits(20)
	require.NoError(t, err)

	g.Roll(testData(100, 12))
	require.NotEqual(t, uint64(0), g.Digest())

	g.Reset()
	assert.Equal(t, uint64(0), g.Digest())
	assert.Equal(t, uint32(20), g.ChunkBits())
}

// Each shift-left retires one byte's contribution past bit 63, so even
// without an explicit window only the trailing 64 bytes determine the
// digest. Prime an engine with 1KiB of zeroes, feed it ones, and the
// digest of a ones-only stream must appear after exactly 64 ones.
func TestGearEffectiveWindowSize(t *testing.T) {
	ones := bytes.Repeat([]byte{0x1}, 1024)
	zeroes := bytes.Repeat([]byte{0x0}, 1024)

	g := NewGear()
	g.Roll(ones)
	want := g.Digest()

	g = NewGear()
	g.Roll(zeroes)

	for i, b := range ones {
		g.RollByte(b)
		if g.Digest() == want {
			assert.Equal(t, 63, i, "digest matched at the wrong offset")
			return
		}
	}
	t.Fatal("matching digest not found")
}

func TestGearFindChunk(t *testing.T) {
	data := testData(1<<18, 13)

	g := NewGear()
	chunk, rest, found := g.FindChunk(data)
	require.True(t, found, "expected a boundary in 256KiB of data")

	assert.Equal(t, len(data), len(chunk)+len(rest))
	assert.Equal(t, data[:len(chunk)], chunk)
	assert.Equal(t, data[len(chunk):], rest)

	// the engine reset itself after the boundary
	assert.Equal(t, uint64(0), g.Digest())

	// re-rolling the chunk must satisfy the mask at its last byte and
	// nowhere before
	mask := ^uint64(0) << (64 - g.ChunkBits())
	verify := NewGear()
	for i, b := range chunk {
		verify.RollByte(b)
		if i < len(chunk)-1 {
			assert.NotEqual(t, uint64(0), verify.Digest()&mask,
				"premature boundary at %d", i)
		}
	}
	assert.Equal(t, uint64(0), verify.Digest()&mask)
}

func TestGearFindChunkMask(t *testing.T) {
	data := testData(1<<18, 14)
	const mask = uint64(0xffff000000000000)

	g := NewGear()
	chunk, rest, found := g.FindChunkMask(data, mask)
	require.True(t, found)
	assert.Equal(t, len(data), len(chunk)+len(rest))

	verify := NewGear()
	verify.Roll(chunk)
	assert.Equal(t, uint64(0), verify.Digest()&mask)
}

func TestGearFindChunkFunc(t *testing.T) {
	data := testData(1<<18, 15)
	bits := uint32(DefaultChunkBits)
	mask := ^uint64(0) << (64 - bits)

	g := NewGear()
	chunk, rest, found := g.FindChunkFunc(data, func(g *Gear) bool {
		return g.Digest()&mask == 0
	})
	require.True(t, found)

	// the mask predicate is exactly the default boundary rule
	def := NewGear()
	defChunk, defRest, defFound := def.FindChunk(data)
	require.True(t, defFound)
	assert.Equal(t, defChunk, chunk)
	assert.Equal(t, defRest, rest)
}

func TestGearFindChunkFuncNeverMatches(t *testing.T) {
	data := testData(1024, 16)

	g := NewGear()
	chunk, rest, found := g.FindChunkFunc(data, func(*Gear) bool { return false })
	assert.False(t, found)
	assert.Nil(t, chunk)
	assert.Nil(t, rest)

	// the whole buffer must have been rolled into the state
	rolled := NewGear()
	rolled.Roll(data)
	assert.Equal(t, rolled.Digest(), g.Digest())
}

// A scan that exhausts one buffer must continue seamlessly in the next.
func TestGearFindChunkContinuation(t *testing.T) {
	data := testData(1<<18, 17)

	whole := NewGear()
	wholeChunk, _, found := whole.FindChunk(data)
	require.True(t, found)
	boundary := len(wholeChunk)

	// data before the first boundary contains no boundary, so feeding it
	// alone must leave the scan pending
	g := NewGear()
	_, _, found = g.FindChunk(data[:boundary-1])
	require.False(t, found)

	// the very next byte completes the same boundary
	chunk, _, found := g.FindChunk(data[boundary-1:])
	require.True(t, found)
	assert.Equal(t, 1, len(chunk))
}

func TestGearFindChunkEmptyInput(t *testing.T) {
	g := NewGear()
	g.Roll(testData(10, 18))
	before := g.Digest()

	chunk, rest, found := g.FindChunk(nil)
	assert.False(t, found)
	assert.Nil(t, chunk)
	assert.Nil(t, rest)
	assert.Equal(t, before, g.Digest())

	_, _, found = g.FindChunk([]byte{})
	assert.False(t, found)
	assert.Equal(t, before, g.Digest())
}
