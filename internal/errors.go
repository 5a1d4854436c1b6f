package internal

import "errors"

var (
	// ErrInvalidChunkBits means the requested boundary width does not fit
	// the engine's digest.
	ErrInvalidChunkBits = errors.New("invalid chunk bits")
)
