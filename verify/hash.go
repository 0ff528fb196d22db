package verify

import (
	"github.com/zeebo/xxh3"
)

// Hash computes the additive checksum over a decoded tensor: the 32-bit
// wrapping sum of the sign-extended elements. This is the oracle recorded
// in golden files; it matches what the embedded consumer can afford to
// compute per layer.
func Hash(values []int8) uint32 {
	var h uint32
	for _, v := range values {
		h += uint32(int32(v))
	}
	return h
}

// Fingerprint computes a fast 64-bit content hash of a decoded tensor, for
// corpus-scale comparison where the additive sum is too collision-prone.
func Fingerprint(values []int8) uint64 {
	raw := make([]byte, len(values))
	for i, v := range values {
		raw[i] = byte(v)
	}
	return xxh3.Hash(raw)
}
