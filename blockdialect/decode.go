package blockdialect

import (
	"encoding/binary"
	"fmt"
)

// Metadata is the decoded form of a block's 2-byte metadata prefix.
type Metadata struct {
	// DialectID selects the magnitude table (0-15)
	DialectID uint8

	// SharedExp is the exponent applied to every element (0-31)
	SharedExp uint8
}

// ParseMetadata extracts the dialect ID and shared exponent from the first
// two bytes of a block. The metadata is big-endian: dialect ID in bits
// 15..12, shared exponent in bits 11..7, the remaining bits reserved.
func ParseMetadata(block []byte) (Metadata, error) {
	if len(block) < MetadataBytes {
		return Metadata{}, fmt.Errorf("metadata requires %d bytes, got %d", MetadataBytes, len(block))
	}

	raw := binary.BigEndian.Uint16(block[:MetadataBytes])
	return Metadata{
		DialectID: uint8(raw >> 12 & 0xF),
		SharedExp: uint8(raw >> 7 & 0x1F),
	}, nil
}

// Bytes returns the wire form of the metadata.
func (m Metadata) Bytes() [MetadataBytes]byte {
	raw := uint16(m.DialectID&0xF)<<12 | uint16(m.SharedExp&0x1F)<<7

	var b [MetadataBytes]byte
	binary.BigEndian.PutUint16(b[:], raw)
	return b
}

// Decode converts one 18-byte block into 32 signed 8-bit values.
//
// Decoding cannot fail on any well-sized input: every 4-bit code maps to a
// table entry and every exponent value is defined. The only error condition
// is a block slice shorter than BlockBytes.
func Decode(block []byte) ([]int8, error) {
	out := make([]int8, BlockSize)
	if err := DecodeInto(out, block); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeInto decodes one block into dst, which must hold at least BlockSize
// values. It performs no allocation, for callers decoding into a reused
// scratch buffer.
func DecodeInto(dst []int8, block []byte) error {
	if len(block) < BlockBytes {
		return fmt.Errorf("block requires %d bytes, got %d", BlockBytes, len(block))
	}
	if len(dst) < BlockSize {
		return fmt.Errorf("destination requires %d elements, got %d", BlockSize, len(dst))
	}

	meta, _ := ParseMetadata(block)
	dialect := &Dialects[meta.DialectID]

	for i, b := range block[MetadataBytes:BlockBytes] {
		dst[2*i] = decodeCode(b>>4, dialect, meta.SharedExp)
		dst[2*i+1] = decodeCode(b&0x0F, dialect, meta.SharedExp)
	}
	return nil
}

// decodeCode expands a single 4-bit code (sign | 3-bit index) under the
// given dialect and shared exponent.
//
// Table entries are in 0.5-granularity units: exponent 0 halves the entry
// with round-half-up, exponent e > 0 multiplies by 2^(e-1). The widened
// intermediate keeps the shift defined for the full 5-bit exponent range;
// any product past 127 saturates. Saturation runs before negation, so -128
// is unreachable.
func decodeCode(code byte, dialect *[DialectEntries]uint8, sharedExp uint8) int8 {
	mag := int64(dialect[code&0x07])

	if sharedExp == 0 {
		mag = (mag + 1) >> 1
	} else {
		mag <<= sharedExp - 1
	}
	if mag > MaxMagnitude {
		mag = MaxMagnitude
	}

	if code&0x08 != 0 {
		return int8(-mag)
	}
	return int8(mag)
}
