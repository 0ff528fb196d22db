package vwb

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Blob layout constants.
const (
	// MagicRaw marks the uncompressed int8 baseline variant ("VWB0")
	MagicRaw = 0x56574230

	// MagicBlock marks the BlockDialect-Lite variant ("VWB1")
	MagicBlock = 0x56574231

	// HeaderSize is the fixed file header size in bytes
	HeaderSize = 16

	// RecordHeaderSize is the per-tensor header size:
	// element count (4) + block count (4)
	RecordHeaderSize = 8

	// Alignment is the record boundary alignment in bytes
	Alignment = 4
)

// Header is the decoded 16-byte blob header. All fields are stored
// little-endian.
type Header struct {
	// Magic identifies the producer variant (MagicRaw or MagicBlock)
	Magic uint32

	// PayloadSize is the byte count following the header
	PayloadSize uint32

	// BlockSize is the elements-per-block constant (32) under MagicBlock;
	// MagicRaw producers store an unused checksum slot here
	BlockSize uint32

	// Reserved is written as zero
	Reserved uint32
}

// ParseHeader decodes a blob header and validates the magic.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("header requires %d bytes, got %d", HeaderSize, len(data))
	}

	h := Header{
		Magic:       binary.LittleEndian.Uint32(data[0:4]),
		PayloadSize: binary.LittleEndian.Uint32(data[4:8]),
		BlockSize:   binary.LittleEndian.Uint32(data[8:12]),
		Reserved:    binary.LittleEndian.Uint32(data[12:16]),
	}

	if h.Magic != MagicRaw && h.Magic != MagicBlock {
		return Header{}, fmt.Errorf("bad magic 0x%08X (expected 0x%08X or 0x%08X)",
			h.Magic, MagicRaw, MagicBlock)
	}
	return h, nil
}

// Bytes returns the wire form of the header.
func (h Header) Bytes() [HeaderSize]byte {
	var b [HeaderSize]byte
	binary.LittleEndian.PutUint32(b[0:4], h.Magic)
	binary.LittleEndian.PutUint32(b[4:8], h.PayloadSize)
	binary.LittleEndian.PutUint32(b[8:12], h.BlockSize)
	binary.LittleEndian.PutUint32(b[12:16], h.Reserved)
	return b
}

// Align rounds n up to the next record boundary.
func Align[T constraints.Integer](n T) T {
	return (n + Alignment - 1) &^ (Alignment - 1)
}
