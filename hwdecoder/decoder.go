package hwdecoder

import (
	"encoding/binary"
	"fmt"
)

// Decoder models the MMIO decoder block: two writable input registers
// groups (metadata and packed bytes) and a combinational read-side decode
// array. The zero value is not ready for use; create one with New.
type Decoder struct {
	meta   uint32
	packed [4]uint32
}

// New creates a decoder with all input registers cleared.
func New() *Decoder {
	return &Decoder{}
}

// WriteReg writes an input register. Only META and PACKED0..3 are writable;
// the decoded outputs and the status flag are read-only.
func (d *Decoder) WriteReg(offset uint32, value uint32) error {
	switch {
	case offset == RegMeta:
		d.meta = value
	case offset >= RegPacked0 && offset <= RegPacked3 && offset%4 == 0:
		d.packed[(offset-RegPacked0)/4] = value
	case offset >= RegDecoded0 && offset <= RegStatus && offset%4 == 0:
		return fmt.Errorf("register 0x%02X is read-only", offset)
	default:
		return fmt.Errorf("no register at offset 0x%02X", offset)
	}
	return nil
}

// ReadReg reads a register. DECODED words are recomputed from the current
// inputs on every read, like the combinational array they model.
func (d *Decoder) ReadReg(offset uint32) (uint32, error) {
	switch {
	case offset == RegMeta:
		return d.meta, nil
	case offset >= RegPacked0 && offset <= RegPacked3 && offset%4 == 0:
		return d.packed[(offset-RegPacked0)/4], nil
	case offset >= RegDecoded0 && offset <= RegDecoded7 && offset%4 == 0:
		return d.decodedWord((offset - RegDecoded0) / 4), nil
	case offset == RegStatus:
		return 1, nil
	default:
		return 0, fmt.Errorf("no register at offset 0x%02X", offset)
	}
}

// decodedWord computes decoded elements 4w..4w+3, one int8 per byte,
// element 4w in bits [7:0].
func (d *Decoder) decodedWord(w uint32) uint32 {
	var word uint32
	for lane := uint32(0); lane < 4; lane++ {
		value := d.decodeElement(4*w + lane)
		word |= uint32(uint8(value)) << (8 * lane)
	}
	return word
}

// decodeElement runs one element through the lookup and scale network.
// Metadata layout: dialect in bits [15:12], shared exponent in bits [11:7].
func (d *Decoder) decodeElement(i uint32) int8 {
	byteIdx := i / 2
	packedByte := uint8(d.packed[byteIdx/4] >> (8 * (byteIdx % 4)))

	code := packedByte >> 4
	if i%2 == 1 {
		code = packedByte & 0x0F
	}

	dialect := (d.meta >> 12) & 0xF
	sharedExp := (d.meta >> 7) & 0x1F

	mag := int64(magnitudeROM[dialect][code&0x07])
	if sharedExp == 0 {
		mag = (mag + 1) >> 1
	} else {
		mag <<= sharedExp - 1
	}
	if mag > 127 {
		mag = 127
	}
	if code&0x08 != 0 {
		return int8(-mag)
	}
	return int8(mag)
}

// DecodeBlock runs an 18-byte block through the register interface the way
// the firmware does: metadata halfword first, then the four packed words,
// then the eight decoded words back out.
func (d *Decoder) DecodeBlock(block []byte) ([]int8, error) {
	if len(block) != 18 {
		return nil, fmt.Errorf("block must be 18 bytes, got %d", len(block))
	}

	meta := uint32(block[0])<<8 | uint32(block[1])
	if err := d.WriteReg(RegMeta, meta); err != nil {
		return nil, err
	}
	for w := 0; w < 4; w++ {
		word := binary.LittleEndian.Uint32(block[2+4*w:])
		if err := d.WriteReg(RegPacked0+uint32(4*w), word); err != nil {
			return nil, err
		}
	}

	out := make([]int8, 32)
	for w := uint32(0); w < 8; w++ {
		word, err := d.ReadReg(RegDecoded0 + 4*w)
		if err != nil {
			return nil, err
		}
		for lane := uint32(0); lane < 4; lane++ {
			out[4*w+lane] = int8(uint8(word >> (8 * lane)))
		}
	}
	return out, nil
}
