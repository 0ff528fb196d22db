package verify

import (
	"fmt"
)

// decodeLUT is the firmware leg's own copy of the dialect formatbook. Like
// the hardware model's ROM it must stay a separate copy; the cross-check
// compares independent restatements of the table.
var decodeLUT = [16][8]uint8{
	{0, 1, 2, 3, 4, 4, 4, 4},
	{0, 1, 2, 3, 3, 3, 4, 4},
	{0, 1, 2, 3, 4, 5, 5, 5},
	{0, 1, 2, 3, 3, 4, 5, 5},
	{0, 1, 2, 3, 4, 5, 6, 6},
	{0, 1, 2, 3, 4, 4, 6, 6},
	{0, 1, 2, 3, 4, 5, 6, 7},
	{0, 1, 2, 3, 4, 5, 7, 7},
	{0, 1, 2, 3, 4, 6, 7, 8},
	{0, 1, 2, 3, 4, 6, 8, 8},
	{0, 1, 2, 3, 4, 6, 8, 10},
	{0, 1, 2, 3, 4, 6, 10, 10},
	{0, 1, 2, 3, 4, 6, 10, 12},
	{0, 1, 2, 3, 4, 6, 12, 12},
	{0, 1, 2, 3, 4, 6, 12, 15},
	{0, 1, 2, 3, 4, 6, 13, 15},
}

// FirmwareDecode decodes one block the way the embedded consumer does:
// a plain byte walk over the packed area with the lookup and scale applied
// element by element.
func FirmwareDecode(block []byte) ([]int8, error) {
	if len(block) != 18 {
		return nil, fmt.Errorf("block must be 18 bytes, got %d", len(block))
	}

	meta := uint16(block[0])<<8 | uint16(block[1])
	dialect := meta >> 12
	sharedExp := (meta >> 7) & 0x1F

	out := make([]int8, 32)
	for i := 0; i < 32; i++ {
		packed := block[2+i/2]
		code := packed >> 4
		if i%2 == 1 {
			code = packed & 0x0F
		}

		mag := int64(decodeLUT[dialect][code&0x07])
		if sharedExp == 0 {
			mag = (mag + 1) >> 1
		} else {
			mag <<= sharedExp - 1
		}
		if mag > 127 {
			mag = 127
		}

		if code&0x08 != 0 {
			out[i] = int8(-mag)
		} else {
			out[i] = int8(mag)
		}
	}
	return out, nil
}
