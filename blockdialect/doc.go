// Package blockdialect implements the BlockDialect-Lite 4-bit block codec
// used for quantized CNN weight storage.
//
// BlockDialect-Lite is a practical subset of the DialectFP4 format described
// in the BlockDialect paper (arXiv 2501.01144): weights are grouped into
// blocks of 32 signed 8-bit values, and each block is encoded with a shared
// exponent and one of 16 fixed magnitude tables ("dialects").
//
// # Block Layout
//
// Each block occupies exactly 18 bytes:
//
//	[0:2]   metadata, big-endian uint16:
//	          bits 15..12  dialect ID (0-15)
//	          bits 11..7   shared exponent (0-31)
//	          bits 6..0    zero padding
//	[2:18]  packed codes: 32 x 4 bits
//	          byte i high nibble = element 2i
//	          byte i low nibble  = element 2i+1
//
// A 4-bit code is a sign bit (bit 3) over a 3-bit magnitude index
// (bits 2..0) into the selected dialect row.
//
// # Decoding
//
// Decode is a pure function from 18 block bytes to 32 signed 8-bit values:
//
//	values, err := blockdialect.Decode(block)
//
// The magnitude is scaled by the shared exponent (table entries are in
// 0.5-granularity units, so exponent 0 halves the entry with round-half-up,
// and exponent e > 0 multiplies by 2^(e-1)), saturated at 127, and negated
// when the sign bit is set. Saturation precedes negation, so -128 is
// unreachable.
//
// For allocation-free decoding into a reusable buffer:
//
//	var buf [blockdialect.BlockSize]int8
//	err := blockdialect.DecodeInto(buf[:], block)
//
// # Encoding
//
// Encode is the offline, host-side inverse. It picks the smallest shared
// exponent that brings the block's peak magnitude into range, selects the
// dialect with the lowest squared quantization error, and maps every value
// to its nearest representable magnitude:
//
//	block, err := blockdialect.Encode(values)
//
// Encoding is lossy: Decode(Encode(v)) approximates v within the chosen
// dialect's granularity but round trips are not bit-exact.
package blockdialect
