package blockdialect

// Block geometry constants.
const (
	// BlockSize is the number of decoded elements per block
	BlockSize = 32

	// BlockBytes is the encoded size of one block:
	// metadata (2) + packed codes (16)
	BlockBytes = 18

	// MetadataBytes is the size of the per-block metadata prefix
	MetadataBytes = 2

	// PackedBytes is the size of the packed code area (two codes per byte)
	PackedBytes = 16

	// NumDialects is the number of magnitude tables in the formatbook
	NumDialects = 16

	// DialectEntries is the number of representable magnitudes per dialect
	DialectEntries = 8

	// MaxSharedExp is the largest encodable shared exponent (5-bit field)
	MaxSharedExp = 31

	// MaxMagnitude is the saturation bound applied after exponent scaling
	MaxMagnitude = 127
)

// Dialects is the DialectFP4 formatbook: 16 magnitude tables of 8 entries
// each, indexed by a block's dialect ID and an element's 3-bit code index.
// Entries are unsigned magnitudes in 0.5-granularity units (real magnitude
// = 0.5 * entry * 2^sharedExp). Rows are sorted ascending, entry 0 is
// always 0 (exact zero) and entry 7 is the row maximum. The 16 rows form 8
// pairs, each pair sharing a maximum (4, 5, 6, 7, 8, 10, 12, 15) and
// differing in how densely the mid range is covered.
//
// The table is fixed; treat it as read-only.
var Dialects = [NumDialects][DialectEntries]uint8{
	{0, 1, 2, 3, 4, 4, 4, 4},   // D0:  max 4, duplicated top
	{0, 1, 2, 3, 3, 3, 4, 4},   // D1:  max 4, denser mid
	{0, 1, 2, 3, 4, 5, 5, 5},   // D2:  max 5
	{0, 1, 2, 3, 3, 4, 5, 5},   // D3:  max 5, denser mid
	{0, 1, 2, 3, 4, 5, 6, 6},   // D4:  max 6, closest to FP4 E2M1
	{0, 1, 2, 3, 4, 4, 6, 6},   // D5:  max 6
	{0, 1, 2, 3, 4, 5, 6, 7},   // D6:  max 7, linear
	{0, 1, 2, 3, 4, 5, 7, 7},   // D7:  max 7
	{0, 1, 2, 3, 4, 6, 7, 8},   // D8:  max 8, FP4 E2M1 range
	{0, 1, 2, 3, 4, 6, 8, 8},   // D9:  max 8
	{0, 1, 2, 3, 4, 6, 8, 10},  // D10: max 10
	{0, 1, 2, 3, 4, 6, 10, 10}, // D11: max 10
	{0, 1, 2, 3, 4, 6, 10, 12}, // D12: max 12, standard FP4
	{0, 1, 2, 3, 4, 6, 12, 12}, // D13: max 12
	{0, 1, 2, 3, 4, 6, 12, 15}, // D14: max 15
	{0, 1, 2, 3, 4, 6, 13, 15}, // D15: max 15
}
