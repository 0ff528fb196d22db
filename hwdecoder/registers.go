package hwdecoder

// Register offsets within the decoder's bus window.
const (
	// RegMeta is the metadata halfword register (0x00)
	RegMeta = 0x00

	// RegPacked0 is the first packed-byte word register (0x04)
	RegPacked0 = 0x04

	// RegPacked3 is the last packed-byte word register (0x10)
	RegPacked3 = 0x10

	// RegDecoded0 is the first decoded-output word register (0x20)
	RegDecoded0 = 0x20

	// RegDecoded7 is the last decoded-output word register (0x3C)
	RegDecoded7 = 0x3C

	// RegStatus is the ready flag register (0x40); always reads 1
	RegStatus = 0x40
)

// magnitudeROM is the decoder's copy of the dialect formatbook, modeled the
// way the hardware holds it: a synthesized read-only array addressed by
// {dialect, index}. A separate copy from the reference codec's table; the
// two implementations must agree by construction, not by sharing data.
var magnitudeROM = [16][8]uint8{
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
