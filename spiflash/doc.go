// Package spiflash models the read-only serial flash link that feeds the
// weight pipeline: a SPI Mode-0 transaction engine on the bus side and a
// simulated flash device on the wire side.
//
// # Transaction Cycle
//
// The engine is a tick-driven state machine. One read transaction walks a
// fixed state cycle:
//
//	IDLE -> SETUP_BIT -> CLOCK_HI -> CLOCK_LO   (32 command+address bits)
//	     -> READ_SETUP -> READ_HI -> READ_LO    (32 response bits)
//	     -> FINISH -> IDLE
//
// Each read issues the READ opcode (0x03) followed by a 24-bit flash address
// MSB-first, then clocks in one 32-bit word. The state machine advances once
// per effective tick; the effective clock is the main clock divided by
// 2*(divider+1), so each SPI clock phase spends divider+1 main ticks.
// Exactly one transaction is in flight at a time. A second request is not
// accepted until the current transaction reaches FINISH, and a response is
// valid for exactly one effective tick.
//
// # Wake Sequence
//
// Devices that power up in deep power-down need a one-time handshake before
// reads return data. With the wake option enabled the engine issues the
// standard reset-enable (0x66), reset (0x99) and release-power-down (0xAB)
// opcodes from IDLE, each padded with a 24-bit zero payload and followed by a
// configured idle delay. Read requests submitted during the handshake are
// held and serviced once it completes.
//
// # Byte Order
//
// Flash parts return bytes in address order, MSB-first on the wire, so the
// byte at the target address lands in shift-register bits [31:24]. The bus
// expects little-endian words with that byte in bits [7:0]; the engine swaps
// the four bytes before presenting the response. Physical bytes 12 34 56 78
// become the word 0x78563412.
//
// # Usage
//
//	flash := spiflash.NewSimFlash(0x400000, blob)
//	engine := spiflash.New(flash, spiflash.WithOffset(0x400000))
//
//	word, err := engine.ReadWord(0)  // first word of the blob
//
// For byte-level access, wrap the engine in a Reader and hand it to anything
// that takes an io.ReaderAt.
package spiflash
