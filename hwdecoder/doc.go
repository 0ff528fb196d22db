// Package hwdecoder is a register-accurate model of the memory-mapped block
// decoder: the hardware leg of the decode path, restated independently of
// the reference codec so the two can be checked against each other.
//
// # Register Map
//
// The block exposes a small window of 32-bit registers:
//
//	+0x00  META      write: metadata halfword (dialect and shared exponent)
//	+0x04  PACKED0   write: packed code bytes 0..3, little-endian
//	+0x08  PACKED1   write: packed code bytes 4..7
//	+0x0C  PACKED2   write: packed code bytes 8..11
//	+0x10  PACKED3   write: packed code bytes 12..15
//	+0x20  DECODED0  read: decoded elements 0..3, one int8 per byte
//	...
//	+0x3C  DECODED7  read: decoded elements 28..31
//	+0x40  STATUS    read: always 1, the decode array is combinational
//
// Decoding has no start bit and no latency: DECODED values follow META and
// PACKED words combinationally, the way the hardware wires the lookup and
// shift network straight to the bus read mux.
//
// # Usage
//
// DecodeBlock performs the firmware's exact register sequence:
//
//	dec := hwdecoder.New()
//	values, err := dec.DecodeBlock(block)  // 18 raw bytes -> 32 int8
package hwdecoder
