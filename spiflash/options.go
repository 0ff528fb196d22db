package spiflash

// Config holds the engine configuration.
type Config struct {
	// Offset is added to every word-aligned bus address to form the 24-bit
	// flash address (where the weight region begins inside the part)
	Offset uint32

	// Divider scales the serial clock: effective_clock = main_clock / (2*(Divider+1))
	Divider uint32

	// Wake enables the one-time cold-start handshake before the first read
	Wake bool

	// WakeDelay is the idle gap after each wake command, in effective ticks
	WakeDelay uint32

	// Timeout bounds ReadWord in main-clock ticks; 0 waits forever
	Timeout uint64
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Offset:    DefaultOffset,
		Divider:   0, // full speed
		WakeDelay: DefaultWakeDelay,
	}
}

// Option is a functional option for configuring the Engine.
type Option func(*Config)

// WithOffset sets the flash byte offset of the weight region.
//
// Example:
//
//	engine := spiflash.New(flash, spiflash.WithOffset(0x400000))
func WithOffset(offset uint32) Option {
	return func(c *Config) {
		c.Offset = offset & AddrMask
	}
}

// WithDivider sets the serial clock divider. A divider of n yields an
// effective clock of main_clock / (2*(n+1)).
//
// Example:
//
//	engine := spiflash.New(flash, spiflash.WithDivider(3))
func WithDivider(divider uint32) Option {
	return func(c *Config) {
		c.Divider = divider
	}
}

// WithWake enables the cold-start wake handshake. Required for devices that
// power up in deep power-down.
//
// Example:
//
//	engine := spiflash.New(flash, spiflash.WithWake(true))
func WithWake(wake bool) Option {
	return func(c *Config) {
		c.Wake = wake
	}
}

// WithWakeDelay sets the idle gap after each wake command, in effective
// ticks. Default is 256.
//
// Example:
//
//	engine := spiflash.New(flash, spiflash.WithWake(true), spiflash.WithWakeDelay(64))
func WithWakeDelay(ticks uint32) Option {
	return func(c *Config) {
		c.WakeDelay = ticks
	}
}

// WithTimeout bounds blocking reads to the given number of main-clock ticks.
// The default of 0 waits forever, matching the fail-stop behavior of the
// hardware; a nonzero bound makes ReadWord return HangError instead.
//
// Example:
//
//	engine := spiflash.New(flash, spiflash.WithTimeout(100000))
func WithTimeout(ticks uint64) Option {
	return func(c *Config) {
		c.Timeout = ticks
	}
}
