package spiflash

// SPI opcodes (standard serial NOR flash command set).
const (
	// OpRead is the sequential read command (0x03), followed by a 24-bit address
	OpRead byte = 0x03

	// OpResetEnable arms a software reset (0x66)
	OpResetEnable byte = 0x66

	// OpReset executes the armed software reset (0x99)
	OpReset byte = 0x99

	// OpReleasePowerDown wakes the device from deep power-down (0xAB)
	OpReleasePowerDown byte = 0xAB
)

// wakeSequence is the cold-start handshake, issued in this order before the
// first read when the wake option is enabled.
var wakeSequence = [3]byte{OpResetEnable, OpReset, OpReleasePowerDown}

// Transfer geometry.
const (
	// CmdBits is the command phase length: 8-bit opcode + 24-bit address
	CmdBits = 32

	// DataBits is the response phase length: one 32-bit word
	DataBits = 32

	// AddrMask keeps translated addresses inside the 24-bit flash space
	AddrMask = 0x00FFFFFF
)

// Configuration defaults.
const (
	// DefaultWakeDelay is the idle gap after each wake command, in effective ticks
	DefaultWakeDelay = 256

	// DefaultOffset places the weight region past a 4 MiB boot image
	DefaultOffset = 0x400000
)

// State identifies one step of the transaction cycle.
type State uint8

// Transaction states. SETUP_BIT through CLOCK_LO shift the command+address
// out; READ_SETUP through READ_LO shift the response in.
const (
	StateIdle State = iota
	StateSetupBit
	StateClockHi
	StateClockLo
	StateReadSetup
	StateReadHi
	StateReadLo
	StateFinish
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateSetupBit:
		return "SETUP_BIT"
	case StateClockHi:
		return "CLOCK_HI"
	case StateClockLo:
		return "CLOCK_LO"
	case StateReadSetup:
		return "READ_SETUP"
	case StateReadHi:
		return "READ_HI"
	case StateReadLo:
		return "READ_LO"
	case StateFinish:
		return "FINISH"
	default:
		return "UNKNOWN"
	}
}
