package spiflash

// CapturedCmd is one complete chip-select session as seen by SimFlash,
// recorded for inspection.
type CapturedCmd struct {
	// Opcode is the first 8 bits shifted in
	Opcode byte

	// Addr is the 24-bit payload following the opcode (zero when fewer
	// than 32 bits were shifted)
	Addr uint32

	// Bits is the total number of rising edges in the session
	Bits int
}

// SimFlash is a behavioral model of a serial NOR flash part: Mode-0 edge
// handling, the READ command, and the deep power-down handshake. It backs
// reads with a byte slice mapped at a fixed flash address; reads outside the
// slice return 0xFF like erased flash.
//
// SimFlash records every command session, which makes wake and address
// sequencing directly assertable in tests.
type SimFlash struct {
	base     uint32
	contents []byte

	down       bool
	resetArmed bool

	prev     Pins
	selected bool
	bitsIn   int
	cmdShift uint32
	bitsOut  int
	miso     bool

	commands []CapturedCmd
}

// NewSimFlash creates a flash model whose contents start at the given flash
// byte address. The device powers up ready; call PowerDown to require the
// wake handshake first.
func NewSimFlash(base uint32, contents []byte) *SimFlash {
	return &SimFlash{
		base:     base,
		contents: contents,
	}
}

// PowerDown puts the device into deep power-down. While down it drives MISO
// low and ignores every command except release-power-down (0xAB).
func (f *SimFlash) PowerDown() {
	f.down = true
}

// Awake reports whether the device will respond to reads.
func (f *SimFlash) Awake() bool {
	return !f.down
}

// Commands returns all completed command sessions in order.
func (f *SimFlash) Commands() []CapturedCmd {
	return f.commands
}

// Update implements Bus. It reacts to select and clock edges relative to the
// previous call: MOSI is sampled on the rising edge, MISO shifts on the
// falling edge, and a command executes when select deasserts.
func (f *SimFlash) Update(pins Pins) bool {
	defer func() { f.prev = pins }()

	if !pins.Select {
		if f.selected {
			f.endSession()
		}
		f.selected = false
		f.miso = false
		return false
	}

	if !f.selected {
		f.selected = true
		f.miso = false
	}

	if pins.Clock && !f.prev.Clock {
		if f.bitsIn < CmdBits {
			f.cmdShift <<= 1
			if pins.MOSI {
				f.cmdShift |= 1
			}
		}
		f.bitsIn++
	}
	if !pins.Clock && f.prev.Clock {
		f.shiftNext()
	}
	return f.miso
}

// shiftNext places the next output bit on MISO. Data flows only after a full
// READ command+address has been received and only while powered up; the
// device streams bytes in address order, MSB-first, without wrapping.
func (f *SimFlash) shiftNext() {
	if f.down || f.bitsIn < CmdBits || f.leadOpcode() != OpRead {
		f.miso = false
		return
	}

	addr := (f.addr() + uint32(f.bitsOut/8)) & AddrMask
	f.miso = f.byteAt(addr)&(0x80>>(f.bitsOut%8)) != 0
	f.bitsOut++
}

// endSession records the finished command and applies its power-state
// effects.
func (f *SimFlash) endSession() {
	if f.bitsIn >= 8 {
		cmd := CapturedCmd{Opcode: f.leadOpcode(), Bits: f.bitsIn}
		if f.bitsIn >= CmdBits {
			cmd.Addr = f.addr()
		}
		f.commands = append(f.commands, cmd)

		switch {
		case f.down:
			if cmd.Opcode == OpReleasePowerDown {
				f.down = false
			}
		case cmd.Opcode == OpResetEnable:
			f.resetArmed = true
		case cmd.Opcode == OpReset:
			f.resetArmed = false
		}
	}

	f.bitsIn = 0
	f.cmdShift = 0
	f.bitsOut = 0
}

// leadOpcode extracts the first 8 bits shifted in.
func (f *SimFlash) leadOpcode() byte {
	captured := f.bitsIn
	if captured > CmdBits {
		captured = CmdBits
	}
	return byte(f.cmdShift >> uint(captured-8))
}

// addr extracts the 24-bit address field. Valid once a full command has been
// shifted in.
func (f *SimFlash) addr() uint32 {
	return f.cmdShift & AddrMask
}

// byteAt reads the backing contents; addresses outside the mapped range read
// as erased flash.
func (f *SimFlash) byteAt(addr uint32) byte {
	if addr < f.base || addr >= f.base+uint32(len(f.contents)) {
		return 0xFF
	}
	return f.contents[addr-f.base]
}
