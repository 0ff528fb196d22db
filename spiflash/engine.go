package spiflash

import (
	"math/bits"
)

// Pins carries the engine-driven side of the four-wire link for one
// effective tick.
type Pins struct {
	// Select is the chip-select line, true while asserted (physically active low)
	Select bool

	// Clock is the serial clock line; idles low (Mode 0)
	Clock bool

	// MOSI is the engine-to-device data line
	MOSI bool
}

// Bus is the device side of the link. Update presents the pin state for one
// effective tick and returns the device-driven MISO line. Devices sample
// MOSI on the rising clock edge and shift MISO on the falling edge.
type Bus interface {
	Update(pins Pins) bool
}

// Cmd is one bus request. Reads target a word-aligned address inside the
// weight window; writes are acknowledged and discarded, nothing is ever
// written to flash.
type Cmd struct {
	// Write selects between a read and a (discarded) write
	Write bool

	// Address is the bus byte address; bits 1:0 are ignored
	Address uint32

	// Data is the write payload (unused)
	Data uint32

	// Mask is the write byte mask (unused)
	Mask uint8
}

// Stats counts engine traffic since construction.
type Stats struct {
	// Reads is the number of accepted read requests
	Reads int

	// WordsRead is the number of completed read transactions
	WordsRead int

	// WritesDropped is the number of acknowledged-and-discarded writes
	WritesDropped int

	// WakeCommands is the number of wake opcodes issued
	WakeCommands int

	// Ticks is the number of main-clock ticks consumed
	Ticks uint64

	// EffectiveTicks is the number of state-machine steps taken
	EffectiveTicks uint64
}

// BytesRead reports the completed read traffic in bytes.
func (s Stats) BytesRead() int {
	return s.WordsRead * 4
}

// Engine drives the flash link. It accepts one read request at a time,
// shifts the READ command and address out, shifts the response word in and
// presents it byte-swapped. All progress happens inside Tick; the engine
// never blocks on the device.
//
// Engine is not safe for concurrent use; it models a single hardware block
// on a single clock.
type Engine struct {
	bus    Bus
	config Config

	state    State
	prescale uint32
	shiftOut uint32
	shiftIn  uint32
	bitCount uint32
	inWake   bool

	awake     bool
	wakeStep  uint8
	delayLeft uint32

	hasPending  bool
	pendingAddr uint32

	rspValid bool
	rspData  uint32

	stats Stats
}

// New creates an Engine attached to the given bus.
//
// Example:
//
//	flash := spiflash.NewSimFlash(0x400000, blob)
//	engine := spiflash.New(flash,
//	    spiflash.WithOffset(0x400000),
//	    spiflash.WithWake(true),
//	)
func New(bus Bus, opts ...Option) *Engine {
	if bus == nil {
		panic("bus cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		bus:    bus,
		config: cfg,
	}
}

// Submit offers a request to the engine and reports whether it was accepted.
// Reads are accepted only while the engine is idle with no read outstanding;
// a rejected request should be resubmitted on a later tick (backpressure).
// Writes are accepted whenever the engine is between transactions and are
// discarded. An accepted read submitted during the wake handshake is held
// until the handshake completes.
func (e *Engine) Submit(cmd Cmd) bool {
	if e.state != StateIdle {
		return false
	}

	if cmd.Write {
		e.stats.WritesDropped++
		return true
	}

	if e.hasPending {
		return false
	}

	e.pendingAddr = (e.config.Offset + (cmd.Address &^ 3)) & AddrMask
	e.hasPending = true
	e.stats.Reads++
	return true
}

// Ready reports whether a read request would be accepted right now.
func (e *Engine) Ready() bool {
	return e.state == StateIdle && !e.hasPending
}

// Response returns the completed read word. The second return is true for
// exactly one effective tick, when the transaction is in FINISH.
func (e *Engine) Response() (uint32, bool) {
	return e.rspData, e.rspValid
}

// State returns the current transaction state.
func (e *Engine) State() State {
	return e.state
}

// Awake reports whether the wake handshake has completed. Always false
// before the first read when the wake option is enabled, always true when
// it is disabled.
func (e *Engine) Awake() bool {
	return !e.config.Wake || e.awake
}

// Stats returns a snapshot of the traffic counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Tick advances the engine by one main-clock tick. The state machine steps
// once every Divider+1 ticks.
func (e *Engine) Tick() {
	e.stats.Ticks++
	if e.prescale > 0 {
		e.prescale--
		return
	}
	e.prescale = e.config.Divider
	e.step()
}

// step performs one state transition and drives the bus pins for the new
// clock phase.
func (e *Engine) step() {
	e.stats.EffectiveTicks++
	e.rspValid = false

	switch e.state {
	case StateIdle:
		e.bus.Update(Pins{})
		if e.delayLeft > 0 {
			e.delayLeft--
			return
		}
		if e.config.Wake && !e.awake {
			e.shiftOut = uint32(wakeSequence[e.wakeStep]) << 24
			e.bitCount = 0
			e.inWake = true
			e.state = StateSetupBit
			return
		}
		if e.hasPending {
			e.shiftOut = uint32(OpRead)<<24 | e.pendingAddr
			e.bitCount = 0
			e.inWake = false
			e.state = StateSetupBit
		}

	case StateSetupBit:
		e.bus.Update(Pins{Select: true, MOSI: e.mosiBit()})
		e.state = StateClockHi

	case StateClockHi:
		e.bus.Update(Pins{Select: true, Clock: true, MOSI: e.mosiBit()})
		e.state = StateClockLo

	case StateClockLo:
		// Falling edge: shift, then set up the next bit while the clock
		// is low (Mode 0).
		e.shiftOut <<= 1
		e.bitCount++
		e.bus.Update(Pins{Select: true, MOSI: e.mosiBit()})
		switch {
		case e.bitCount < CmdBits:
			e.state = StateClockHi
		case e.inWake:
			e.state = StateFinish
		default:
			e.bitCount = 0
			e.shiftIn = 0
			e.state = StateReadSetup
		}

	case StateReadSetup:
		// Turnaround: the device placed its first data bit on the last
		// falling edge of the command phase.
		e.bus.Update(Pins{Select: true})
		e.state = StateReadHi

	case StateReadHi:
		// Rising edge: sample MISO.
		miso := e.bus.Update(Pins{Select: true, Clock: true})
		e.shiftIn <<= 1
		if miso {
			e.shiftIn |= 1
		}
		e.bitCount++
		e.state = StateReadLo

	case StateReadLo:
		e.bus.Update(Pins{Select: true})
		if e.bitCount == DataBits {
			e.state = StateFinish
		} else {
			e.state = StateReadHi
		}

	case StateFinish:
		// Deasserting select ends the device-side command session.
		e.bus.Update(Pins{})
		if e.inWake {
			e.inWake = false
			e.wakeStep++
			e.delayLeft = e.config.WakeDelay
			e.stats.WakeCommands++
			if int(e.wakeStep) == len(wakeSequence) {
				e.awake = true
			}
		} else {
			e.rspData = bits.ReverseBytes32(e.shiftIn)
			e.rspValid = true
			e.hasPending = false
			e.stats.WordsRead++
		}
		e.state = StateIdle
	}
}

// mosiBit returns the bit currently presented on MOSI (MSB of the outgoing
// shift register).
func (e *Engine) mosiBit() bool {
	return e.shiftOut&0x80000000 != 0
}

// ReadWord submits a read for the word at the given bus address and ticks
// the engine until the response arrives. With no timeout configured a dead
// device hangs this call, matching the fail-stop hardware behavior; use
// WithTimeout to bound the wait.
func (e *Engine) ReadWord(address uint32) (uint32, error) {
	var waited uint64

	for !e.Submit(Cmd{Address: address}) {
		e.Tick()
		waited++
		if e.config.Timeout > 0 && waited >= e.config.Timeout {
			return 0, &HangError{Ticks: waited}
		}
	}

	for {
		e.Tick()
		waited++
		if word, ok := e.Response(); ok {
			return word, nil
		}
		if e.config.Timeout > 0 && waited >= e.config.Timeout {
			return 0, &HangError{Ticks: waited}
		}
	}
}
