package verify

import (
	"fmt"

	"github.com/BigBoySanchez/go-vwb/blockdialect"
	"github.com/BigBoySanchez/go-vwb/hwdecoder"
)

// MismatchError reports a disagreement between the decode implementations
// on one block. It carries the block and all three outputs so the failing
// case can be replayed directly.
type MismatchError struct {
	// Block is the 18-byte input
	Block []byte

	// Index is the first differing element
	Index int

	// Reference, Hardware and Firmware are the three outputs
	Reference []int8
	Hardware  []int8
	Firmware  []int8
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("decode mismatch at element %d: reference %d, hardware %d, firmware %d (block % 02X)",
		e.Index, e.Reference[e.Index], e.Hardware[e.Index], e.Firmware[e.Index], e.Block)
}

// IsMismatchError checks if an error is a MismatchError.
func IsMismatchError(err error) bool {
	_, ok := err.(*MismatchError)
	return ok
}

// CrossCheck decodes one block with the reference codec, the register-level
// hardware model and the firmware byte walker, and fails unless all three
// outputs are byte-identical.
func CrossCheck(block []byte) error {
	return crossCheck(hwdecoder.New(), block)
}

// CrossCheckCorpus generates a corpus and cross-checks every block,
// stopping at the first disagreement. Covering all dialect/exponent
// combinations takes 512 blocks; larger counts add random code coverage.
func CrossCheckCorpus(seed int64, n int) error {
	dec := hwdecoder.New()
	for i, block := range GenerateCorpus(seed, n) {
		if err := crossCheck(dec, block); err != nil {
			return fmt.Errorf("corpus block %d: %w", i, err)
		}
	}
	return nil
}

func crossCheck(dec *hwdecoder.Decoder, block []byte) error {
	reference, err := blockdialect.Decode(block)
	if err != nil {
		return fmt.Errorf("reference decode: %w", err)
	}
	hardware, err := dec.DecodeBlock(block)
	if err != nil {
		return fmt.Errorf("hardware decode: %w", err)
	}
	firmware, err := FirmwareDecode(block)
	if err != nil {
		return fmt.Errorf("firmware decode: %w", err)
	}

	for i := range reference {
		if reference[i] != hardware[i] || reference[i] != firmware[i] {
			return &MismatchError{
				Block:     block,
				Index:     i,
				Reference: reference,
				Hardware:  hardware,
				Firmware:  firmware,
			}
		}
	}
	return nil
}
