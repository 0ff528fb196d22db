package weightstream

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/BigBoySanchez/go-vwb/blockdialect"
	"github.com/BigBoySanchez/go-vwb/vwb"
)

// ScratchElements is the decode scratch capacity. It mirrors the fixed
// decode buffer of the embedded consumer, which tops out at the largest
// batch-norm tensor plus headroom.
const ScratchElements = 512

// Stream is a sequential cursor over an encoded weight blob. Create one
// with New, call Reset to validate the header, then pull tensors in blob
// order with ReadTensor.
//
// Stream is not safe for concurrent use; reads share one scratch buffer.
type Stream struct {
	src    io.ReaderAt
	config Config

	header    vwb.Header
	cursor    int64
	end       int64
	bytesRead int
	tensors   int
	ready     bool

	scratch [ScratchElements]int8
}

// New creates a Stream over the given backing store.
//
// Example:
//
//	stream := weightstream.New(bytes.NewReader(blob),
//	    weightstream.WithLogger(myLogger),
//	)
func New(src io.ReaderAt, opts ...Option) *Stream {
	if src == nil {
		panic("src cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Stream{
		src:    src,
		config: cfg,
	}
}

// Reset reads and validates the blob header, then rewinds the cursor to the
// first tensor record. Both producer variants are accepted. Must be called
// before the first ReadTensor and may be called again to rewind.
func (s *Stream) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cancelled: %w", err)
	}

	var raw [vwb.HeaderSize]byte
	if _, err := s.src.ReadAt(raw[:], 0); err != nil {
		return fmt.Errorf("header read: %w", err)
	}

	header, err := vwb.ParseHeader(raw[:])
	if err != nil {
		return &FormatError{Offset: 0, Reason: err.Error()}
	}

	s.header = header
	s.cursor = vwb.HeaderSize
	s.end = vwb.HeaderSize + int64(header.PayloadSize)
	s.bytesRead = vwb.HeaderSize
	s.tensors = 0
	s.ready = true

	s.logDebug("stream reset",
		"magic", fmt.Sprintf("0x%08X", header.Magic),
		"payload", header.PayloadSize,
	)
	return nil
}

// ReadTensor reads the tensor record at the cursor, decodes its blocks and
// returns the first expected elements. The record's own element count is
// advisory; the consumer knows its shapes, so a mismatch is logged and
// tolerated as long as the blocks cover the expectation. The returned slice
// aliases the scratch buffer and is valid until the next call.
func (s *Stream) ReadTensor(ctx context.Context, expected int) ([]int8, error) {
	if !s.ready {
		return nil, &FormatError{Offset: 0, Reason: "stream not reset"}
	}
	if expected < 0 || expected > ScratchElements {
		return nil, fmt.Errorf("expected element count %d out of range", expected)
	}

	var raw [vwb.RecordHeaderSize]byte
	if _, err := s.src.ReadAt(raw[:], s.cursor); err != nil {
		return nil, fmt.Errorf("record header read at offset %d: %w", s.cursor, err)
	}
	elements := binary.LittleEndian.Uint32(raw[0:4])
	blocks := binary.LittleEndian.Uint32(raw[4:8])

	if blocks == 0 {
		return nil, &FormatError{Offset: s.cursor, Reason: "zero block count"}
	}
	if int64(blocks) > ScratchElements/blockdialect.BlockSize {
		return nil, &OverrunError{Blocks: int(blocks), Capacity: ScratchElements}
	}

	total := int(blocks) * blockdialect.BlockSize
	if expected > total {
		return nil, &FormatError{
			Offset: s.cursor,
			Reason: fmt.Sprintf("record provides %d elements, caller expects %d", total, expected),
		}
	}

	recordEnd := s.cursor + vwb.RecordHeaderSize + int64(blocks)*blockdialect.BlockBytes
	if recordEnd > s.end {
		return nil, &FormatError{
			Offset: s.cursor,
			Reason: fmt.Sprintf("record ends at %d, payload ends at %d", recordEnd, s.end),
		}
	}

	if int(elements) != expected {
		s.logError("element count mismatch",
			"offset", s.cursor,
			"recorded", elements,
			"expected", expected,
		)
	}

	pos := s.cursor + vwb.RecordHeaderSize
	var block [blockdialect.BlockBytes]byte
	for b := 0; b < int(blocks); b++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		if _, err := s.src.ReadAt(block[:], pos); err != nil {
			return nil, fmt.Errorf("block read at offset %d: %w", pos, err)
		}
		if err := blockdialect.DecodeInto(s.scratch[b*blockdialect.BlockSize:], block[:]); err != nil {
			return nil, fmt.Errorf("block %d at offset %d: %w", b, pos, err)
		}
		pos += blockdialect.BlockBytes
	}

	s.cursor = vwb.Align(recordEnd)
	s.bytesRead += vwb.RecordHeaderSize + int(blocks)*blockdialect.BlockBytes
	s.tensors++

	s.logDebug("tensor read",
		"index", s.tensors,
		"elements", expected,
		"blocks", blocks,
		"offset", s.cursor,
	)
	s.reportProgress(Progress{
		TensorIndex: s.tensors,
		Elements:    expected,
		Blocks:      int(blocks),
		Offset:      s.cursor,
		BytesRead:   s.bytesRead,
	})

	return s.scratch[:expected], nil
}

// Header returns the blob header parsed by the last Reset.
func (s *Stream) Header() vwb.Header {
	return s.header
}

// Offset returns the cursor position, always 4-byte aligned after a read.
func (s *Stream) Offset() int64 {
	return s.cursor
}

// BytesRead returns the cumulative header and block traffic since Reset,
// excluding alignment padding.
func (s *Stream) BytesRead() int {
	return s.bytesRead
}

// TensorsRead returns the number of tensors returned since Reset.
func (s *Stream) TensorsRead() int {
	return s.tensors
}

// reportProgress calls the progress callback if configured.
func (s *Stream) reportProgress(progress Progress) {
	if s.config.ProgressCallback != nil {
		s.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (s *Stream) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (s *Stream) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
