package vwb

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/x448/float16"

	"github.com/BigBoySanchez/go-vwb/blockdialect"
)

// Writer accumulates tensors and assembles them into a VWB1 blob.
// Tensors are emitted in the order they are added; the consumer reads them
// back in the same order.
type Writer struct {
	records [][]byte
}

// NewWriter returns an empty blob writer.
func NewWriter() *Writer {
	return &Writer{}
}

// AddTensor encodes an int8 tensor into one record. The tensor is split
// into blocks of 32 elements; the last block is zero-padded.
func (w *Writer) AddTensor(values []int8) error {
	if len(values) == 0 {
		return fmt.Errorf("tensor cannot be empty")
	}

	blocks := (len(values) + blockdialect.BlockSize - 1) / blockdialect.BlockSize

	record := make([]byte, RecordHeaderSize, RecordHeaderSize+blocks*blockdialect.BlockBytes)
	binary.LittleEndian.PutUint32(record[0:4], uint32(len(values)))
	binary.LittleEndian.PutUint32(record[4:8], uint32(blocks))

	var padded [blockdialect.BlockSize]int8
	for b := 0; b < blocks; b++ {
		chunk := values[b*blockdialect.BlockSize:]
		if len(chunk) > blockdialect.BlockSize {
			chunk = chunk[:blockdialect.BlockSize]
		}

		src := chunk
		if len(chunk) < blockdialect.BlockSize {
			copy(padded[:], chunk)
			for i := len(chunk); i < blockdialect.BlockSize; i++ {
				padded[i] = 0
			}
			src = padded[:]
		}

		block, err := blockdialect.Encode(src)
		if err != nil {
			return fmt.Errorf("tensor block %d: %w", b, err)
		}
		record = append(record, block...)
	}

	w.records = append(w.records, record)
	return nil
}

// AddTensorFloat32 quantizes a float32 tensor to int8 with symmetric
// per-tensor scaling and adds it. It returns the scale (max magnitude / 127)
// so the caller can record it alongside the blob.
func (w *Writer) AddTensorFloat32(values []float32) (float32, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("tensor cannot be empty")
	}

	quantized, scale := QuantizeSymmetric(values)
	if err := w.AddTensor(quantized); err != nil {
		return 0, err
	}
	return scale, nil
}

// AddTensorFloat16 converts IEEE half-precision bit patterns to float32 and
// adds them like AddTensorFloat32. This matches training-side weight dumps
// that store parameters as raw little-endian float16 words.
func (w *Writer) AddTensorFloat16(bits []uint16) (float32, error) {
	if len(bits) == 0 {
		return 0, fmt.Errorf("tensor cannot be empty")
	}

	values := make([]float32, len(bits))
	for i, b := range bits {
		values[i] = float16.Frombits(b).Float32()
	}
	return w.AddTensorFloat32(values)
}

// QuantizeSymmetric maps float32 values onto [-127, 127] int8 with a single
// per-tensor scale (max magnitude / 127; scale 1 for an all-zero tensor).
func QuantizeSymmetric(values []float32) ([]int8, float32) {
	var peak float32
	for _, v := range values {
		if a := float32(math.Abs(float64(v))); a > peak {
			peak = a
		}
	}

	scale := float32(1)
	if peak > 0 {
		scale = peak / 127
	}

	out := make([]int8, len(values))
	for i, v := range values {
		q := math.Round(float64(v / scale))
		if q > 127 {
			q = 127
		} else if q < -127 {
			q = -127
		}
		out[i] = int8(q)
	}
	return out, scale
}

// TensorCount reports how many tensors have been added.
func (w *Writer) TensorCount() int {
	return len(w.records)
}

// Bytes assembles the blob: header, then each record padded to the record
// boundary.
func (w *Writer) Bytes() ([]byte, error) {
	if len(w.records) == 0 {
		return nil, fmt.Errorf("blob has no tensors")
	}

	payload := 0
	for _, r := range w.records {
		payload = Align(payload + len(r))
	}

	header := Header{
		Magic:       MagicBlock,
		PayloadSize: uint32(payload),
		BlockSize:   blockdialect.BlockSize,
	}.Bytes()

	blob := make([]byte, 0, HeaderSize+payload)
	blob = append(blob, header[:]...)
	for _, r := range w.records {
		blob = append(blob, r...)
		for len(blob)%Alignment != 0 {
			blob = append(blob, 0)
		}
	}
	return blob, nil
}

// WriteTo writes the assembled blob to wr.
func (w *Writer) WriteTo(wr io.Writer) (int64, error) {
	blob, err := w.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := wr.Write(blob)
	return int64(n), err
}
