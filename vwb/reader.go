package vwb

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/BigBoySanchez/go-vwb/blockdialect"
)

// Tensor is one decoded tensor record.
type Tensor struct {
	// Elements is the valid element count from the record header
	Elements int

	// Blocks is the block count from the record header
	Blocks int

	// Offset is the record's byte offset within the blob
	Offset int64

	// Values holds all decoded elements (Blocks * 32); entries past
	// Elements come from the last block's zero padding
	Values []int8
}

// Data returns the valid elements of the tensor.
func (t *Tensor) Data() []int8 {
	return t.Values[:t.Elements]
}

// Blob is a fully parsed weight blob.
type Blob struct {
	Header  Header
	Tensors []Tensor
}

// Parse reads and decodes a weight blob from a file.
func Parse(path string) (*Blob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader reads and decodes a weight blob from r.
func ParseReader(r io.Reader) (*Blob, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return parseBytes(data)
}

func parseBytes(data []byte) (*Blob, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	end := int64(HeaderSize) + int64(header.PayloadSize)
	if end > int64(len(data)) {
		return nil, fmt.Errorf("payload size %d exceeds blob length %d",
			header.PayloadSize, len(data))
	}

	blob := &Blob{Header: header}

	pos := int64(HeaderSize)
	for pos < end {
		tensor, next, err := parseRecord(data, pos, end)
		if err != nil {
			return nil, fmt.Errorf("tensor %d at offset %d: %w", len(blob.Tensors), pos, err)
		}
		blob.Tensors = append(blob.Tensors, tensor)
		pos = Align(next)
	}

	return blob, nil
}

func parseRecord(data []byte, pos, end int64) (Tensor, int64, error) {
	if pos+RecordHeaderSize > end {
		return Tensor{}, 0, fmt.Errorf("truncated record header")
	}

	elements := binary.LittleEndian.Uint32(data[pos : pos+4])
	blocks := binary.LittleEndian.Uint32(data[pos+4 : pos+8])

	if blocks == 0 || int64(elements) > int64(blocks)*blockdialect.BlockSize {
		return Tensor{}, 0, fmt.Errorf("inconsistent record header: %d elements in %d blocks",
			elements, blocks)
	}

	next := pos + RecordHeaderSize + int64(blocks)*blockdialect.BlockBytes
	if next > end {
		return Tensor{}, 0, fmt.Errorf("record extends past payload end")
	}

	tensor := Tensor{
		Elements: int(elements),
		Blocks:   int(blocks),
		Offset:   pos,
		Values:   make([]int8, int(blocks)*blockdialect.BlockSize),
	}

	blockPos := pos + RecordHeaderSize
	for b := 0; b < tensor.Blocks; b++ {
		dst := tensor.Values[b*blockdialect.BlockSize:]
		if err := blockdialect.DecodeInto(dst, data[blockPos:blockPos+blockdialect.BlockBytes]); err != nil {
			return Tensor{}, 0, fmt.Errorf("block %d: %w", b, err)
		}
		blockPos += blockdialect.BlockBytes
	}

	return tensor, next, nil
}
