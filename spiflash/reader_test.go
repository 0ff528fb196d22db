package spiflash

import (
	"bytes"
	"testing"
)

func TestReaderReadAt(t *testing.T) {
	contents := make([]byte, 64)
	for i := range contents {
		contents[i] = byte(i + 1)
	}
	engine, _ := newTestEngine(contents)
	r := NewReader(engine, 0)

	tests := []struct {
		name string
		off  int64
		n    int
	}{
		{"aligned word", 0, 4},
		{"aligned span", 4, 16},
		{"unaligned start", 3, 8},
		{"unaligned both ends", 5, 7},
		{"single byte", 17, 1},
		{"block sized", 2, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.n)
			n, err := r.ReadAt(buf, tt.off)
			if err != nil {
				t.Fatalf("ReadAt failed: %v", err)
			}
			if n != tt.n {
				t.Errorf("Expected %d bytes, got %d", tt.n, n)
			}
			if !bytes.Equal(buf, contents[tt.off:tt.off+int64(tt.n)]) {
				t.Errorf("Expected % 02X, got % 02X", contents[tt.off:tt.off+int64(tt.n)], buf)
			}
		})
	}
}

func TestReaderBaseAddress(t *testing.T) {
	contents := []byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80}
	engine, _ := newTestEngine(contents)

	// Reader offset 0 maps to bus address 4.
	r := NewReader(engine, 4)

	buf := make([]byte, 4)
	if _, err := r.ReadAt(buf, 0); err != nil {
		t.Fatalf("ReadAt failed: %v", err)
	}
	if !bytes.Equal(buf, contents[4:8]) {
		t.Errorf("Expected % 02X, got % 02X", contents[4:8], buf)
	}
}

func TestReaderNegativeOffset(t *testing.T) {
	engine, _ := newTestEngine([]byte{1, 2, 3, 4})
	r := NewReader(engine, 0)

	if _, err := r.ReadAt(make([]byte, 4), -1); err == nil {
		t.Error("Expected error for negative offset, got nil")
	}
}

func TestReaderTimeoutPropagates(t *testing.T) {
	engine, _ := newTestEngine([]byte{1, 2, 3, 4}, WithTimeout(10))
	r := NewReader(engine, 0)

	n, err := r.ReadAt(make([]byte, 4), 0)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !IsHangError(err) {
		t.Fatalf("Expected HangError, got %T", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 bytes on timeout, got %d", n)
	}
}

func TestReaderWordEfficiency(t *testing.T) {
	contents := make([]byte, 32)
	engine, _ := newTestEngine(contents)
	r := NewReader(engine, 0)

	// 18 bytes starting at offset 2 touch words 0..4, one transaction each.
	if _, err := r.ReadAt(make([]byte, 18), 2); err != nil {
		t.Fatalf("ReadAt failed: %v", err)
	}
	if got := engine.Stats().WordsRead; got != 5 {
		t.Errorf("Expected 5 word reads, got %d", got)
	}
}
