package blockdialect

import (
	"bytes"
	"math/rand"
	"testing"
)

// buildTestBlock assembles an 18-byte block from metadata and packed code
// bytes. Missing packed bytes are zero-filled.
func buildTestBlock(dialectID, sharedExp uint8, packed ...byte) []byte {
	block := make([]byte, BlockBytes)
	meta := Metadata{DialectID: dialectID, SharedExp: sharedExp}.Bytes()
	copy(block, meta[:])
	copy(block[MetadataBytes:], packed)
	return block
}

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name        string
		block       []byte
		wantDialect uint8
		wantExp     uint8
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "zero metadata",
			block:       []byte{0x00, 0x00},
			wantDialect: 0,
			wantExp:     0,
		},
		{
			name:        "dialect 6 exponent 1",
			block:       []byte{0x60, 0x80},
			wantDialect: 6,
			wantExp:     1,
		},
		{
			name:        "dialect 15 exponent 31",
			block:       []byte{0xFF, 0x80},
			wantDialect: 15,
			wantExp:     31,
		},
		{
			name:        "reserved bits ignored",
			block:       []byte{0xF2, 0xFF},
			wantDialect: 15,
			wantExp:     5,
		},
		{
			name:    "short input",
			block:   []byte{0x60},
			wantErr: true,
			errMsg:  "metadata requires 2 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := ParseMetadata(tt.block)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if meta.DialectID != tt.wantDialect {
				t.Errorf("DialectID = %d, want %d", meta.DialectID, tt.wantDialect)
			}

			if meta.SharedExp != tt.wantExp {
				t.Errorf("SharedExp = %d, want %d", meta.SharedExp, tt.wantExp)
			}
		})
	}
}

func TestMetadataBytesRoundTrip(t *testing.T) {
	for d := uint8(0); d < NumDialects; d++ {
		for e := uint8(0); e <= MaxSharedExp; e++ {
			b := Metadata{DialectID: d, SharedExp: e}.Bytes()
			meta, err := ParseMetadata(b[:])
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if meta.DialectID != d || meta.SharedExp != e {
				t.Fatalf("round trip (%d,%d) = (%d,%d)", d, e, meta.DialectID, meta.SharedExp)
			}
		}
	}
}

func TestDecode(t *testing.T) {
	// Packed nibble ramp: codes 0..7 then signed 8..F, remaining bytes zero.
	ramp := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	tests := []struct {
		name  string
		block []byte
		want  []int8
	}{
		{
			name:  "all zero block",
			block: buildTestBlock(0, 0),
			want:  make([]int8, BlockSize),
		},
		{
			name:  "linear dialect exponent 1 is identity on entries",
			block: buildTestBlock(6, 1, ramp...),
			want: append([]int8{
				0, 1, 2, 3, 4, 5, 6, 7,
				0, -1, -2, -3, -4, -5, -6, -7,
			}, make([]int8, 16)...),
		},
		{
			name:  "exponent 0 halves with round half up",
			block: buildTestBlock(6, 0, ramp...),
			want: append([]int8{
				0, 1, 1, 2, 2, 3, 3, 4,
				0, -1, -1, -2, -2, -3, -3, -4,
			}, make([]int8, 16)...),
		},
		{
			name:  "exponent 2 doubles entries",
			block: buildTestBlock(6, 2, ramp...),
			want: append([]int8{
				0, 2, 4, 6, 8, 10, 12, 14,
				0, -2, -4, -6, -8, -10, -12, -14,
			}, make([]int8, 16)...),
		},
		{
			name:  "large entries saturate at 127",
			block: buildTestBlock(15, 5, 0x76, 0x54, 0xFE, 0xDC),
			want: append([]int8{
				127, 127, 96, 64,
				-127, -127, -96, -64,
			}, make([]int8, 24)...),
		},
		{
			name:  "extreme exponent saturates every nonzero entry",
			block: buildTestBlock(6, 31, 0x19, 0x00),
			want:  append([]int8{127, -127}, make([]int8, 30)...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.block)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != BlockSize {
				t.Fatalf("decoded length = %d, want %d", len(got), BlockSize)
			}

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeShortInput(t *testing.T) {
	tests := []struct {
		name  string
		block []byte
	}{
		{name: "nil block", block: nil},
		{name: "metadata only", block: []byte{0x60, 0x80}},
		{name: "one byte short", block: make([]byte, BlockBytes-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.block); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestDecodeInto(t *testing.T) {
	block := buildTestBlock(6, 1, 0x12, 0x34)

	t.Run("short destination", func(t *testing.T) {
		dst := make([]int8, BlockSize-1)
		if err := DecodeInto(dst, block); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("buffer reuse overwrites previous content", func(t *testing.T) {
		dst := make([]int8, BlockSize)
		for i := range dst {
			dst[i] = 0x55
		}

		if err := DecodeInto(dst, block); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []int8{1, 2, 3, 4}
		for i, w := range want {
			if dst[i] != w {
				t.Errorf("element %d = %d, want %d", i, dst[i], w)
			}
		}
		for i := 4; i < BlockSize; i++ {
			if dst[i] != 0 {
				t.Errorf("element %d = %d, want 0", i, dst[i])
			}
		}
	})
}

func TestDecodeDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	block := make([]byte, BlockBytes)
	for run := 0; run < 100; run++ {
		rng.Read(block)

		first, err := Decode(block)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for repeat := 0; repeat < 3; repeat++ {
			again, err := Decode(block)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i := range first {
				if again[i] != first[i] {
					t.Fatalf("run %d repeat %d: element %d = %d, want %d",
						run, repeat, i, again[i], first[i])
				}
			}
		}
	}
}

func TestDecodeRange(t *testing.T) {
	// Every decodable value lies in [-127, 127]; -128 is unreachable.
	rng := rand.New(rand.NewSource(11))

	block := make([]byte, BlockBytes)
	for run := 0; run < 2000; run++ {
		rng.Read(block)

		values, err := Decode(block)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i, v := range values {
			if v < -127 || v > 127 {
				t.Fatalf("run %d element %d = %d, outside [-127, 127]", run, i, v)
			}
		}
	}
}

func TestDecodeZeroPreservation(t *testing.T) {
	// A block whose codes are all zero decodes to all zeros under every
	// dialect and exponent, since entry 0 of every dialect is 0.
	for d := uint8(0); d < NumDialects; d++ {
		for _, e := range []uint8{0, 1, 3, 5, 17, MaxSharedExp} {
			values, err := Decode(buildTestBlock(d, e))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, v := range values {
				if v != 0 {
					t.Fatalf("dialect %d exp %d: element %d = %d, want 0", d, e, i, v)
				}
			}
		}
	}
}

func TestDialectTableShape(t *testing.T) {
	for d, row := range Dialects {
		if row[0] != 0 {
			t.Errorf("dialect %d entry 0 = %d, want 0", d, row[0])
		}
		for i := 1; i < DialectEntries; i++ {
			if row[i] < row[i-1] {
				t.Errorf("dialect %d not sorted at entry %d: %d < %d", d, i, row[i], row[i-1])
			}
			if row[i] > 15 {
				t.Errorf("dialect %d entry %d = %d, exceeds 4 bits", d, i, row[i])
			}
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	block := buildTestBlock(6, 2, 0x12, 0x34, 0x56, 0x70, 0x9A, 0xBC, 0xDE, 0xF0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(block)
	}
}

func BenchmarkDecodeInto(b *testing.B) {
	block := buildTestBlock(6, 2, 0x12, 0x34, 0x56, 0x70, 0x9A, 0xBC, 0xDE, 0xF0)
	dst := make([]int8, BlockSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DecodeInto(dst, block)
	}
}
