package verify

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		values []int8
		want   uint32
	}{
		{"empty", nil, 0},
		{"one", []int8{1}, 1},
		{"negative one wraps", []int8{-1}, 0xFFFFFFFF},
		{"cancellation", []int8{1, -1}, 0},
		{"peak pair", []int8{127, 127}, 254},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.values))
		})
	}
}

func TestHashOrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	values := make([]int8, 256)
	for i := range values {
		values[i] = int8(rng.Intn(256) - 128)
	}
	want := Hash(values)

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	assert.Equal(t, want, Hash(values))
}

func TestHashMatchesWideSum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		values := make([]int8, 1+rng.Intn(512))
		var sum int64
		for i := range values {
			values[i] = int8(rng.Intn(256) - 128)
			sum += int64(values[i])
		}
		require.Equal(t, uint32(sum), Hash(values))
	}
}

func TestFingerprint(t *testing.T) {
	a := []int8{1, 2, 3, -4}
	b := []int8{1, 2, 3, -4}
	c := []int8{1, 2, 3, 4}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))

	// Sign matters even though the raw bytes alias.
	assert.NotEqual(t, Fingerprint([]int8{-1}), Fingerprint([]int8{1}))
}

func BenchmarkHash(b *testing.B) {
	values := make([]int8, 4096)
	for i := range values {
		values[i] = int8(i)
	}
	b.SetBytes(int64(len(values)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Hash(values)
	}
}
