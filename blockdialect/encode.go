package blockdialect

import (
	"fmt"
)

// Encode converts exactly BlockSize signed 8-bit values into one 18-byte
// block. It is the offline host-side inverse of Decode:
//
//  1. Pick the smallest shared exponent that brings the peak magnitude
//     into the representable range (entries reach 15, i.e. real 7.5*2^e).
//  2. Scale all magnitudes into 0.5-granularity units at that exponent.
//  3. Select the dialect with the lowest squared quantization error.
//  4. Map each magnitude to its nearest entry and pack sign+index codes.
//
// Encoding is lossy; see the round-trip notes in the package documentation.
func Encode(block []int8) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("block must be exactly %d values, got %d", BlockSize, len(block))
	}

	var signs [BlockSize]bool
	var mags [BlockSize]int32
	peak := int32(0)
	for i, v := range block {
		m := int32(v)
		if m < 0 {
			signs[i] = true
			m = -m
		}
		mags[i] = m
		if m > peak {
			peak = m
		}
	}

	exp := sharedExponent(peak)

	// Scale to 0.5-granularity units: scaled = round(mag*2 / 2^exp),
	// round half up, clamped to the 4-bit entry range.
	var scaled [BlockSize]int32
	for i, m := range mags {
		s := m << 1
		if exp > 0 {
			s = (s + int32(1)<<(exp-1)) >> exp
		}
		if s > 15 {
			s = 15
		}
		scaled[i] = s
	}

	dialectID := selectDialect(&scaled)
	dialect := &Dialects[dialectID]

	var codes [BlockSize]uint8
	for i, s := range scaled {
		code := quantizeIndex(s, dialect)
		if signs[i] {
			code |= 0x08
		}
		codes[i] = code
	}

	meta := Metadata{DialectID: dialectID, SharedExp: exp}.Bytes()

	out := make([]byte, BlockBytes)
	copy(out, meta[:])
	for i := 0; i < PackedBytes; i++ {
		out[MetadataBytes+i] = codes[2*i]<<4 | codes[2*i+1]&0x0F
	}
	return out, nil
}

// sharedExponent returns the smallest exponent e >= 0 such that the peak
// magnitude fits the dialect range: peak <= 0.5 * 15 * 2^e. Peaks up to 7
// need no scaling.
func sharedExponent(peak int32) uint8 {
	for e := uint8(0); e < MaxSharedExp; e++ {
		if int64(peak)<<1 <= int64(15)<<e {
			return e
		}
	}
	return MaxSharedExp
}

// selectDialect returns the dialect minimizing the summed squared error of
// quantizing the scaled magnitudes. Ties resolve to the lowest dialect ID.
func selectDialect(scaled *[BlockSize]int32) uint8 {
	best := uint8(0)
	bestErr := int64(-1)

	for d := range Dialects {
		var sse int64
		for _, s := range scaled {
			q := int32(Dialects[d][quantizeIndex(s, &Dialects[d])])
			diff := int64(s - q)
			sse += diff * diff
		}
		if bestErr < 0 || sse < bestErr {
			bestErr = sse
			best = uint8(d)
		}
	}
	return best
}

// quantizeIndex returns the 3-bit index of the dialect entry nearest to the
// scaled magnitude. Ties resolve to the lowest index.
func quantizeIndex(scaled int32, dialect *[DialectEntries]uint8) uint8 {
	best := uint8(0)
	bestDist := distance(scaled, int32(dialect[0]))
	for i := 1; i < DialectEntries; i++ {
		if d := distance(scaled, int32(dialect[i])); d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

func distance(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}
