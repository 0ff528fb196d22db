package verify

import (
	"math/rand"
)

// GenerateCorpus produces n deterministic pseudo-random blocks from the
// seed. Block i carries dialect i%16 and shared exponent (i/16)%32, so any
// run of 512 consecutive blocks covers every dialect/exponent combination;
// the packed code bytes are uniform random.
func GenerateCorpus(seed int64, n int) [][]byte {
	rng := rand.New(rand.NewSource(seed))

	corpus := make([][]byte, n)
	for i := range corpus {
		dialect := uint8(i % 16)
		sharedExp := uint8((i / 16) % 32)

		block := make([]byte, 18)
		block[0] = dialect<<4 | sharedExp>>1
		block[1] = (sharedExp & 1) << 7
		for j := 2; j < 18; j++ {
			block[j] = byte(rng.Intn(256))
		}
		corpus[i] = block
	}
	return corpus
}
