package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"math/rand"
	"time"

	"go.dedis.ch/kyber/v4/suites"
)

// Shuffler produces a uniform random permutation of n items through swap.
// *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

var suite suites.Suite = suites.MustFind("Ed25519")

// NewSeededShuffler returns a Fisher-Yates shuffler over math/rand.
// The same non-zero seed always yields the same permutation; 0 picks a time-based seed.
func NewSeededShuffler(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewSecureShuffler returns a Fisher-Yates shuffler fed by the random stream
// of the Ed25519 suite, so the order cannot be predicted from earlier rounds.
func NewSecureShuffler() *rand.Rand {
	return rand.New(streamSource{stream: suite.RandomStream()})
}

// streamSource adapts a cipher.Stream to rand.Source64.
type streamSource struct {
	stream cipher.Stream
}

func (s streamSource) Uint64() uint64 {
	var buf [8]byte
	s.stream.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

func (s streamSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed is a no-op: the stream cannot be reseeded.
func (s streamSource) Seed(int64) {}
