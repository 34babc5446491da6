package lottery

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
	"sync"
)

// RandomSource yields uniform integers in [0, n). n is always > 0.
type RandomSource interface {
	IntN(n int) int
}

// standardSource uses the shared math/rand/v2 generator.
// Uniform, safe for concurrent use, not unpredictable.
type standardSource struct{}

func (standardSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // Uniformity is the only requirement for draws
}

// NewStandardSource returns the default random source
func NewStandardSource() RandomSource {
	return standardSource{}
}

// secureSource draws from a cryptographic reader.
// A failed read panics; it never degrades to a weaker generator.
type secureSource struct {
	reader io.Reader
}

func (s secureSource) IntN(n int) int {
	v, err := crand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Errorf(ErrMsgSecureSourceFailed, err))
	}
	return int(v.Int64())
}

// NewSecureSource returns a random source backed by crypto/rand
func NewSecureSource() RandomSource {
	return secureSource{reader: crand.Reader}
}

// seededSource is a reproducible PCG stream
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// NewSeededSource returns a deterministic random source for tests and replays
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // Deterministic replay stream
}

// NewSourceForMode maps a configured mode name to a random source
func NewSourceForMode(mode string) (RandomSource, error) {
	switch mode {
	case "", RNGModeStandard:
		return NewStandardSource(), nil
	case RNGModeSecure:
		return NewSecureSource(), nil
	default:
		return nil, fmt.Errorf(ErrMsgUnknownRNGMode, mode)
	}
}
