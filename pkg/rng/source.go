// Package rng provides the randomness sources behind die outcomes and spin
// timing. The default source draws from the operating system CSPRNG so
// outcomes are not predictable or reproducible from an external seed; a
// seeded source exists for deterministic tests.
package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/castdice/tumbler/pkg/domain"
)

// Spin duration bounds. Each die draws its own duration in [SpinMin, SpinMax).
const (
	SpinMin = 300 * time.Millisecond
	SpinMax = 600 * time.Millisecond
)

var faceRange = big.NewInt(int64(domain.MaxFace))

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// NewCryptoSource probes the entropy source once. A missing source is a
// platform precondition failure, reported here so the process can exit
// before any session is created.
func NewCryptoSource() (*CryptoSource, error) {
	var probe [8]byte
	if _, err := cryptorand.Read(probe[:]); err != nil {
		return nil, fmt.Errorf("entropy source unavailable: %w", err)
	}
	return &CryptoSource{}, nil
}

// Face returns a uniform value in [1,6]. crypto/rand.Int rejection-samples,
// so there is no modulo bias.
func (*CryptoSource) Face() int {
	n, err := cryptorand.Int(cryptorand.Reader, faceRange)
	if err != nil {
		// The source was probed at construction; losing it mid-run is not
		// a recoverable state.
		panic(fmt.Sprintf("rng: entropy source failed: %v", err))
	}
	return int(n.Int64()) + domain.MinFace
}

// Duration returns a uniform duration in [SpinMin, SpinMax).
func (*CryptoSource) Duration() time.Duration {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("rng: entropy source failed: %v", err))
	}
	// Top 53 bits give a uniform float in [0,1).
	f := float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
	return SpinMin + time.Duration(f*float64(SpinMax-SpinMin))
}

// SeededSource is a deterministic source for tests. Not suitable for real
// rolls. The mutex makes it safe for concurrent spins; draw order across
// goroutines is still scheduler-dependent.
type SeededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource creates a deterministic source from a seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

// Face returns a uniform value in [1,6].
func (s *SeededSource) Face() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(domain.MaxFace) + domain.MinFace
}

// Duration returns a uniform duration in [SpinMin, SpinMax).
func (s *SeededSource) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SpinMin + time.Duration(s.r.Float64()*float64(SpinMax-SpinMin))
}
