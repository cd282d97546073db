package network

import (
	"math/rand"
	"sync"

	"github.com/thanhpk/randstr"
)

const (
	codeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// CodeGenerator produces booking codes: 6 characters drawn from A-Z0-9.
// Implementations must be safe for concurrent use.
type CodeGenerator interface {
	Code() string
}

// randomCodeGenerator draws codes from crypto-grade randomness. It is
// the generator a Manager uses unless one is injected.
type randomCodeGenerator struct{}

func (randomCodeGenerator) Code() string {
	return randstr.String(codeLength, codeAlphabet)
}

// SeededCodeGenerator produces a reproducible code sequence from a fixed
// seed, for deterministic tests.
type SeededCodeGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededCodeGenerator creates a generator seeded with seed.
func NewSeededCodeGenerator(seed int64) *SeededCodeGenerator {
	return &SeededCodeGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *SeededCodeGenerator) Code() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[g.rng.Intn(len(codeAlphabet))]
	}
	return string(code)
}
