package generator

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

type cryptoSource struct{}

func (cryptoSource) Int63() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]) & (1<<63 - 1))
}

func (cryptoSource) Seed(int64) {}

// NewCryptoSource returns a RandomSource backed by crypto/rand.
func NewCryptoSource() *mathrand.Rand {
	return mathrand.New(cryptoSource{})
}

// NewSeededSource returns a deterministic RandomSource.
func NewSeededSource(seed int64) *mathrand.Rand {
	return mathrand.New(mathrand.NewSource(seed))
}
