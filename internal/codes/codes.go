// Package codes generates the human-facing values attached to a confirmed
// reservation. Both values are opaque display strings; all internal lookups
// use the reservation's own identifier.
package codes

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// ReferencePrefix is the fixed leading segment of every reference code.
const ReferencePrefix = "RSV"

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReferenceCode returns a 12-character reference code: the fixed 3-letter
// prefix followed by 9 random base-36 characters. Collisions are accepted as
// negligible; the code is never used as a lookup key.
func NewReferenceCode() string {
	buf := make([]byte, len(ReferencePrefix)+9)
	copy(buf, ReferencePrefix)
	for i := len(ReferencePrefix); i < len(buf); i++ {
		buf[i] = base36[randomInt(int64(len(base36)))]
	}
	return string(buf)
}

// NewCheckInCode returns exactly 6 ASCII digits, zero-padded, uniformly
// sampled over [0, 999999].
func NewCheckInCode() string {
	return fmt.Sprintf("%06d", randomInt(1000000))
}

func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		panic(err)
	}
	return n.Int64()
}
