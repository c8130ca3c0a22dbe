package codes

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	referenceRe = regexp.MustCompile(`^RSV[0-9A-Z]{9}$`)
	checkInRe   = regexp.MustCompile(`^[0-9]{6}$`)
)

func TestNewReferenceCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewReferenceCode()
		assert.Len(t, code, 12)
		assert.Regexp(t, referenceRe, code)
	}
}

func TestNewCheckInCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewCheckInCode()
		assert.Regexp(t, checkInRe, code)
	}
}

func TestCheckInCodeZeroPadding(t *testing.T) {
	// Sampling cannot prove padding, but every value must keep width 6
	// even when the sampled integer is small; exercise the formatter often
	// enough that short values would show up if padding were missing.
	seen := make(map[string]struct{})
	for i := 0; i < 2000; i++ {
		code := NewCheckInCode()
		assert.Len(t, code, 6)
		seen[code] = struct{}{}
	}
	// A degenerate generator returning a constant would fail here.
	assert.Greater(t, len(seen), 1)
}
