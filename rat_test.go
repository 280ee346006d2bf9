package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRatFromVariousTypes(t *testing.T) {
	assert.Equal(t, "3", FormatRat(NewRat(3)))
	assert.Equal(t, "3", FormatRat(NewRat(int64(3))))
	assert.Equal(t, "0.5", FormatRat(NewRat(0.5)))
	assert.Equal(t, "0.5", FormatRat(NewRat("0.5")))
}

func TestNewRatInvalid(t *testing.T) {
	assert.Nil(t, NewRat("not-a-number"))
	assert.Nil(t, NewRat(true))
}

func TestRatExactComparisonAvoidsFloatRounding(t *testing.T) {
	// 0.1 + 0.2 != 0.3 in float64, but must compare equal as exact rationals.
	third := NewRat("0.3")
	tenth := NewRat("0.1")
	twoTenths := NewRat("0.2")

	combined := tenth.Add(tenth.Rat, twoTenths.Rat)
	assert.Equal(t, 0, combined.Cmp(third.Rat))
}

func TestFormatRatTrimsTrailingZeros(t *testing.T) {
	r := NewRat("1.2000")
	assert.Equal(t, "1.2", FormatRat(r))
}

func TestFormatRatNil(t *testing.T) {
	assert.Equal(t, "null", FormatRat(nil))
}
