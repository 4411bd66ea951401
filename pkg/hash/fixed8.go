package hash

import (
	"fmt"
	"math"
	"strconv"
)

// Fixed8Decimals is the fixed decimal scale of Fixed8: 10^8.
const Fixed8Decimals = 8

const fixed8Scale = 1_0000_0000

// Fixed8 is a signed 64-bit fixed-point decimal with 10^8 scale, used for
// asset amounts. All arithmetic is exact integer; overflow is a fatal error
// (the caller must not silently wrap).
type Fixed8 int64

// Fixed8FromInt64 builds a Fixed8 representing the given whole number.
func Fixed8FromInt64(n int64) Fixed8 {
	return Fixed8(n * fixed8Scale)
}

// Fixed8FromFloat64 builds a Fixed8 from a float64, rounding to the nearest
// 10^-8 unit. Only suitable for human input, never for consensus-critical
// recomputation of an existing on-chain value.
func Fixed8FromFloat64(f float64) Fixed8 {
	return Fixed8(math.Round(f * fixed8Scale))
}

// Int64Value returns the raw integer value (amount * 10^8).
func (f Fixed8) Int64Value() int64 {
	return int64(f)
}

// Float64 returns the decimal value as a float64, for display only.
func (f Fixed8) Float64() float64 {
	return float64(f) / fixed8Scale
}

// String renders the decimal value with up to 8 fractional digits, trailing
// zeros trimmed.
func (f Fixed8) String() string {
	sign := ""
	v := int64(f)
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := v / fixed8Scale
	frac := v % fixed8Scale
	if frac == 0 {
		return sign + strconv.FormatInt(whole, 10)
	}
	fracStr := fmt.Sprintf("%08d", frac)
	for len(fracStr) > 1 && fracStr[len(fracStr)-1] == '0' {
		fracStr = fracStr[:len(fracStr)-1]
	}
	return fmt.Sprintf("%s%d.%s", sign, whole, fracStr)
}

// Add returns f+other and false if the addition overflows int64.
func (f Fixed8) Add(other Fixed8) (Fixed8, bool) {
	sum := int64(f) + int64(other)
	if (other > 0 && sum < int64(f)) || (other < 0 && sum > int64(f)) {
		return 0, false
	}
	return Fixed8(sum), true
}

// Sub returns f-other and false if the subtraction overflows int64.
func (f Fixed8) Sub(other Fixed8) (Fixed8, bool) {
	return f.Add(-other)
}
