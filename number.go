package jsondec

import "strconv"

// Number represents a JSON number as its verbatim literal text. Decoders
// produce Number values instead of int64/float64 when Config.PreserveNumbers
// is set, so callers can defer precision decisions.
type Number string

// String returns the literal text of the number
func (n Number) String() string {
	return string(n)
}

// Int64 returns the number as an int64
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 returns the number as a float64
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// IsInt reports whether the literal has no fractional or exponent part
func (n Number) IsInt() bool {
	for i := 0; i < len(n); i++ {
		switch n[i] {
		case '.', 'e', 'E':
			return false
		}
	}
	return len(n) > 0
}
