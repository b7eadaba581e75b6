package internal

// IsSpace reports whether c is insignificant whitespace as defined by
// RFC 8259 section 2 (space, horizontal tab, line feed, carriage return).
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// IsDigit reports whether c is an ASCII decimal digit
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit reports whether c is an ASCII hexadecimal digit
func IsHexDigit(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// HexValue returns the numeric value of a hexadecimal digit, or -1 if c
// is not a hexadecimal digit
func HexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// IsWordChar returns true if the character is part of a word (alphanumeric or underscore)
func IsWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

// IsNumberChar reports whether c can appear anywhere inside a JSON number
// literal. Used by the scanners to delimit a number token; the collected
// literal is validated afterwards with IsValidJSONNumber.
func IsNumberChar(c byte) bool {
	return IsDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

// IsValidJSONNumber validates if a string represents a valid JSON number format
// according to RFC 8259. Supports integers, decimals, and scientific notation.
func IsValidJSONNumber(s string) bool {
	if len(s) == 0 {
		return false
	}

	i := 0

	// Optional leading minus sign
	if s[0] == '-' {
		i = 1
		if i >= len(s) {
			return false
		}
	}

	// Integer part
	if s[i] == '0' {
		i++
	} else if s[i] >= '1' && s[i] <= '9' {
		i++
		for i < len(s) && IsDigit(s[i]) {
			i++
		}
	} else {
		return false
	}

	// Optional fractional part
	if i < len(s) && s[i] == '.' {
		i++
		if i >= len(s) || !IsDigit(s[i]) {
			return false
		}
		i++
		for i < len(s) && IsDigit(s[i]) {
			i++
		}
	}

	// Optional exponent part
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i >= len(s) || !IsDigit(s[i]) {
			return false
		}
		i++
		for i < len(s) && IsDigit(s[i]) {
			i++
		}
	}

	return i == len(s)
}
