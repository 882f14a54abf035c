package argparse

import (
	"math"
	"strconv"
	"strings"
)

// coerce converts a raw token into a scalar of kind k. It never fails:
// text that does not start with a number becomes 0, and anything but the
// exact word "true" is false. KindNone and KindString keep the token as is.
func coerce(token string, k Kind) Value {
	switch k {
	case KindInt:
		return Int(leadingInt(token))
	case KindDouble:
		return Double(leadingFloat(token))
	case KindBool:
		return Bool(token == "true")
	default:
		return String(token)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// leadingInt reads optional whitespace, an optional sign and a run of
// decimal digits. Values beyond the int range saturate.
func leadingInt(s string) int {
	s = skipSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n uint64
	limit := uint64(math.MaxInt)
	if neg {
		limit++
	}
	saturated := false
	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		if saturated {
			continue
		}
		d := uint64(s[i] - '0')
		if n > (limit-d)/10 {
			n = limit
			saturated = true
			continue
		}
		n = n*10 + d
	}

	if neg {
		if n == uint64(math.MaxInt)+1 {
			return math.MinInt
		}
		return -int(n)
	}
	return int(n)
}

// leadingFloat parses the longest floating-point literal at the start of s:
// decimal with optional fraction and exponent, hexadecimal with optional
// binary exponent, or the words inf, infinity and nan in any case.
func leadingFloat(s string) float64 {
	s = skipSpace(s)
	lit := floatPrefix(s)
	if lit == "" {
		return 0
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// ErrRange still carries the saturated value.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return 0
	}
	return f
}

// floatPrefix returns the literal ParseFloat should see, or "".
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	sign, rest := s[:i], s[i:]

	lower := strings.ToLower(rest)
	switch {
	case strings.HasPrefix(lower, "infinity"):
		return sign + "infinity"
	case strings.HasPrefix(lower, "inf"):
		return sign + "inf"
	case strings.HasPrefix(lower, "nan"):
		return "nan"
	}

	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		if lit, ok := hexPrefix(rest[2:]); ok {
			return sign + "0x" + lit
		}
	}

	j := 0
	digits := 0
	for j < len(rest) && isDigit(rest[j]) {
		j++
		digits++
	}
	if j < len(rest) && rest[j] == '.' {
		j++
		for j < len(rest) && isDigit(rest[j]) {
			j++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}
	if j < len(rest) && (rest[j] == 'e' || rest[j] == 'E') {
		k := j + 1
		if k < len(rest) && (rest[k] == '+' || rest[k] == '-') {
			k++
		}
		if k < len(rest) && isDigit(rest[k]) {
			for k < len(rest) && isDigit(rest[k]) {
				k++
			}
			j = k
		}
	}
	return sign + rest[:j]
}

// hexPrefix scans a hex mantissa (after "0x") and optional p-exponent.
// ParseFloat insists on the exponent, so "p0" is supplied when absent.
func hexPrefix(s string) (string, bool) {
	j := 0
	digits := 0
	for j < len(s) && isHexDigit(s[j]) {
		j++
		digits++
	}
	if j < len(s) && s[j] == '.' {
		j++
		for j < len(s) && isHexDigit(s[j]) {
			j++
			digits++
		}
	}
	if digits == 0 {
		return "", false
	}
	mant := s[:j]
	if j < len(s) && (s[j] == 'p' || s[j] == 'P') {
		k := j + 1
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			k++
		}
		if k < len(s) && isDigit(s[k]) {
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			return s[:k], true
		}
	}
	return mant + "p0", true
}
