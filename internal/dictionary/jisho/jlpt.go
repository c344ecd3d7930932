package jisho

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeJLPT converts a JLPT level into its canonical lowercase form, e.g. "n3".
// It accepts a non-negative integer, a string of digits, or a string of digits prefixed with n or N.
func NormalizeJLPT(level any) (string, error) {
	switch v := level.(type) {
	case int:
		return jlptFromInt(int64(v), level)
	case int8:
		return jlptFromInt(int64(v), level)
	case int16:
		return jlptFromInt(int64(v), level)
	case int32:
		return jlptFromInt(int64(v), level)
	case int64:
		return jlptFromInt(v, level)
	case uint:
		return "n" + strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return "n" + strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return "n" + strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return "n" + strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return "n" + strconv.FormatUint(v, 10), nil
	case float32:
		return jlptFromFloat(float64(v), level)
	case float64:
		return jlptFromFloat(v, level)
	case string:
		return jlptFromString(v)
	}
	return "", invalidJLPT(level)
}

func jlptFromInt(v int64, original any) (string, error) {
	if v < 0 {
		return "", invalidJLPT(original)
	}
	return "n" + strconv.FormatInt(v, 10), nil
}

// JSON numbers arrive as float64, so integral values are accepted.
func jlptFromFloat(v float64, original any) (string, error) {
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) || v > math.MaxInt64 {
		return "", invalidJLPT(original)
	}
	return jlptFromInt(int64(v), original)
}

func jlptFromString(s string) (string, error) {
	digits := s
	if strings.HasPrefix(s, "n") || strings.HasPrefix(s, "N") {
		digits = s[1:]
	}
	if !isDigits(digits) {
		return "", invalidJLPT(s)
	}
	return "n" + digits, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func invalidJLPT(level any) error {
	return fmt.Errorf("%w: JLPT level needs to be in the format 'N3', 'n3' or 3. Got '%v' instead", ErrInvalidArgument, level)
}
