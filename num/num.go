// Package num clamps numbers and formats decimals with a bounded number of
// fraction digits, in the manner of Angular's DecimalPipe.
//
//	num.FormatDecimal("3.14159", num.DefaultMinDecimals, num.DefaultMaxDecimals, ".") // "3.1416"
//	num.FormatDecimal("7", num.DefaultMinDecimals, num.DefaultMaxDecimals, ".")       // "7.00"
package num

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Default fraction digit bounds.
const (
	DefaultMinDecimals = 2
	DefaultMaxDecimals = 4
)

// ErrNotNumber is returned by FormatDecimal for a value that does not parse.
var ErrNotNumber = errors.New("num: not a number")

// Clamp returns n limited to [lo, hi]. When lo > hi the result is hi.
func Clamp[N cmp.Ordered](n, lo, hi N) N {
	return min(max(n, lo), hi)
}

// DecimalDigits returns the number of fraction digits in value, clamped to
// [minDigits, maxDigits]. sep is the decimal separator ("." when empty). A
// blank value has minDigits.
func DecimalDigits(value string, minDigits, maxDigits int, sep string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return minDigits
	}
	if sep == "" {
		sep = "."
	}
	n := 0
	if parts := strings.Split(value, sep); len(parts) == 2 {
		n = len(parts[1])
	}
	return Clamp(n, minDigits, maxDigits)
}

// FormatDecimal formats value with [DecimalDigits] fraction digits. A blank
// value, or one equal to zero, formats as "0". The output always uses "."
// as the separator.
func FormatDecimal(value string, minDigits, maxDigits int, sep string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "0", nil
	}
	normalized := value
	if sep != "" && sep != "." {
		normalized = strings.Replace(value, sep, ".", 1)
	}
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrNotNumber, value)
	}
	if f == 0 {
		return "0", nil
	}
	return strconv.FormatFloat(f, 'f', DecimalDigits(value, minDigits, maxDigits, sep), 64), nil
}
