// Package numeric validates that strings and numbers match a numeric
// grammar selected by independent option flags.
package numeric

import (
	"math"
	"reflect"
	"regexp"
)

// Options selects the numeric grammar accepted by IsNumeric. The flags are
// independent and combine.
type Options struct {
	// NotNegative rejects values below zero and strings with a leading minus.
	NotNegative bool
	// Integer rejects fractional values and strings containing a decimal point.
	Integer bool
	// AllowEmpty treats the empty string as valid.
	AllowEmpty bool
}

var (
	integerPattern = regexp.MustCompile(`^-?[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^-?([0-9]+\.?[0-9]*|\.[0-9]+)$`)
)

// IsNumeric reports whether v is a string or number matching the grammar
// selected by opts. Any other input type is rejected. The malformed strings
// "." and "-." are rejected under every option combination.
func IsNumeric(v any, opts Options) bool {
	switch s := v.(type) {
	case string:
		return isNumericString(s, opts)
	case float32:
		return isNumericFloat(float64(s), opts)
	case float64:
		return isNumericFloat(s, opts)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return !opts.NotNegative || rv.Int() >= 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isNumericString(s string, opts Options) bool {
	if s == "" {
		return opts.AllowEmpty
	}
	pattern := decimalPattern
	if opts.Integer {
		pattern = integerPattern
	}
	if !pattern.MatchString(s) {
		return false
	}
	if opts.NotNegative && s[0] == '-' {
		return false
	}
	return true
}

func isNumericFloat(f float64, opts Options) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if opts.Integer && f != math.Trunc(f) {
		return false
	}
	if opts.NotNegative && f < 0 {
		return false
	}
	return true
}
