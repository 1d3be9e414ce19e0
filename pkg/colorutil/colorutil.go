// Package colorutil converts color formats and picks collision-free random
// colors from a fixed pastel palette.
package colorutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Chandra179/web-utils/pkg/random"
)

// pastelPalette is the fixed, ordered selection pool. Random draws take
// from it without replacement.
var pastelPalette = []string{
	"#fbf8cc", "#fde4cf", "#ffcfd2", "#f1c0e8", "#cfbaf0",
	"#a3c4f3", "#90dbf4", "#8eecf5", "#98f5e1", "#b9fbc0",
	"#e2ece9", "#ffe5d9", "#d8e2dc", "#ece4db", "#ffd7ba",
	"#fec89a", "#f9dcc4", "#cdeac0", "#b5ead7", "#c7ceea",
}

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// HexToRGBA converts a 6-hex-digit color, with or without a leading '#',
// into an "rgba(r,g,b,a)" string. Input that does not match the hex pattern
// yields the empty string. Alpha values outside [0, 1] (and NaN) default
// to 1.
func HexToRGBA(hex string, alpha float64) string {
	if !hexPattern.MatchString(hex) {
		return ""
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		alpha = 1
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(alpha, 'g', -1, 64))
}

// PastelPalette returns a copy of the full pastel palette in its fixed
// order.
func PastelPalette() []string {
	out := make([]string, len(pastelPalette))
	copy(out, pastelPalette)
	return out
}

// RandomPastels returns count unique colors drawn without replacement from
// the pastel palette, using gen for unbiased index selection. count is
// clamped into [1, palette length]. The only error source is the platform
// randomness generator.
func RandomPastels(gen random.IntGenerator, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}
	if count > len(pastelPalette) {
		count = len(pastelPalette)
	}

	pool := PastelPalette()
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		j, err := gen.IntInRange(float64(i), float64(len(pool)-1))
		if err != nil {
			return nil, err
		}
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out, nil
}
