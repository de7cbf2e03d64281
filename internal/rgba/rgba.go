// Package rgba parses CSS-style hex colors shared by part definitions and UI stylesheets.
package rgba

import "strings"

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Parse parses #RGB, #RRGGBB or #RRGGBBAA (alpha 255 when omitted). Returns false on any malformed input.
func Parse(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return Color{}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := nibble(hex[i]); !ok {
			return Color{}, false
		}
	}
	n := func(i int) uint8 { v, _ := nibble(hex[i]); return v }
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		return Color{n(0) * 17, n(1) * 17, n(2) * 17, 255}, true
	case 6:
		return Color{n(0)<<4 + n(1), n(2)<<4 + n(3), n(4)<<4 + n(5), 255}, true
	case 8:
		return Color{n(0)<<4 + n(1), n(2)<<4 + n(3), n(4)<<4 + n(5), n(6)<<4 + n(7)}, true
	}
	return Color{}, false
}

// MustParse is Parse for literals known to be valid; malformed input yields opaque black.
func MustParse(s string) Color {
	c, ok := Parse(s)
	if !ok {
		return Color{A: 255}
	}
	return c
}

// Lerp mixes c toward o by f in [0,1]. Alpha is kept from c.
func (c Color) Lerp(o Color, f float32) Color {
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*f + 0.5)
	}
	return Color{mix(c.R, o.R), mix(c.G, o.G), mix(c.B, o.B), c.A}
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
