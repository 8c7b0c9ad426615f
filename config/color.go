package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phanxgames/hoverpick"
	"golang.org/x/image/colornames"
)

// ParseColor accepts "#rrggbb", "#rrggbbaa", "0xrrggbb", "rgb(r, g, b)",
// "rgba(r, g, b, a)" with 0-255 channels and 0-1 alpha, or an SVG color name
// such as "orange".
func ParseColor(s string) (hoverpick.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "":
		return hoverpick.Color{}, fmt.Errorf("empty color")
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "0x"):
		return parseHex(s[2:])
	case strings.HasPrefix(s, "rgb"):
		return parseFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return hoverpick.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, nil
	}
	return hoverpick.Color{}, fmt.Errorf("unknown color %q", s)
}

// MustParseColor is ParseColor for values already validated.
func MustParseColor(s string) hoverpick.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(h string) (hoverpick.Color, error) {
	if len(h) != 6 && len(h) != 8 {
		return hoverpick.Color{}, fmt.Errorf("bad hex color %q", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return hoverpick.Color{}, fmt.Errorf("bad hex color %q: %w", h, err)
	}
	if len(h) == 6 {
		return hoverpick.HexColor(uint32(v)), nil
	}
	c := hoverpick.HexColor(uint32(v >> 8))
	c.A = float64(v&0xff) / 255
	return c, nil
}

func parseFunc(s string) (hoverpick.Color, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return hoverpick.Color{}, fmt.Errorf("bad color %q", s)
	}
	name := s[:open]
	parts := strings.Split(s[open+1:len(s)-1], ",")
	want := 3
	if name == "rgba" {
		want = 4
	} else if name != "rgb" {
		return hoverpick.Color{}, fmt.Errorf("bad color %q", s)
	}
	if len(parts) != want {
		return hoverpick.Color{}, fmt.Errorf("bad color %q: want %d components", s, want)
	}

	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return hoverpick.Color{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		if i < 3 {
			f /= 255
		}
		v[i] = min(max(f, 0), 1)
	}
	return hoverpick.Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}
