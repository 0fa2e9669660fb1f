package barplotter

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var named = map[string]color.RGBA{
	"blue":   {R: 31, G: 119, B: 180, A: 255},
	"red":    {R: 214, G: 39, B: 40, A: 255},
	"green":  {R: 44, G: 160, B: 44, A: 255},
	"orange": {R: 255, G: 127, B: 14, A: 255},
	"purple": {R: 148, G: 103, B: 189, A: 255},
	"gray":   {R: 127, G: 127, B: 127, A: 255},
	"black":  {A: 255},
}

// ParseColor accepts a color name from the table above or a #rrggbb hex
// value. An empty string yields nil, which keeps the plotter default.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	if c, ok := named[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	return nil, errors.Errorf("barplotter: unknown color %q", s)
}
