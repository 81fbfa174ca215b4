package terminal

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns a short name for debug logs
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// RGBFromHex parses "#rrggbb" or "#rgb"
func RGBFromHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// Hex formats the color as "#rrggbb"
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// Blend mixes c toward other in Lab space, t in [0,1]
func (c RGB) Blend(other RGB, t float64) RGB {
	r, g, b := c.colorful().BlendLab(other.colorful(), t).Clamped().RGB255()
	return RGB{r, g, b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeLevel maps 0-255 to the nearest cube index 0-5
func cubeLevel(v uint8) int {
	best := 0
	bestDist := absInt(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := absInt(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 converts RGB to nearest 256-color palette index
func RGBTo256(c RGB) uint8 {
	cr, cg, cb := cubeLevel(c.R), cubeLevel(c.G), cubeLevel(c.B)
	cubeIdx := uint8(16 + 36*cr + 6*cg + cb)

	gray := (int(c.R) + int(c.G) + int(c.B)) / 3
	spread := max(absInt(int(c.R)-gray), absInt(int(c.G)-gray), absInt(int(c.B)-gray))
	if spread >= 10 || gray < 4 || gray > 243 {
		return cubeIdx
	}

	// Grayscale ramp 232-255 covers luminance 8, 18, ..., 238
	grayIdx := min(232+(gray-8)/10, 255)
	if gray < 8 {
		grayIdx = 232
	}
	grayLevel := 8 + (grayIdx-232)*10
	grayDist := 3 * absInt(gray-grayLevel)
	cubeDist := absInt(int(c.R)-int(cubeValues[cr])) +
		absInt(int(c.G)-int(cubeValues[cg])) +
		absInt(int(c.B)-int(cubeValues[cb]))

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cubeIdx
}
