// Package color implements the RGB/HSV colour primitives shared by the
// vision detectors: distance, tolerance matching, HSV conversion, and the
// named hue/brightness predicates the detectors are built from.
package color

import "math"

// RGB is an 8-bit-per-channel colour triple.
type RGB struct {
	R, G, B uint8
}

// DistanceSquared returns the squared Euclidean distance between two
// colours in RGB space.
func (c RGB) DistanceSquared(other RGB) uint32 {
	dr := int32(c.R) - int32(other.R)
	dg := int32(c.G) - int32(other.G)
	db := int32(c.B) - int32(other.B)
	return uint32(dr*dr + dg*dg + db*db)
}

// Matches reports whether other is within tolerance of c, i.e. whether
// the squared distance between them is at most tolerance squared.
func (c RGB) Matches(other RGB, tolerance uint32) bool {
	return c.DistanceSquared(other) <= tolerance*tolerance
}

// ToHSV converts c to the HSV colour space. The conversion is total: a
// fully black pixel yields hue 0, never NaN.
func (c RGB) ToHSV() HSV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if max != 0 {
		s = delta / max
	}

	return HSV{H: h, S: s, V: max}
}

// HSV is a hue (degrees, [0,360)), saturation and value (both [0,1])
// colour triple.
type HSV struct {
	H, S, V float64
}

// IsRed reports whether hsv falls in the red health-bar hue band.
func (hsv HSV) IsRed() bool {
	return (hsv.H < 15 || hsv.H > 345) && hsv.S > 0.5 && hsv.V > 0.3
}

// IsBlue reports whether hsv falls in the blue health-bar hue band.
func (hsv HSV) IsBlue() bool {
	return hsv.H > 200 && hsv.H < 260 && hsv.S > 0.5 && hsv.V > 0.3
}

// IsGreen reports whether hsv falls in the green health-bar hue band.
func (hsv HSV) IsGreen() bool {
	return hsv.H > 80 && hsv.H < 160 && hsv.S > 0.4 && hsv.V > 0.3
}

// IsBright reports whether hsv is a high-value, low-saturation highlight.
func (hsv HSV) IsBright() bool {
	return hsv.V > 0.7 && hsv.S < 0.3
}

// Rect is a signed, axis-aligned rectangle with its origin at the
// top-left corner. Width and height are non-negative.
type Rect struct {
	X, Y, Width, Height int
}

// CenterX returns the integer-truncated horizontal centre of r.
func (r Rect) CenterX() int {
	return r.X + r.Width/2
}

// CenterY returns the integer-truncated vertical centre of r.
func (r Rect) CenterY() int {
	return r.Y + r.Height/2
}

// Contains reports whether the point (px, py) lies within r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.Width && py >= r.Y && py < r.Y+r.Height
}

// Area returns the rectangle's area.
func (r Rect) Area() int {
	return r.Width * r.Height
}
