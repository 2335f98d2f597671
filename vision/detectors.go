// Package vision implements the screen-element detectors: a shared
// flood-fill core over HSV-classified pixels, parameterised by
// per-detector admissibility and shape predicates.
package vision

import (
	"math"

	"github.com/flga/gamescope/color"
	"github.com/flga/gamescope/imgio"
)

const (
	healthBarMinWidth  = 50
	healthBarMaxHeight = 25

	skillButtonMinDiameter = 40
	skillButtonMaxDiameter = 120
	skillButtonConfidence  = 0.75

	joystickMinDiameter = 80
	joystickMaxDiameter = 200
	joystickConfidence  = 0.80

	healthBarConfidence = 0.85

	aspectRatioLow  = 0.7
	aspectRatioHigh = 1.4
	minFillRatio    = 0.5
)

// DetectHealthBars runs three flood-fill passes (red/blue/green HSV
// predicates) over img and returns every bar-shaped region found: wide
// (>=50px), short (<=25px), with width more than 3x height.
func DetectHealthBars(img *imgio.Image) []DetectedElement {
	hsv := toHSVImage(img.Pixels)

	shapeOK := func(w, h, filled int) bool {
		return w >= healthBarMinWidth && h <= healthBarMaxHeight && w > h*3
	}

	var out []DetectedElement
	passes := []struct {
		predicate func(color.HSV) bool
		elem      ElementType
	}{
		{color.HSV.IsRed, ElementHealthBarEnemy},
		{color.HSV.IsBlue, ElementHealthBarAlly},
		{color.HSV.IsGreen, ElementHealthBarSelf},
	}

	for _, pass := range passes {
		regions := findRegions(hsv, img.Width, img.Height, 0, img.Width, 0, img.Height, pass.predicate, shapeOK)
		for _, r := range regions {
			out = append(out, DetectedElement{
				Type:       pass.elem,
				Bounds:     r.bounds,
				Confidence: healthBarConfidence,
			})
		}
	}

	return out
}

// skillButtonAdmissible accepts bright pixels or highly saturated ones.
func skillButtonAdmissible(hsv color.HSV) bool {
	return hsv.IsBright() || hsv.S > 0.7
}

// DetectSkillButtons searches the right third of img for roughly-circular
// bright blobs between 40 and 120px in diameter, at least half filled
// relative to the disc their diameter implies.
func DetectSkillButtons(img *imgio.Image) []DetectedElement {
	hsv := toHSVImage(img.Pixels)
	xStart := 2 * img.Width / 3

	shapeOK := func(w, h, filled int) bool {
		diameter := w
		if h > diameter {
			diameter = h
		}
		if diameter < skillButtonMinDiameter || diameter > skillButtonMaxDiameter {
			return false
		}

		ratio := float64(w) / float64(h)
		if ratio <= aspectRatioLow || ratio >= aspectRatioHigh {
			return false
		}

		expectedArea := math.Pi * math.Pow(float64(diameter)/2, 2)
		return float64(filled)/expectedArea >= minFillRatio
	}

	regions := findRegions(hsv, img.Width, img.Height, xStart, img.Width, 0, img.Height, skillButtonAdmissible, shapeOK)

	out := make([]DetectedElement, 0, len(regions))
	for _, r := range regions {
		out = append(out, DetectedElement{
			Type:       ElementSkillButton,
			Bounds:     r.bounds,
			Confidence: skillButtonConfidence,
		})
	}
	return out
}

// joystickAdmissible accepts pale-grey, medium-value pixels.
func joystickAdmissible(hsv color.HSV) bool {
	return hsv.V > 0.2 && hsv.V < 0.8 && hsv.S <= 0.3
}

// DetectJoystick searches the bottom-left quadrant of img for the
// largest roughly-circular pale disc between 80 and 200px in diameter,
// returning at most one result.
func DetectJoystick(img *imgio.Image) (DetectedElement, bool) {
	hsv := toHSVImage(img.Pixels)
	xEnd := img.Width / 3
	yStart := img.Height / 2

	shapeOK := func(w, h, filled int) bool {
		diameter := w
		if h > diameter {
			diameter = h
		}
		if diameter < joystickMinDiameter || diameter > joystickMaxDiameter {
			return false
		}
		ratio := float64(w) / float64(h)
		return ratio > aspectRatioLow && ratio < aspectRatioHigh
	}

	regions := findRegions(hsv, img.Width, img.Height, 0, xEnd, yStart, img.Height, joystickAdmissible, shapeOK)
	if len(regions) == 0 {
		return DetectedElement{}, false
	}

	best := regions[0]
	for _, r := range regions[1:] {
		if r.bounds.Area() > best.bounds.Area() {
			best = r
		}
	}

	return DetectedElement{
		Type:       ElementJoystick,
		Bounds:     best.bounds,
		Confidence: joystickConfidence,
	}, true
}
