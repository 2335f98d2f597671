package gui

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

var _ Component = &RectOverlay{}
var _ Component = &StatusBox{}

// RectOverlay draws a set of outlined rectangles over a view, one per
// detected element. Boxes is rebuilt by UpdateFn every frame.
type RectOverlay struct {
	Tag      string
	Disabled bool
	UpdateFn func() []OverlayBox

	boxes []OverlayBox
}

type OverlayBox struct {
	Rect  sdl.Rect
	Color color.RGBA
}

func (o *RectOverlay) tag() string { return o.Tag }

func (o *RectOverlay) Enabled() bool { return !o.Disabled }
func (o *RectOverlay) Enable()       { o.Disabled = false }
func (o *RectOverlay) Disable()      { o.Disabled = true }
func (o *RectOverlay) Toggle()       { o.Disabled = !o.Disabled }

func (o *RectOverlay) Update(*View) {
	if o.Disabled || o.UpdateFn == nil {
		return
	}
	o.boxes = o.UpdateFn()
}

func (o *RectOverlay) Draw(v *View) error {
	if o.Disabled {
		return nil
	}

	for _, b := range o.boxes {
		if err := v.renderer.SetDrawColor(b.Color.R, b.Color.G, b.Color.B, b.Color.A); err != nil {
			return fmt.Errorf("rectoverlay: unable to set draw color: %s", err)
		}
		r := b.Rect
		if err := v.renderer.DrawRect(&r); err != nil {
			return fmt.Errorf("rectoverlay: unable to draw box: %s", err)
		}
	}

	return nil
}

// StatusBox is a small anchored, filled indicator, used to surface a
// single piece of glanceable state (e.g. combat posture) without text.
type StatusBox struct {
	Tag      string
	Disabled bool
	UpdateFn func() color.RGBA

	Size     sdl.Rect
	Position Align
	Margin   Margin

	fill color.RGBA
}

func (s *StatusBox) tag() string { return s.Tag }

func (s *StatusBox) Enabled() bool { return !s.Disabled }
func (s *StatusBox) Enable()       { s.Disabled = false }
func (s *StatusBox) Disable()      { s.Disabled = true }
func (s *StatusBox) Toggle()       { s.Disabled = !s.Disabled }

func (s *StatusBox) Update(*View) {
	if s.Disabled || s.UpdateFn == nil {
		return
	}
	s.fill = s.UpdateFn()
}

func (s *StatusBox) Draw(v *View) error {
	if s.Disabled {
		return nil
	}

	rect := s.Size
	viewport := v.Rect()
	anchor(&rect, s.Position, &viewport, s.Margin)

	if err := DrawRect(v.renderer, &rect, s.fill); err != nil {
		return fmt.Errorf("statusbox: %s", err)
	}

	return nil
}
