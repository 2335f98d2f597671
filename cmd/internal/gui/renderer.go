package gui

import (
	"fmt"

	"github.com/flga/gamescope/cmd/internal/errors"
	"github.com/veandco/go-sdl2/sdl"
)

type Renderer struct {
	*sdl.Renderer
	title      string
	background *sdl.Texture
}

func newRenderer(window *sdl.Window, w, h int32, options uint32) (*Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, options)
	if err != nil {
		return nil, fmt.Errorf("unable to create sdl renderer: %s", err)
	}

	bgTexture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, w, h)
	if err != nil {
		return nil, fmt.Errorf("unable to create background texture: %s", err)
	}

	return &Renderer{
		Renderer:   renderer,
		background: bgTexture,
	}, nil
}

func (r *Renderer) Destroy() error {
	var ee errors.List
	return ee.Add(r.background.Destroy(), r.Renderer.Destroy())
}

func (r *Renderer) DrawBackground(rgba8888 []byte, rect *sdl.Rect) error {
	pixels, _, err := r.background.Lock(nil)
	if err != nil {
		return fmt.Errorf("unable to lock background texture: %s", err)
	}

	copy(pixels, rgba8888)
	r.background.Unlock()

	if err := r.Copy(r.background, nil, rect); err != nil {
		return fmt.Errorf("unable to copy background texture: %s", err)
	}

	return nil
}

