package main

import (
	"image/color"

	"github.com/flga/gamescope/cmd/internal/gui"
	gcolor "github.com/flga/gamescope/color"
	"github.com/flga/gamescope/imgio"
	"github.com/flga/gamescope/vision"

	"github.com/veandco/go-sdl2/sdl"
)

// elementColor maps a detector category to the overlay color drawn
// around its bounding box.
func elementColor(t vision.ElementType) color.RGBA {
	switch t {
	case vision.ElementHealthBarEnemy:
		return color.RGBA{R: 220, G: 40, B: 40, A: 255}
	case vision.ElementHealthBarAlly, vision.ElementHealthBarSelf:
		return color.RGBA{R: 40, G: 200, B: 80, A: 255}
	case vision.ElementSkillButton:
		return color.RGBA{R: 230, G: 200, B: 30, A: 255}
	case vision.ElementJoystick:
		return color.RGBA{R: 60, G: 180, B: 230, A: 255}
	default:
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
}

// scopeView renders a single analyzed frame together with the overlays
// produced by the vision detectors: bounding boxes for health bars,
// skill buttons and the joystick, frame-diff rectangles, and a small
// corner indicator reflecting the most recent combat posture.
type scopeView struct {
	view *gui.View

	background *gui.Background
	boxes      *gui.RectOverlay
	posture    *gui.StatusBox
	grid       *gui.Grid
	layers     gui.Layers

	rgba8888 []byte

	detections []vision.DetectedElement
	diffs      []gcolor.Rect
	statusFill color.RGBA

	visible bool
}

// boardGrid describes an optional eliminate-board region to outline
// with grid lines, e.g. so the cell boundaries AnalyzeEliminateBoard
// sampled against can be checked visually.
type boardGrid struct {
	Bounds     gcolor.Rect
	Rows, Cols int
}

func newScopeView(title string, frame *imgio.Image, zoom int, board *boardGrid) (*scopeView, error) {
	v, err := gui.NewView(title, frame.Width, frame.Height, zoom, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE, sdl.RENDERER_ACCELERATED, sdl.BLENDMODE_BLEND)
	if err != nil {
		return nil, err
	}

	sv := &scopeView{
		view:     v,
		rgba8888: toRGBA8888(frame),
		visible:  true,
	}

	sv.background = &gui.Background{
		Tag:      "background",
		RGBA8888: sv.rgba8888,
	}

	sv.boxes = &gui.RectOverlay{
		Tag: "detections",
		UpdateFn: func() []gui.OverlayBox {
			boxes := make([]gui.OverlayBox, 0, len(sv.detections))
			for _, d := range sv.detections {
				boxes = append(boxes, gui.OverlayBox{
					Rect: sdl.Rect{
						X: int32(d.Bounds.X),
						Y: int32(d.Bounds.Y),
						W: int32(d.Bounds.Width),
						H: int32(d.Bounds.Height),
					},
					Color: elementColor(d.Type),
				})
			}
			for _, r := range sv.diffs {
				boxes = append(boxes, gui.OverlayBox{
					Rect:  sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.Width), H: int32(r.Height)},
					Color: color.RGBA{R: 255, G: 120, B: 0, A: 255},
				})
			}
			return boxes
		},
	}

	sv.posture = &gui.StatusBox{
		Tag:      "posture",
		Size:     sdl.Rect{W: 16, H: 16},
		Position: gui.Top | gui.Right,
		Margin:   gui.Margin{Top: 8, Right: 8},
		UpdateFn: func() color.RGBA { return sv.statusFill },
	}

	layers := gui.Layers{}.New(sv.background).New(sv.boxes, sv.posture)

	if board != nil {
		sv.grid = &gui.Grid{
			Tag:     "board",
			Rows:    int32(board.Rows),
			Cols:    int32(board.Cols),
			Square:  true,
			Borders: true,
			Color:   color.RGBA{R: 255, G: 255, B: 255, A: 180},
			Bounds: sdl.Rect{
				X: int32(board.Bounds.X),
				Y: int32(board.Bounds.Y),
				W: int32(board.Bounds.Width),
				H: int32(board.Bounds.Height),
			},
		}
		layers = layers.New(sv.grid)
	}

	sv.layers = layers

	return sv, nil
}

func (sv *scopeView) Title() string { return sv.view.Title() }

func (sv *scopeView) Destroy() error { return sv.view.Destroy() }

func (sv *scopeView) Visible() bool { return sv.visible && sv.view.Visible() }

func (sv *scopeView) Handle(evt sdl.Event, e *engine) (bool, error) {
	if handled, err := sv.view.Handle(evt); handled {
		return true, err
	}

	if sv.grid != nil && gui.IsKeyUp(evt, sdl.K_g) {
		sv.grid.Toggle()
		return true, nil
	}

	if gui.IsKeyPress(evt, sdl.K_b) {
		sv.boxes.Toggle()
		return true, nil
	}

	return false, nil
}

func (sv *scopeView) Update(e *engine) {
	sv.layers.Update(sv.view)
}

func (sv *scopeView) Render() error {
	if err := sv.view.Clear(color.RGBA{A: 255}); err != nil {
		return err
	}
	return sv.layers.Draw(sv.view)
}

func (sv *scopeView) Paint() {
	sv.view.Paint()
}

// toRGBA8888 packs an Image's RGB pixels into the ABGR8888 layout the
// gui package's streaming background texture expects.
func toRGBA8888(img *imgio.Image) []byte {
	buf := make([]byte, 0, len(img.Pixels)*4)
	for _, p := range img.Pixels {
		buf = append(buf, p.R, p.G, p.B, 0xFF)
	}
	return buf
}
