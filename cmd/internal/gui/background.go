package gui

var _ Component = &Background{}

// Background streams a whole-frame RGBA8888 buffer to the view's
// background texture, used by cmd/scope to display the frame being
// analyzed underneath the detection overlays.
type Background struct {
	Tag      string
	UpdateFn func(*Background)

	RGBA8888 []byte

	disabled bool
}

func (r *Background) tag() string {
	return r.Tag
}

func (r *Background) Enabled() bool {
	return !r.disabled
}

func (r *Background) Enable() {
	r.disabled = false
}

func (r *Background) Disable() {
	r.disabled = true
}

func (r *Background) Toggle() {
	r.disabled = !r.disabled
}

func (r *Background) Update(v *View) {
	if r.disabled {
		return
	}

	if r.UpdateFn != nil {
		r.UpdateFn(r)
	}
}

func (r *Background) Draw(v *View) error {
	if r.disabled {
		return nil
	}

	return v.renderer.DrawBackground(r.RGBA8888, v.rect)
}
