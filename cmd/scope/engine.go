package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flga/gamescope/cmd/internal/meter"

	"github.com/rs/zerolog"
	"github.com/veandco/go-sdl2/sdl"
)

var errQuit = errors.New("quit requested")

type engine struct {
	view *scopeView

	fpsMeter    *meter.Meter
	pollMeter   *meter.Meter
	updateMeter *meter.Meter
	renderMeter *meter.Meter

	// tickBudget is the latency the rolling average of recent analysis
	// ticks (tick + view update, as recorded by updateMeter) may reach
	// before it's logged as over budget.
	tickBudget time.Duration
	logger     zerolog.Logger

	// tick is invoked once per frame before the view is updated, giving
	// the caller a chance to re-run the analysis pipeline against fresh
	// input (a new frame, a live memory poll) and feed results into the
	// view through its exported setters.
	tick func(*scopeView)
}

func newEngine(view *scopeView, tick func(*scopeView), tickBudget time.Duration, logger zerolog.Logger) *engine {
	return &engine{
		view:        view,
		fpsMeter:    meter.New(30),
		pollMeter:   meter.New(30),
		updateMeter: meter.New(30),
		renderMeter: meter.New(30),
		tickBudget:  tickBudget,
		logger:      logger,
		tick:        tick,
	}
}

func (e *engine) run(ctx context.Context) error {
	defer e.view.Destroy()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !e.view.Visible() {
			return nil
		}

		if err := e.poll(); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}

		e.update()

		if err := e.render(); err != nil {
			return err
		}

		e.paint()

		e.fpsMeter.Record(time.Since(start))
		start = time.Now()
	}
}

func (e *engine) poll() error {
	start := time.Now()
	for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
		if _, ok := evt.(*sdl.QuitEvent); ok {
			return errQuit
		}

		if _, err := e.view.Handle(evt, e); err != nil {
			return fmt.Errorf("engine: poll: %s", err)
		}
	}
	e.pollMeter.Record(time.Since(start))
	return nil
}

func (e *engine) update() {
	start := time.Now()
	if e.tick != nil {
		e.tick(e.view)
	}
	e.view.Update(e)
	e.updateMeter.Record(time.Since(start))

	if e.tickBudget > 0 && e.updateMeter.ExceedsBudget(e.tickBudget) {
		e.logger.Warn().
			Float64("ms", e.updateMeter.Ms()).
			Dur("budget", e.tickBudget).
			Msg("analysis tick over budget")
	}
}

func (e *engine) render() error {
	start := time.Now()
	defer func() { e.renderMeter.Record(time.Since(start)) }()

	if !e.view.Visible() {
		return nil
	}
	return e.view.Render()
}

func (e *engine) paint() {
	if !e.view.Visible() {
		return
	}
	e.view.Paint()
}
