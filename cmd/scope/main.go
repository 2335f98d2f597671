// Command scope is a visual harness for the analysis packages: it loads
// a captured frame, runs the vision detectors and (optionally) a
// frame diff and an eliminate-board sample against it, shows the
// results in an SDL window, and can poll a live process's memory map
// with memscan while it runs.
package main

//go:generate go run ../embed -root . -o assets.go testdata/**

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	gcolor "github.com/flga/gamescope/color"
	"github.com/flga/gamescope/imgio"
	"github.com/flga/gamescope/memscan"
	"github.com/flga/gamescope/strategy"
	"github.com/flga/gamescope/vision"

	"github.com/google/pprof/profile"
	"github.com/rs/zerolog"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

func initSDL() (func(), error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return func() {}, fmt.Errorf("initSDL: unable to init sdl: %s", err)
	}
	return sdl.Quit, nil
}

func loadFrame(path string) (*imgio.Image, error) {
	var r io.ReadCloser
	if path == "" {
		f, err := assets.Open("testdata/demo_frame.png")
		if err != nil {
			return nil, err
		}
		r = f
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open frame: %s", err)
		}
		r = f
	}
	defer r.Close()

	return imgio.LoadFixturePNG(r)
}

// parseBoardFlag parses "x,y,w,h,rows,cols" into a boardGrid.
func parseBoardFlag(s string) (*boardGrid, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return nil, fmt.Errorf("board: expected x,y,w,h,rows,cols, got %q", s)
	}

	vals := make([]int, 6)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("board: invalid integer %q: %s", p, err)
		}
		vals[i] = v
	}

	return &boardGrid{
		Bounds: gcolor.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]},
		Rows:   vals[4],
		Cols:   vals[5],
	}, nil
}

func run(logger zerolog.Logger, framePath, frame2Path, boardSpec string, pid, zoom int, tickBudget time.Duration, cpuprof, memprof string) error {
	frame, err := loadFrame(framePath)
	if err != nil {
		return err
	}

	var prevFrame *imgio.Image
	if frame2Path != "" {
		prevFrame, err = loadFrame(frame2Path)
		if err != nil {
			return err
		}
	}

	board, err := parseBoardFlag(boardSpec)
	if err != nil {
		return err
	}

	if board != nil {
		cells := vision.AnalyzeEliminateBoard(frame, board.Bounds, board.Rows, board.Cols)
		sbBoard := strategy.Board(cells)
		if mv, ok := strategy.FindBestMove(sbBoard); ok {
			logger.Info().
				Int("eliminates", mv.Eliminates).
				Int("score", mv.Score).
				Msg("best eliminate-board move")
		} else {
			logger.Info().Msg("no eliminate-board move available")
		}
	}

	var scanner *memscan.Scanner
	if pid > 0 {
		scanner, err = memscan.NewScanner(pid)
		if err != nil {
			return fmt.Errorf("memscan: unable to attach to pid %d: %s", pid, err)
		}
		scanner.SetLogger(logger.With().Str("component", "memscan").Logger())
		defer scanner.Close()
	}

	quitSDL, err := initSDL()
	if err != nil {
		return err
	}
	defer quitSDL()

	view, err := newScopeView("scope", frame, zoom, board)
	if err != nil {
		return err
	}

	tick := func(sv *scopeView) {
		health := vision.DetectHealthBars(frame)
		skills := vision.DetectSkillButtons(frame)

		detections := make([]vision.DetectedElement, 0, len(health)+len(skills)+1)
		detections = append(detections, health...)
		detections = append(detections, skills...)
		if joystick, ok := vision.DetectJoystick(frame); ok {
			detections = append(detections, joystick)
		}
		sv.detections = detections

		if prevFrame != nil {
			sv.diffs = vision.FindDifferences(frame, prevFrame, 24)
		}

		sv.statusFill = postureColor(health)

		if scanner != nil {
			if err := pollMemscan(scanner, logger); err != nil {
				logger.Warn().Err(err).Msg("memscan: unable to read maps")
			}
		}
	}

	e := newEngine(view, tick, tickBudget, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigchan
		cancel()
	}()

	if cpuprof != "" {
		cpuf, err := os.Create(cpuprof)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %s", err)
		}
		defer cpuf.Close()
		if err := pprof.StartCPUProfile(cpuf); err != nil {
			return fmt.Errorf("could not start CPU profile: %s", err)
		}
		defer pprof.StopCPUProfile()
	}
	if memprof != "" {
		memf, err := os.Create(memprof)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %s", err)
		}
		defer memf.Close()
		defer func() {
			runtime.GC()
			if err := pprof.WriteHeapProfile(memf); err != nil {
				logger.Error().Err(err).Msg("could not write memory profile")
				return
			}
			logMemProfileSummary(memprof, logger)
		}()
	}

	return e.run(ctx)
}

// postureColor gives a rough at-a-glance combat read from the health
// bars detected this tick: red when our own health bar isn't visible
// (self bar occluded or off-screen, a liability worth flagging) or
// enemies outnumber allies plus self, green otherwise. DetectHealthBars
// reports a fixed confidence for every match, so confidence can't carry
// this signal; the element counts, which vary with scene content, can.
func postureColor(health []vision.DetectedElement) color.RGBA {
	var self, allies, enemies int
	for _, h := range health {
		switch h.Type {
		case vision.ElementHealthBarSelf:
			self++
		case vision.ElementHealthBarAlly:
			allies++
		case vision.ElementHealthBarEnemy:
			enemies++
		}
	}

	if self == 0 || enemies > allies+self {
		return color.RGBA{R: 220, G: 40, B: 40, A: 255}
	}
	return color.RGBA{R: 40, G: 200, B: 80, A: 255}
}

// logMemProfileSummary re-parses the heap profile just written and logs
// its sample and total in-use-bytes counts, so a captured profile's
// shape is visible without reaching for `go tool pprof`.
func logMemProfileSummary(path string, logger zerolog.Logger) {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn().Err(err).Msg("could not reopen memory profile for summary")
		return
	}
	defer f.Close()

	prof, err := profile.Parse(f)
	if err != nil {
		logger.Warn().Err(err).Msg("could not parse memory profile")
		return
	}

	var inUseBytes int64
	for _, si := range prof.Sample {
		for i, st := range prof.SampleType {
			if st.Type == "inuse_space" {
				inUseBytes += si.Value[i]
			}
		}
	}

	logger.Info().
		Int("samples", len(prof.Sample)).
		Int64("inuse_bytes", inUseBytes).
		Msg("memory profile captured")
}

// pollMemscan reads the scanned process's current memory map and logs
// how many regions are candidates for a game-state scan, exercising
// the live-process path without needing a concrete target signature.
func pollMemscan(scanner *memscan.Scanner, logger zerolog.Logger) error {
	f, err := scanner.OpenMaps()
	if err != nil {
		return err
	}
	defer f.Close()

	regions, err := memscan.ParseMaps(f)
	if err != nil {
		return err
	}

	candidates := memscan.FilterGameRegions(regions)
	logger.Debug().Int("regions", len(regions)).Int("candidates", len(candidates)).Msg("memscan: poll")
	return nil
}

func main() {
	frame := flag.String("frame", "", "path to a captured frame (PNG). Defaults to the bundled demo frame.")
	frame2 := flag.String("frame2", "", "optional second frame to diff against -frame")
	board := flag.String("board", "", "optional eliminate-board region to sample and overlay, as x,y,w,h,rows,cols")
	pid := flag.Int("pid", 0, "optional pid of a running process to scan with memscan")
	zoom := flag.Int("zoom", 2, "window scale factor")
	verbose := flag.Bool("v", false, "enable debug logging")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	budgetms := flag.Int("budgetms", 33, "log a warning when the rolling average analysis tick exceeds this many milliseconds (0 disables)")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	tickBudget := time.Duration(*budgetms) * time.Millisecond
	if err := run(logger, *frame, *frame2, *board, *pid, *zoom, tickBudget, *cpuprofile, *memprofile); err != nil {
		logger.Error().Err(err).Msg("scope: fatal")
		os.Exit(2)
	}
}
