package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	progress "github.com/charmbracelet/bubbles/progress"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"globetrot/internal/anim"
	"globetrot/internal/config"
	"globetrot/internal/geo"
	"globetrot/internal/journey"
)

type Model struct {
	width  int
	height int

	cfg config.Config

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Journey picker
	cwd     string
	l       list.Model
	selPath string

	// Animation
	builder  *anim.Builder
	frames   [][]anim.Trace
	bounds   geo.BBox
	frameIdx int
	playing  bool
	fps      int

	// last rendered map size
	mapW int
	mapH int

	// legs table
	showLegs bool
	tbl      table.Model

	// frame slider
	prog progress.Model
}

func New(cfg config.Config) Model {
	m := Model{
		cfg:         cfg,
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "globetrot ready — press tab to pick a journey",
		fps:         cfg.Player.FPS,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Journeys"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// legs table setup (columns filled per journey)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	// frame slider
	m.prog = progress.New(progress.WithDefaultGradient())
	m.refreshDir()
	return m
}

// NewWithPath preloads a journey file at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.loadJourney(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// loadJourney loads legs from p, precomputes every frame, and resets the
// viewport. The static view is the finished journey (the frozen frame);
// playback restarts from frame zero.
func (m *Model) loadJourney(p string) {
	legs, err := journey.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	b, err := anim.New(legs, anim.Options{
		TotalFrames:  m.cfg.Animation.TotalFrames,
		PointsPerLeg: m.cfg.Animation.PointsPerLeg,
		Seed:         m.cfg.Animation.Seed,
		Styles:       m.cfg.Styles(),
	})
	if err != nil {
		m.status = "journey error: " + err.Error()
		return
	}

	// Frames are generated in strict index order; the builder's terminal
	// freeze depends on it. A failing leg degrades to an empty frame
	// instead of aborting the whole journey.
	frames := make([][]anim.Trace, b.TotalFrames())
	for i := range frames {
		f, err := b.Frame(i)
		if err != nil {
			slog.Warn("frame generation failed", "frame", i, "error", err)
			f = nil
		}
		frames[i] = f
	}

	bounds, err := b.Bounds()
	if err != nil {
		bounds = legBounds(b.Legs())
	}

	m.builder = b
	m.frames = frames
	m.bounds = bounds.Pad(0.15)
	m.selPath = p
	m.frameIdx = len(frames) - 1
	m.playing = false
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.status = fmt.Sprintf("loaded %s  legs=%d frames=%d  press space to play",
		filepath.Base(p), len(b.Legs()), len(frames))
	if m.showLegs {
		m.refreshLegsTable()
	}
}

// legBounds is the endpoint-only fallback when a leg path cannot be
// generated (for example antipodal endpoints).
func legBounds(legs []anim.Leg) geo.BBox {
	box := geo.NewBBox(legs[0].Source.Lon, legs[0].Source.Lat)
	for _, l := range legs {
		box.Extend(l.Source.Lon, l.Source.Lat)
		box.Extend(l.Target.Lon, l.Target.Lat)
	}
	return box
}
