package anim

import (
	"errors"
	"fmt"

	"globetrot/internal/geo"
)

var (
	// ErrNoLegs is returned when a builder is constructed with no legs.
	ErrNoLegs = errors.New("anim: journey has no legs")
	// ErrNoDefaultStyle is returned when the style table lacks the mandatory
	// "default" entry.
	ErrNoDefaultStyle = errors.New(`anim: vehicle styles must include a "default" entry`)
)

const (
	DefaultTotalFrames  = 200
	DefaultPointsPerLeg = 50

	completedWidth = 2
	activeWidth    = 7
)

// Options configures a Builder. Zero-valued fields fall back to defaults.
type Options struct {
	TotalFrames  int
	PointsPerLeg int
	Styles       map[string]Style
	Path         geo.PathFunc
	Seed         int64
}

// Builder turns an ordered journey into one list of drawable traces per
// frame index. It is a forward-only state machine: frames are meant to be
// requested in increasing order, and once the final leg completes, the frame
// that drew its destination is frozen and replayed for every later index.
// A Builder animates one journey exactly once and is not safe for concurrent
// use; the path function it calls must be pure.
type Builder struct {
	legs   []Leg
	colors []string
	styles map[string]Style
	path   geo.PathFunc

	totalFrames  int
	pointsPerLeg int
	framesPerLeg int

	terminal bool
	frozen   []Trace

	// per-leg generated paths; the path function is pure, so caching is
	// output-identical to recomputing every frame
	cache map[int]legPath
}

type legPath struct {
	lats []float64
	lons []float64
}

// New validates options and builds the frame sequencer. Legs are stably
// sorted by date and each leg is assigned a persistent color from a seeded
// palette.
func New(legs []Leg, opts Options) (*Builder, error) {
	if len(legs) == 0 {
		return nil, ErrNoLegs
	}
	if opts.TotalFrames == 0 {
		opts.TotalFrames = DefaultTotalFrames
	}
	if opts.PointsPerLeg == 0 {
		opts.PointsPerLeg = DefaultPointsPerLeg
	}
	if opts.Styles == nil {
		opts.Styles = DefaultStyles()
	}
	if opts.Path == nil {
		opts.Path = geo.GreatCircle
	}
	if opts.TotalFrames < 1 {
		return nil, fmt.Errorf("anim: total frames must be positive, got %d", opts.TotalFrames)
	}
	if opts.PointsPerLeg < 2 {
		return nil, fmt.Errorf("anim: points per leg must be at least 2, got %d", opts.PointsPerLeg)
	}
	if _, ok := opts.Styles["default"]; !ok {
		return nil, ErrNoDefaultStyle
	}

	b := &Builder{
		legs:         sortByDate(legs),
		colors:       palette(len(legs), opts.Seed),
		styles:       opts.Styles,
		path:         opts.Path,
		totalFrames:  opts.TotalFrames,
		pointsPerLeg: opts.PointsPerLeg,
		cache:        make(map[int]legPath),
	}
	b.framesPerLeg = b.totalFrames / len(b.legs)
	if b.framesPerLeg < 1 {
		b.framesPerLeg = 1
	}
	return b, nil
}

// Frame produces the drawable traces for frame index i: fully drawn paths
// and endpoint markers for every completed leg, then the in-progress leg's
// partial path, source marker, moving point, and (once it finishes) its
// destination marker, in that draw order. Path generation errors propagate
// to the caller. After the journey has finished, every index returns the
// frozen final frame; callers must not mutate it.
func (b *Builder) Frame(i int) ([]Trace, error) {
	if b.terminal {
		return b.frozen, nil
	}

	cur := i / b.framesPerLeg
	if cur > len(b.legs)-1 {
		// overrun frame indices keep animating the final leg
		cur = len(b.legs) - 1
	}
	frameWithinLeg := i%b.framesPerLeg + 1

	var traces []Trace

	for j := 0; j < cur; j++ {
		leg := b.legs[j]
		p, err := b.legPath(j)
		if err != nil {
			return nil, err
		}
		traces = append(traces,
			b.pathTrace(p.lats, p.lons, leg.Vehicle, completedWidth, j),
			b.markerTrace(leg.Source, leg.Vehicle),
			b.markerTrace(leg.Target, leg.Vehicle),
		)
	}

	leg := b.legs[cur]
	p, err := b.legPath(cur)
	if err != nil {
		return nil, err
	}

	progress := float64(frameWithinLeg) / float64(b.framesPerLeg)
	if progress > 1 {
		progress = 1
	}
	show := int(progress * float64(len(p.lats)))
	if show < 2 {
		show = 2
	}

	if show > 1 {
		traces = append(traces, b.pathTrace(p.lats[:show], p.lons[:show], leg.Vehicle, activeWidth, cur))
	}

	traces = append(traces, b.markerTrace(leg.Source, leg.Vehicle))

	if progress > 0 {
		traces = append(traces, b.movingPointTrace(p.lats[show-1], p.lons[show-1], leg.Vehicle))
	}

	if progress >= 1 {
		traces = append(traces, b.markerTrace(leg.Target, leg.Vehicle))
		if cur == len(b.legs)-1 {
			b.terminal = true
			b.frozen = traces
		}
	}
	return traces, nil
}

// Frames generates every frame from 0 through TotalFrames-1 in order,
// stopping at the first failed frame.
func (b *Builder) Frames() ([][]Trace, error) {
	frames := make([][]Trace, b.totalFrames)
	for i := range frames {
		f, err := b.Frame(i)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames[i] = f
	}
	return frames, nil
}

// Bounds returns the lon/lat box covering every leg path in the journey.
func (b *Builder) Bounds() (geo.BBox, error) {
	var box geo.BBox
	for i := range b.legs {
		p, err := b.legPath(i)
		if err != nil {
			return geo.BBox{}, err
		}
		for j := range p.lats {
			if i == 0 && j == 0 {
				box = geo.NewBBox(p.lons[j], p.lats[j])
				continue
			}
			box.Extend(p.lons[j], p.lats[j])
		}
	}
	return box, nil
}

// Legs exposes the date-sorted legs. The slice is the builder's own view;
// callers must treat it as read-only.
func (b *Builder) Legs() []Leg { return b.legs }

// Terminal reports whether the final leg's destination has been drawn.
func (b *Builder) Terminal() bool { return b.terminal }

func (b *Builder) TotalFrames() int  { return b.totalFrames }
func (b *Builder) FramesPerLeg() int { return b.framesPerLeg }

// LegColor returns the persistent palette color of leg i.
func (b *Builder) LegColor(i int) string { return b.colors[i] }

func (b *Builder) legPath(i int) (legPath, error) {
	if p, ok := b.cache[i]; ok {
		return p, nil
	}
	leg := b.legs[i]
	lats, lons, err := b.path(leg.Source.Lat, leg.Source.Lon, leg.Target.Lat, leg.Target.Lon, b.pointsPerLeg)
	if err != nil {
		return legPath{}, fmt.Errorf("anim: leg %d (%s to %s): %w", i, leg.Source.City, leg.Target.City, err)
	}
	p := legPath{lats: lats, lons: lons}
	b.cache[i] = p
	return p, nil
}
