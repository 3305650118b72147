package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"globetrot/internal/anim"
)

// renderFrame draws the current animation frame into a w x h character map:
// path traces on the braille microgrid, then markers, labels, and moving
// points as cell overlays, honoring the frame's draw order.
func (m Model) renderFrame(w, h int) string {
	cells := make([][]rune, h)
	colors := make([][]string, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		colors[y] = make([]string, w)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}

	frame := m.frames[m.frameIdx]

	br := newBrailleBuf(w, h)
	for _, tr := range frame {
		if tr.Kind != anim.KindPath {
			continue
		}
		var prevX, prevY int
		has := false
		for i := range tr.Lats {
			mx, my, ok := m.screenXYMicro(tr.Lons[i], tr.Lats[i], w, h)
			if !ok {
				continue
			}
			if has {
				br.drawLineMicro(prevX, prevY, mx, my, tr.Color)
			}
			prevX, prevY = mx, my
			has = true
		}
	}
	br.toCells(cells, colors)

	for _, tr := range frame {
		switch tr.Kind {
		case anim.KindMarker:
			x, y, ok := m.screenXY(tr.Lons[0], tr.Lats[0], w, h)
			if !ok {
				continue
			}
			putRune(cells, colors, x, y, '●', tr.Color)
			writeString(cells, colors, x+2, y, tr.Text, string(labelFg))
		case anim.KindMovingPoint:
			x, y, ok := m.screenXY(tr.Lons[0], tr.Lats[0], w, h)
			if !ok {
				continue
			}
			writeString(cells, colors, x, y, tr.Text, tr.Color)
		}
	}

	return joinStyled(cells, colors)
}

// putRune places a single-width rune, bounds-checked.
func putRune(cells [][]rune, colors [][]string, x, y int, r rune, color string) {
	if y < 0 || y >= len(cells) || x < 0 || x >= len(cells[y]) {
		return
	}
	cells[y][x] = r
	colors[y][x] = color
}

// writeString places s horizontally starting at (x, y). Double-width runes
// (vehicle icon emoji) blank their trailing cell so rows keep their width.
func writeString(cells [][]rune, colors [][]string, x, y int, s, color string) {
	if y < 0 || y >= len(cells) {
		return
	}
	for _, r := range s {
		if x >= len(cells[y]) {
			return
		}
		rw := runewidth.RuneWidth(r)
		if x >= 0 {
			cells[y][x] = r
			colors[y][x] = color
			if rw == 2 && x+1 < len(cells[y]) {
				cells[y][x+1] = 0 // consumed by the wide rune
			}
		}
		x += max(rw, 1)
	}
}

// joinStyled turns the cell grids into styled terminal lines, grouping runs
// of equally colored cells to keep the escape-sequence count down.
func joinStyled(cells [][]rune, colors [][]string) string {
	styleCache := map[string]lipgloss.Style{}
	styleFor := func(color string) lipgloss.Style {
		st, ok := styleCache[color]
		if !ok {
			st = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			styleCache[color] = st
		}
		return st
	}

	lines := make([]string, len(cells))
	for y := range cells {
		var sb strings.Builder
		var run []rune
		runColor := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor == "" {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(styleFor(runColor).Render(string(run)))
			}
			run = run[:0]
		}
		for x := range cells[y] {
			r := cells[y][x]
			if r == 0 {
				continue
			}
			if colors[y][x] != runColor {
				flush()
				runColor = colors[y][x]
			}
			run = append(run, r)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille
// rendering, applying zoom around the viewport center and pan offsets.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !(m.bounds.MaxX > m.bounds.MinX && m.bounds.MaxY > m.bounds.MinY) {
		return 0, 0, false
	}
	nx := (lon - m.bounds.MinX) / (m.bounds.MaxX - m.bounds.MinX)
	ny := (lat - m.bounds.MinY) / (m.bounds.MaxY - m.bounds.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps lon/lat to cell coordinates considering zoom and pan.
func (m Model) screenXY(lon, lat float64, w, h int) (int, int, bool) {
	if !(m.bounds.MaxX > m.bounds.MinX && m.bounds.MaxY > m.bounds.MinY) {
		return 0, 0, false
	}
	nx := (lon - m.bounds.MinX) / (m.bounds.MaxX - m.bounds.MinX)
	ny := (lat - m.bounds.MinY) / (m.bounds.MaxY - m.bounds.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}
