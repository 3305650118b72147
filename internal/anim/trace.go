package anim

import "unicode"

// Kind discriminates the drawable trace variants.
type Kind int

const (
	// KindPath is a polyline along a leg's great-circle path.
	KindPath Kind = iota
	// KindMarker is a labeled city marker at a leg endpoint.
	KindMarker
	// KindMovingPoint is the vehicle glyph at the current travel position.
	KindMovingPoint
)

// Trace is one drawable primitive within a frame. Coordinates are parallel
// degree slices; markers and moving points carry a single point. Consumers
// must respect slice order within a frame as draw order.
type Trace struct {
	Kind      Kind
	Lats      []float64
	Lons      []float64
	Mode      string
	Color     string
	LineWidth int
	Text      string
	Name      string
}

// pathTrace builds the polyline primitive for leg legIdx, colored with the
// leg's palette color.
func (b *Builder) pathTrace(lats, lons []float64, vehicle string, width, legIdx int) Trace {
	name := title(vehicle) + " path"
	return Trace{
		Kind:      KindPath,
		Lats:      lats,
		Lons:      lons,
		Mode:      "lines",
		Color:     b.colors[legIdx],
		LineWidth: width,
		Text:      name,
		Name:      name,
	}
}

// markerTrace builds a city marker. The outline color comes from the vehicle
// style when one exists, else the global default color.
func (b *Builder) markerTrace(p Place, vehicle string) Trace {
	color := DefaultColor
	if s, ok := b.styles[vehicle]; ok && s.Color != "" {
		color = s.Color
	}
	return Trace{
		Kind:  KindMarker,
		Lats:  []float64{p.Lat},
		Lons:  []float64{p.Lon},
		Mode:  "markers+text",
		Color: color,
		Text:  p.City,
		Name:  "City " + p.City,
	}
}

// movingPointTrace builds the vehicle glyph at the current travel position,
// falling back to the "default" style entry for unknown vehicle tags.
func (b *Builder) movingPointTrace(lat, lon float64, vehicle string) Trace {
	s, ok := b.styles[vehicle]
	if !ok {
		s = b.styles["default"]
	}
	return Trace{
		Kind:  KindMovingPoint,
		Lats:  []float64{lat},
		Lons:  []float64{lon},
		Mode:  "markers+text",
		Color: s.Color,
		Text:  s.Icon,
		Name:  "Moving By " + vehicle,
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
