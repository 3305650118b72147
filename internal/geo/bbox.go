package geo

// BBox is an axis-aligned lon/lat bounding box (X is longitude, Y latitude).
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewBBox returns a box covering the single point (lon, lat).
func NewBBox(lon, lat float64) BBox {
	return BBox{MinX: lon, MinY: lat, MaxX: lon, MaxY: lat}
}

// Extend grows the box to include (lon, lat).
func (b *BBox) Extend(lon, lat float64) {
	if lon < b.MinX {
		b.MinX = lon
	}
	if lat < b.MinY {
		b.MinY = lat
	}
	if lon > b.MaxX {
		b.MaxX = lon
	}
	if lat > b.MaxY {
		b.MaxY = lat
	}
}

// Pad expands each side by frac of the box's span, clamped to world bounds.
// Degenerate spans get a minimum padding of one degree so a single-city
// journey still projects to a usable viewport.
func (b BBox) Pad(frac float64) BBox {
	dx := (b.MaxX - b.MinX) * frac
	dy := (b.MaxY - b.MinY) * frac
	if dx < 1 {
		dx = 1
	}
	if dy < 1 {
		dy = 1
	}
	out := BBox{MinX: b.MinX - dx, MinY: b.MinY - dy, MaxX: b.MaxX + dx, MaxY: b.MaxY + dy}
	if out.MinX < -180 {
		out.MinX = -180
	}
	if out.MinY < -90 {
		out.MinY = -90
	}
	if out.MaxX > 180 {
		out.MaxX = 180
	}
	if out.MaxY > 90 {
		out.MaxY = 90
	}
	return out
}
