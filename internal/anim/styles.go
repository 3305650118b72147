package anim

// Style describes how a vehicle tag is drawn: the color of its moving point
// and marker outlines, and the glyph shown while it travels.
type Style struct {
	Color string
	Icon  string
}

// DefaultColor is the marker outline fallback for vehicle tags that have no
// style entry at all.
const DefaultColor = "#FFA726"

// DefaultStyles returns the built-in vehicle style table. The "default"
// entry is the moving-point fallback for unrecognized vehicle tags.
func DefaultStyles() map[string]Style {
	return map[string]Style{
		"plane":   {Color: "#FF6B6B", Icon: "✈"},
		"train":   {Color: "#4ECDC4", Icon: "🚄"},
		"car":     {Color: "#45B7D1", Icon: "🚗"},
		"rocket":  {Color: "#F7B7A3", Icon: "🚀"},
		"ship":    {Color: "#FFB400", Icon: "🚢"},
		"default": {Color: DefaultColor, Icon: "📍"},
	}
}
