package anim

import (
	"testing"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := New([]Leg{nyToLondon()}, Options{TotalFrames: 20, PointsPerLeg: 10, Path: linearPath})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func TestPathTrace(t *testing.T) {
	b := testBuilder(t)
	lats := []float64{40.7128, 45.0, 51.5074}
	lons := []float64{-74.0060, -37.0, -0.1278}

	tr := b.pathTrace(lats, lons, "plane", 3, 0)

	if tr.Kind != KindPath {
		t.Errorf("expected KindPath, got %v", tr.Kind)
	}
	if tr.Mode != "lines" {
		t.Errorf("expected mode lines, got %q", tr.Mode)
	}
	if tr.LineWidth != 3 {
		t.Errorf("expected width 3, got %d", tr.LineWidth)
	}
	if tr.Name != "Plane path" || tr.Text != "Plane path" {
		t.Errorf("unexpected name/text: %q / %q", tr.Name, tr.Text)
	}
	// path color is the leg's palette color, not the vehicle style color
	if tr.Color == DefaultStyles()["plane"].Color {
		t.Error("path color must come from the leg palette, not the vehicle style")
	}
	if tr.Color != b.LegColor(0) {
		t.Errorf("expected leg color %s, got %s", b.LegColor(0), tr.Color)
	}
	if len(tr.Lats) != 3 || len(tr.Lons) != 3 {
		t.Errorf("coordinates not preserved: %d lats, %d lons", len(tr.Lats), len(tr.Lons))
	}
}

func TestMarkerTrace(t *testing.T) {
	b := testBuilder(t)

	tests := []struct {
		name      string
		place     Place
		vehicle   string
		wantColor string
	}{
		{"known vehicle", Place{City: "New York", Lat: 40.7128, Lon: -74.0060}, "plane", DefaultStyles()["plane"].Color},
		{"other known vehicle", Place{City: "London", Lat: 51.5074, Lon: -0.1278}, "train", DefaultStyles()["train"].Color},
		{"unknown vehicle falls back to global default", Place{City: "Atlantis", Lat: 0, Lon: 0}, "submarine", DefaultColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := b.markerTrace(tt.place, tt.vehicle)
			if tr.Kind != KindMarker {
				t.Errorf("expected KindMarker, got %v", tr.Kind)
			}
			if tr.Mode != "markers+text" {
				t.Errorf("expected mode markers+text, got %q", tr.Mode)
			}
			if len(tr.Lats) != 1 || tr.Lats[0] != tt.place.Lat || tr.Lons[0] != tt.place.Lon {
				t.Errorf("unexpected coordinates: %v / %v", tr.Lats, tr.Lons)
			}
			if tr.Text != tt.place.City {
				t.Errorf("expected text %q, got %q", tt.place.City, tr.Text)
			}
			if tr.Name != "City "+tt.place.City {
				t.Errorf("expected name %q, got %q", "City "+tt.place.City, tr.Name)
			}
			if tr.Color != tt.wantColor {
				t.Errorf("expected color %s, got %s", tt.wantColor, tr.Color)
			}
		})
	}
}

func TestMovingPointTrace(t *testing.T) {
	b := testBuilder(t)

	tr := b.movingPointTrace(45.0, -37.0, "car")
	if tr.Kind != KindMovingPoint {
		t.Errorf("expected KindMovingPoint, got %v", tr.Kind)
	}
	if tr.Text != DefaultStyles()["car"].Icon {
		t.Errorf("expected car icon, got %q", tr.Text)
	}
	if tr.Color != DefaultStyles()["car"].Color {
		t.Errorf("expected car color, got %q", tr.Color)
	}
	if tr.Name != "Moving By car" {
		t.Errorf("unexpected name %q", tr.Name)
	}
	if tr.Lats[0] != 45.0 || tr.Lons[0] != -37.0 {
		t.Errorf("unexpected coordinates: %v / %v", tr.Lats, tr.Lons)
	}
}

func TestMovingPointTraceUnknownVehicle(t *testing.T) {
	b := testBuilder(t)

	tr := b.movingPointTrace(45.0, -37.0, "spaceship")
	def := DefaultStyles()["default"]
	if tr.Text != def.Icon {
		t.Errorf("expected default icon, got %q", tr.Text)
	}
	if tr.Color != def.Color {
		t.Errorf("expected default color, got %q", tr.Color)
	}
	// the name still reports the requested vehicle
	if tr.Name != "Moving By spaceship" {
		t.Errorf("unexpected name %q", tr.Name)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plane", "Plane"},
		{"TRAIN", "TRAIN"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := title(tt.in); got != tt.want {
			t.Errorf("title(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
