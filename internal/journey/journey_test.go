package journey

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

const sampleJSON = `[
  {
    "source": {"lat": 40.7128, "lng": -74.0060, "city": "New York"},
    "target": {"lat": 51.5074, "lng": -0.1278, "city": "London"},
    "date": "2024-01-01",
    "vehicle": "plane"
  },
  {
    "source": {"lat": 51.5074, "lng": -0.1278, "city": "London"},
    "target": {"lat": 48.8566, "lng": 2.3522, "city": "Paris"},
    "date": "2024-02-01",
    "vehicle": "train"
  }
]`

func TestLoadJSON(t *testing.T) {
	p := writeFile(t, "flights.json", sampleJSON)
	legs, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(legs))
	}
	first := legs[0]
	if first.Source.City != "New York" || first.Target.City != "London" {
		t.Errorf("unexpected cities: %s -> %s", first.Source.City, first.Target.City)
	}
	if first.Source.Lat != 40.7128 || first.Source.Lon != -74.0060 {
		t.Errorf("unexpected source coordinates: %f, %f", first.Source.Lat, first.Source.Lon)
	}
	if first.Vehicle != "plane" {
		t.Errorf("unexpected vehicle %q", first.Vehicle)
	}
	if first.Date.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("unexpected date %v", first.Date)
	}
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad date", `[{"source":{"lat":1,"lng":2,"city":"A"},"target":{"lat":3,"lng":4,"city":"B"},"date":"01/02/2024","vehicle":"car"}]`},
		{"latitude out of range", `[{"source":{"lat":91,"lng":2,"city":"A"},"target":{"lat":3,"lng":4,"city":"B"},"date":"2024-01-01","vehicle":"car"}]`},
		{"longitude out of range", `[{"source":{"lat":1,"lng":2,"city":"A"},"target":{"lat":3,"lng":-200,"city":"B"},"date":"2024-01-01","vehicle":"car"}]`},
		{"missing city", `[{"source":{"lat":1,"lng":2},"target":{"lat":3,"lng":4,"city":"B"},"date":"2024-01-01","vehicle":"car"}]`},
		{"not json", `source,target`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, "bad.json", tt.content)
			if _, err := LoadJSON(p); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadJSONEmpty(t *testing.T) {
	p := writeFile(t, "empty.json", `[]`)
	if _, err := LoadJSON(p); !errors.Is(err, ErrNoLegs) {
		t.Fatalf("expected ErrNoLegs, got %v", err)
	}
}

func TestLoadCSV(t *testing.T) {
	content := `source_city,source_lat,source_lng,target_city,target_lat,target_lng,date,vehicle
New York,40.7128,-74.0060,London,51.5074,-0.1278,2024-01-01,plane
London,51.5074,-0.1278,Paris,48.8566,2.3522,2024-02-01,train
Broken,not-a-number,0,Row,0,0,2024-03-01,car
`
	p := writeFile(t, "journey.csv", content)
	legs, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the broken row is skipped, not fatal
	if len(legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(legs))
	}
	if legs[1].Vehicle != "train" || legs[1].Target.City != "Paris" {
		t.Errorf("unexpected second leg: %+v", legs[1])
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	p := writeFile(t, "journey.csv", "source_city,source_lat\nA,1\n")
	if _, err := LoadCSV(p); err == nil {
		t.Error("expected error for missing columns")
	}
}

func TestLoadCSVNoValidRows(t *testing.T) {
	content := `source_city,source_lat,source_lng,target_city,target_lat,target_lng,date,vehicle
A,x,y,B,z,w,2024-01-01,car
`
	p := writeFile(t, "journey.csv", content)
	if _, err := LoadCSV(p); !errors.Is(err, ErrNoLegs) {
		t.Fatalf("expected ErrNoLegs, got %v", err)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	p := writeFile(t, "journey.kml", "<kml/>")
	if _, err := Load(p); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
