// Package journey loads travel legs from journey files. The JSON format is a
// flat array of legs with source/target endpoints, an ISO-8601 date, and a
// vehicle tag; CSV journeys carry the same fields as columns.
package journey

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"globetrot/internal/anim"
)

var ErrNoLegs = errors.New("journey: no legs found")

const dateLayout = "2006-01-02"

type placeJSON struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	City string  `json:"city"`
}

type legJSON struct {
	Source  placeJSON `json:"source"`
	Target  placeJSON `json:"target"`
	Date    string    `json:"date"`
	Vehicle string    `json:"vehicle"`
}

// Load reads a journey file, dispatching on extension (.json or .csv).
func Load(path string) ([]anim.Leg, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("journey: unsupported file type %q", ext)
	}
}

// LoadJSON reads legs from a JSON array file.
func LoadJSON(path string) ([]anim.Leg, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []legJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("journey: %w", err)
	}
	legs := make([]anim.Leg, 0, len(raw))
	for i, l := range raw {
		d, err := time.Parse(dateLayout, l.Date)
		if err != nil {
			return nil, fmt.Errorf("journey: leg %d: invalid date %q", i, l.Date)
		}
		leg := anim.Leg{
			Source:  anim.Place{City: l.Source.City, Lat: l.Source.Lat, Lon: l.Source.Lng},
			Target:  anim.Place{City: l.Target.City, Lat: l.Target.Lat, Lon: l.Target.Lng},
			Date:    d,
			Vehicle: l.Vehicle,
		}
		if err := checkLeg(leg); err != nil {
			return nil, fmt.Errorf("journey: leg %d: %w", i, err)
		}
		legs = append(legs, leg)
	}
	if len(legs) == 0 {
		return nil, ErrNoLegs
	}
	return legs, nil
}

// LoadCSV reads legs from a CSV file. Required columns (case-insensitive):
// source_city, source_lat, source_lng, target_city, target_lat, target_lng,
// date, vehicle. Rows with unparsable coordinates or dates are skipped.
func LoadCSV(path string) ([]anim.Leg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("journey: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("journey: empty csv")
	}

	idx := map[string]int{}
	for i, h := range recs[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	required := []string{"source_city", "source_lat", "source_lng", "target_city", "target_lat", "target_lng", "date", "vehicle"}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("journey: csv missing column %q", col)
		}
	}

	var legs []anim.Leg
	for _, row := range recs[1:] {
		if len(row) < len(recs[0]) {
			continue
		}
		slat, err1 := strconv.ParseFloat(strings.TrimSpace(row[idx["source_lat"]]), 64)
		slng, err2 := strconv.ParseFloat(strings.TrimSpace(row[idx["source_lng"]]), 64)
		tlat, err3 := strconv.ParseFloat(strings.TrimSpace(row[idx["target_lat"]]), 64)
		tlng, err4 := strconv.ParseFloat(strings.TrimSpace(row[idx["target_lng"]]), 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		d, err := time.Parse(dateLayout, strings.TrimSpace(row[idx["date"]]))
		if err != nil {
			continue
		}
		leg := anim.Leg{
			Source:  anim.Place{City: strings.TrimSpace(row[idx["source_city"]]), Lat: slat, Lon: slng},
			Target:  anim.Place{City: strings.TrimSpace(row[idx["target_city"]]), Lat: tlat, Lon: tlng},
			Date:    d,
			Vehicle: strings.TrimSpace(row[idx["vehicle"]]),
		}
		if err := checkLeg(leg); err != nil {
			continue
		}
		legs = append(legs, leg)
	}
	if len(legs) == 0 {
		return nil, ErrNoLegs
	}
	return legs, nil
}

func checkLeg(l anim.Leg) error {
	if err := checkPlace(l.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := checkPlace(l.Target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	return nil
}

func checkPlace(p anim.Place) error {
	if p.City == "" {
		return errors.New("missing city name")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %g out of range", p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("longitude %g out of range", p.Lon)
	}
	return nil
}
