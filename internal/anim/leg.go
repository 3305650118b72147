package anim

import (
	"sort"
	"time"
)

// Place is a named endpoint of a travel leg, in degrees.
type Place struct {
	City string
	Lat  float64
	Lon  float64
}

// Leg is one directed travel segment. The builder treats legs as read-only
// and never mutates them.
type Leg struct {
	Source  Place
	Target  Place
	Date    time.Time
	Vehicle string
}

// sortByDate returns a copy of legs in ascending date order. The sort is
// stable, so legs sharing a date keep their input order.
func sortByDate(legs []Leg) []Leg {
	out := make([]Leg, len(legs))
	copy(out, legs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
