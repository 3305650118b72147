package geo

import (
	"errors"
	"math"
)

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// PathFunc computes an interpolated path of numPoints positions between two
// coordinates, returning parallel latitude and longitude slices. It matches
// the contract of GreatCircle so callers can inject alternate algorithms.
type PathFunc func(lat1, lon1, lat2, lon2 float64, numPoints int) ([]float64, []float64, error)

var (
	// ErrNumPoints is returned when fewer than two path points are requested.
	ErrNumPoints = errors.New("geo: num points must be at least 2")
	// ErrAntipodal is returned for antipodal endpoints, where infinitely many
	// shortest paths exist.
	ErrAntipodal = errors.New("geo: antipodal points have ambiguous great circle path")
)

// central angles closer than this to 0 or pi are treated as degenerate
const degenerateAngle = 1e-10

// GreatCircle interpolates numPoints evenly spaced positions along the
// shortest spherical path between (lat1, lon1) and (lat2, lon2), all in
// degrees. The first point equals the start and the last equals the end.
// Coincident endpoints yield numPoints copies of the start point.
func GreatCircle(lat1, lon1, lat2, lon2 float64, numPoints int) ([]float64, []float64, error) {
	if numPoints < 2 {
		return nil, nil, ErrNumPoints
	}

	rlat1, rlon1 := toRad(lat1), toRad(lon1)
	rlat2, rlon2 := toRad(lat2), toRad(lon2)

	// spherical law of cosines for the central angle
	cd := math.Sin(rlat1)*math.Sin(rlat2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Cos(rlon2-rlon1)
	delta := math.Acos(clamp(cd, -1, 1))

	if math.Abs(delta) < degenerateAngle {
		lats := make([]float64, numPoints)
		lons := make([]float64, numPoints)
		for i := range lats {
			lats[i] = lat1
			lons[i] = lon1
		}
		return lats, lons, nil
	}
	if math.Abs(delta-math.Pi) < degenerateAngle {
		return nil, nil, ErrAntipodal
	}

	sd := math.Sin(delta)
	lats := make([]float64, numPoints)
	lons := make([]float64, numPoints)
	for i := 0; i < numPoints; i++ {
		f := float64(i) / float64(numPoints-1)
		a := math.Sin((1-f)*delta) / sd
		b := math.Sin(f*delta) / sd

		// slerp between the endpoint unit vectors
		x := a*math.Cos(rlat1)*math.Cos(rlon1) + b*math.Cos(rlat2)*math.Cos(rlon2)
		y := a*math.Cos(rlat1)*math.Sin(rlon1) + b*math.Cos(rlat2)*math.Sin(rlon2)
		z := a*math.Sin(rlat1) + b*math.Sin(rlat2)

		lats[i] = toDeg(math.Atan2(z, math.Sqrt(x*x+y*y)))
		lons[i] = toDeg(math.Atan2(y, x))
	}
	return lats, lons, nil
}

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
