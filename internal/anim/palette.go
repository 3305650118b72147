package anim

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// palette returns n leg colors as hex strings. Colors are drawn from a
// seeded generator so the same seed always yields the same assignment,
// keeping frame output reproducible under test.
func palette(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	out := make([]string, n)
	for i := range out {
		h := rng.Float64() * 360
		s := 0.55 + 0.35*rng.Float64()
		v := 0.75 + 0.25*rng.Float64()
		out[i] = colorful.Hsv(h, s, v).Hex()
	}
	return out
}
