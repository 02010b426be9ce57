package texture

import (
	"math"

	"github.com/rita/rita/internal/color"
	"github.com/rita/rita/internal/mathutil"
)

// SampleEquirect samples t as an equirectangular panorama along direction
// dir (need not be normalized), mapping longitude to u and latitude to v:
//
//	u = atan2(dz, dx) / (2*pi) + 0.5
//	v = asin(dy / |dir|) / pi + 0.5 ... simplified to dy * 0.5 + 0.5 for a
//	    pre-normalized direction, matching the engine's fast panorama path.
func (t *Texture) SampleEquirect(dir mathutil.Vec3) color.Color {
	var n mathutil.Vec3
	n.Norm(&dir)
	u := float32(math.Atan2(float64(n[2]), float64(n[0]))/(2*math.Pi)) + 0.5
	v := n[1]*0.5 + 0.5
	return t.Sample(u, v)
}
