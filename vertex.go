package rita

import (
	"github.com/rita/rita/internal/color"
	"github.com/rita/rita/internal/mathutil"
)

// VertexVariant selects which vertex/fragment fields the default stages
// populate. Simple omits Tangent and the fragment's WorldPos/WorldTangent;
// Default carries the full set. Both are always valid to construct by
// hand; the variant only changes what the *default* vertex stage fills in.
type VertexVariant uint8

const (
	// Default carries position, normal, tangent, uv and color end to end.
	Default VertexVariant = iota
	// Simple omits Tangent and per-fragment world position/tangent.
	Simple
)

// Vertex is the data a vertex shader consumes and produces.
type Vertex struct {
	Position mathutil.Vec4
	Normal   mathutil.Vec3
	Tangent  mathutil.Vec3
	UV       mathutil.Vec2
	Color    color.Color
}

// Equal reports whether v and o carry identical fields.
func (v Vertex) Equal(o Vertex) bool {
	return v.Position == o.Position &&
		v.Normal == o.Normal &&
		v.Tangent == o.Tangent &&
		v.UV == o.UV &&
		v.Color == o.Color
}

// VertexShader transforms one input vertex into clip-space output. A nil
// VertexShader leaves the vertex to the engine's default stage.
type VertexShader func(ctx *RenderContext, in *Vertex) Vertex

// Fragment is one interpolated sample produced by the vertex stage and
// primitive rasterizer, ready for the fragment processor.
type Fragment struct {
	WorldPos     mathutil.Vec3
	WorldNormal  mathutil.Vec3
	WorldTangent mathutil.Vec3
	UV           mathutil.Vec2
	Color        color.Color

	X, Y     int
	InvZ     float32
	Clipping bool
}

// lerpFragment linearly interpolates every attribute of a and b at
// parameter t, in screen space (not perspective-correct), matching the
// reference rasterizer's default interpolation.
func lerpFragment(a, b Fragment, t float32) Fragment {
	var r Fragment
	r.WorldPos.Lerp(&a.WorldPos, &b.WorldPos, t)
	r.WorldNormal.Lerp(&a.WorldNormal, &b.WorldNormal, t)
	r.WorldTangent.Lerp(&a.WorldTangent, &b.WorldTangent, t)
	r.UV.Lerp(&a.UV, &b.UV, t)
	r.Color = a.Color.Lerp(b.Color, t)
	r.InvZ = a.InvZ + t*(b.InvZ-a.InvZ)
	return r
}

// FragmentShader computes the output color for one fragment. A nil
// FragmentShader uses the engine's default: DIFFUSE-modulated vertex color
// if a diffuse texture is bound, else the vertex color unchanged.
type FragmentShader func(ctx *RenderContext, in *Fragment) color.Color
