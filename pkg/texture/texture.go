// Package texture implements the (u,v,p) -> Color sampling contract
// (core.Texture) consumed by materials: solid colors, a 3D checker
// pattern, Perlin noise, and decoded-image lookups.
package texture

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Solid returns the same color everywhere.
type Solid struct {
	Color core.Color
}

// NewSolid creates a solid-color texture.
func NewSolid(c core.Color) *Solid {
	return &Solid{Color: c}
}

// Value ignores u, v, and p.
func (s *Solid) Value(u, v float64, p core.Point3) core.Color {
	return s.Color
}

// Checker alternates between two sub-textures based on the sign of
// sin(scale*p.x)*sin(scale*p.y)*sin(scale*p.z), a 3D pattern independent
// of UV parameterization.
type Checker struct {
	Scale float64
	Even  core.Texture
	Odd   core.Texture
}

// NewChecker builds a checker texture from two solid colors.
func NewChecker(scale float64, c1, c2 core.Color) *Checker {
	return &Checker{Scale: scale, Even: NewSolid(c1), Odd: NewSolid(c2)}
}

// NewCheckerTextures builds a checker texture from two arbitrary textures.
func NewCheckerTextures(scale float64, even, odd core.Texture) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// Gradient lerps linearly between Bottom and Top by v, used as the sky
// background: v=0.5*(direction.Y+1) for a bounced ray and the pixel's
// screen-space v for a primary ray, so both read the same vertical
// gradient near the horizon.
type Gradient struct {
	Top, Bottom core.Color
}

// NewGradient builds a vertical-gradient background texture.
func NewGradient(top, bottom core.Color) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

// Value ignores u and p; only the vertical coordinate v drives the lerp.
func (g *Gradient) Value(u, v float64, p core.Point3) core.Color {
	return g.Bottom.Multiply(1 - v).Add(g.Top.Multiply(v))
}

// Value evaluates the 3D sign pattern and delegates to the matching
// sub-texture.
func (c *Checker) Value(u, v float64, p core.Point3) core.Color {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// Noise is a Perlin-noise marble-like texture, backed by
// github.com/aquilax/go-perlin's lattice noise rather than a hand-rolled
// permutation table.
type Noise struct {
	perlin *perlin.Perlin
	Scale  float64
}

// NewNoise builds a noise texture at the given spatial scale, using
// go-perlin with alpha=2, beta=2 and 3 octaves; seed ties the pattern to
// the scene's RNG seed so renders are reproducible.
func NewNoise(scale float64, seed int64) *Noise {
	return &Noise{perlin: perlin.NewPerlin(2, 2, 3, seed), Scale: scale}
}

// Value returns a grey, turbulence-warped marble pattern: 0.5*(1 +
// sin(scale*p.z + 10*turbulence(p))).
func (n *Noise) Value(u, v float64, p core.Point3) core.Color {
	turb := n.turbulence(p, 7)
	grey := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*turb))
	return core.NewVec3(grey, grey, grey)
}

func (n *Noise) turbulence(p core.Point3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * n.perlin.Noise3D(temp.X, temp.Y, temp.Z)
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return math.Abs(accum)
}

// Image samples a decoded RGB pixel buffer. Decoding the source file
// (PNG/JPEG) is an external collaborator's job (spec.md §1); this type
// only consumes the already-decoded buffer.
type Image struct {
	Width, Height int
	Pixels        []core.Color // row-major, Pixels[y*Width+x], row 0 at top
}

// NewImage wraps a decoded pixel buffer as a texture.
func NewImage(width, height int, pixels []core.Color) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Value clamps UV into [0,1] and nearest-neighbor samples the buffer. If
// no pixels were loaded, returns a debug cyan so missing textures are
// obvious rather than silently black.
func (img *Image) Value(u, v float64, p core.Point3) core.Color {
	if len(img.Pixels) == 0 {
		return core.NewVec3(0, 1, 1)
	}
	u = clamp01(u)
	v = 1.0 - clamp01(v) // flip V: image row 0 is the top

	i := int(u * float64(img.Width))
	j := int(v * float64(img.Height))
	if i >= img.Width {
		i = img.Width - 1
	}
	if j >= img.Height {
		j = img.Height - 1
	}
	return img.Pixels[j*img.Width+i]
}

// Grey wraps a single-channel decoded buffer (e.g. a roughness or alpha
// map) and replicates it across R,G,B.
type Grey struct {
	Width, Height int
	Values        []float64
}

// NewGrey wraps a decoded single-channel buffer as a texture.
func NewGrey(width, height int, values []float64) *Grey {
	return &Grey{Width: width, Height: height, Values: values}
}

// Value samples the single channel and replicates it across all three
// color components.
func (g *Grey) Value(u, v float64, p core.Point3) core.Color {
	if len(g.Values) == 0 {
		return core.NewVec3(0, 0, 0)
	}
	u = clamp01(u)
	v = 1.0 - clamp01(v)
	i := int(u * float64(g.Width))
	j := int(v * float64(g.Height))
	if i >= g.Width {
		i = g.Width - 1
	}
	if j >= g.Height {
		j = g.Height - 1
	}
	val := g.Values[j*g.Width+i]
	return core.NewVec3(val, val, val)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ColorOrTexture is a tagged union letting scene builders pass either a
// flat color or a full texture wherever a material parameter is
// per-pixel driven (spec.md §2 Texture row).
type ColorOrTexture struct {
	texture core.Texture
}

// FromColor tags a flat color as a ColorOrTexture.
func FromColor(c core.Color) ColorOrTexture {
	return ColorOrTexture{texture: NewSolid(c)}
}

// FromTexture tags an arbitrary texture as a ColorOrTexture.
func FromTexture(t core.Texture) ColorOrTexture {
	return ColorOrTexture{texture: t}
}

// Value samples the underlying color or texture.
func (c ColorOrTexture) Value(u, v float64, p core.Point3) core.Color {
	if c.texture == nil {
		return core.NewVec3(0, 0, 0)
	}
	return c.texture.Value(u, v, p)
}
