// Package camera implements the thin-lens perspective camera: a
// configurable field of view and aperture, producing rays with a
// random lens-disk origin and a random time within the shutter
// interval for motion blur.
package camera

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Camera generates primary rays for rendering.
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera builds a camera looking from lookfrom toward lookat, with
// vup establishing the up direction, vfovDegrees vertical field of
// view, aspect the viewport's width/height ratio, aperture the lens
// diameter (0 disables depth of field), focusDist the distance to the
// plane in perfect focus, and [time0,time1] the shutter interval for
// motion blur.
func NewCamera(lookfrom, lookat, vup core.Point3, vfovDegrees, aspect, aperture, focusDist, time0, time1 float64) *Camera {
	theta := vfovDegrees * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := aspect * viewportHeight

	w := lookfrom.Subtract(lookat).Unit()
	u := vup.Cross(w).Unit()
	v := w.Cross(u)

	origin := lookfrom
	horizontal := u.Multiply(focusDist * viewportWidth)
	vertical := v.Multiply(focusDist * viewportHeight)
	lowerLeft := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeft,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		time0:           time0,
		time1:           time1,
	}
}

// GetRay produces a ray through screen coordinates (s,t) in [0,1]^2,
// offsetting the origin within the aperture disk and sampling a random
// time in [time0,time1].
func (c *Camera) GetRay(s, t float64, sampler *core.Sampler) core.Ray {
	rd := sampler.InUnitDisk().Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	time := sampler.Range(c.time0, c.time1)
	return core.NewRayAtTime(c.origin.Add(offset), direction, time)
}
