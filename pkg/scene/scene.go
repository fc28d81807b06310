// Package scene builds ready-to-render scheduler.Scene values: a
// Cornell box, a default sphere scene, and a sphere grid, built in the same style
// throughout this module (materials first, shapes appended to a slice,
// camera built from a literal config).
package scene

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/camera"
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/scheduler"
	"github.com/df07/go-progressive-raytracer/pkg/texture"
)

// build assembles shapes and lights into a BVH-accelerated
// scheduler.Scene. lights holds the subset of shapes that should be
// explicitly importance-sampled (same objects by reference, not
// duplicated, so the light list and the BVH agree on geometry).
func build(shapes []core.Hittable, lights []core.Hittable, background core.Texture, cam *camera.Camera, seed int64) scheduler.Scene {
	world := geometry.NewBVH(shapes, 0, 1, core.NewSampler(seed))
	return scheduler.Scene{
		World:      world,
		Lights:     geometry.NewHittableList(lights...),
		Background: background,
		Camera:     cam,
	}
}

// NewDefaultScene builds a small scene of spheres over a checkered
// ground plane under a sky gradient: a lambertian center sphere, a
// hollow glass sphere, and a fuzzed metal sphere.
func NewDefaultScene() scheduler.Scene {
	ground := material.NewLambertian(texture.NewChecker(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	centerMat := material.NewLambertian(texture.NewSolid(core.NewVec3(0.1, 0.2, 0.5)))
	leftMat := material.NewDielectric(1.5)
	rightMat := material.NewMetal(texture.NewSolid(core.NewVec3(0.8, 0.6, 0.2)), 0.1)

	groundSphere := geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground)
	centerSphere := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, centerMat)
	leftSphereOuter := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, leftMat)
	leftSphereInner := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), -0.45, leftMat)
	rightSphere := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, rightMat)

	shapes := []core.Hittable{groundSphere, centerSphere, leftSphereOuter, leftSphereInner, rightSphere}

	background := texture.NewGradient(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))

	cam := camera.NewCamera(
		core.NewVec3(0, 0.75, 2),
		core.NewVec3(0, 0.5, -1),
		core.NewVec3(0, 1, 0),
		40, 16.0/9.0, 0.05, 3.0, 0, 0,
	)

	return build(shapes, nil, background, cam, 1)
}

// NewCornellScene builds the classic 555-unit Cornell box: five
// lambertian walls, a ceiling area light, and two rotated boxes.
func NewCornellScene() scheduler.Scene {
	const boxSize = 555.0

	white := material.NewLambertian(texture.NewSolid(core.NewVec3(0.73, 0.73, 0.73)))
	red := material.NewLambertian(texture.NewSolid(core.NewVec3(0.65, 0.05, 0.05)))
	green := material.NewLambertian(texture.NewSolid(core.NewVec3(0.12, 0.45, 0.15)))
	lightMat := material.NewDiffuseLight(texture.NewSolid(core.NewVec3(15, 15, 15)))

	floor := geometry.NewAxisRectXZ(0, boxSize, 0, boxSize, 0, white)
	ceiling := geometry.NewAxisRectXZ(0, boxSize, 0, boxSize, boxSize, white)
	backWall := geometry.NewAxisRectXY(0, boxSize, 0, boxSize, boxSize, white)
	leftWall := geometry.NewAxisRectYZ(0, boxSize, 0, boxSize, 0, red)
	rightWall := geometry.NewAxisRectYZ(0, boxSize, 0, boxSize, boxSize, green)

	const lightSize = 130.0
	const lightOffset = (boxSize - lightSize) / 2.0
	// The XZ rectangle's outward normal is +Y; FlipFace turns its emitting
	// front face down into the box.
	ceilingLight := geometry.NewFlipFace(geometry.NewAxisRectXZ(lightOffset, lightOffset+lightSize, lightOffset, lightOffset+lightSize, boxSize-1, lightMat))

	tallBox := geometry.NewBox(core.Vec3{}, core.NewVec3(165, 330, 165), white)
	tallBoxPlaced := geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295))

	shortBox := geometry.NewBox(core.Vec3{}, core.NewVec3(165, 165, 165), white)
	shortBoxPlaced := geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65))

	shapes := []core.Hittable{floor, ceiling, backWall, leftWall, rightWall, ceilingLight, tallBoxPlaced, shortBoxPlaced}
	lights := []core.Hittable{ceilingLight}

	cam := camera.NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		core.NewVec3(0, 1, 0),
		40, 1.0, 0, 800, 0, 0,
	)

	return build(shapes, lights, texture.NewSolid(core.Vec3{}), cam, 2)
}

// NewSphereGridScene builds an NxN grid of metallic spheres over a
// ground sphere, lit by one bright sphere light overhead; a BVH stress
// case with many similarly sized, evenly spaced objects.
func NewSphereGridScene(n int) scheduler.Scene {
	ground := material.NewLambertian(texture.NewSolid(core.NewVec3(0.5, 0.5, 0.5)))
	groundSphere := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	shapes := []core.Hittable{groundSphere}

	const spacing = 1.2
	const radius = 0.4
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			hue := 360 * float64(i*n+j) / float64(n*n)
			albedo := hueToRGB(hue)
			mat := material.NewMetal(texture.NewSolid(albedo), 0.2)
			center := core.NewVec3(float64(i)*spacing, radius, float64(j)*spacing)
			shapes = append(shapes, geometry.NewSphere(center, radius, mat))
		}
	}

	lightMat := material.NewDiffuseLight(texture.NewSolid(core.NewVec3(12, 11.5, 10)))
	gridCenter := float64(n-1) * spacing / 2
	sunLight := geometry.NewSphere(core.NewVec3(gridCenter, gridCenter*2+10, gridCenter), 3, lightMat)
	shapes = append(shapes, sunLight)
	lights := []core.Hittable{sunLight}

	lookAt := core.NewVec3(gridCenter, radius, gridCenter)
	cam := camera.NewCamera(
		core.NewVec3(gridCenter, gridCenter+4, gridCenter+float64(n)*1.8),
		lookAt,
		core.NewVec3(0, 1, 0),
		40, 16.0/9.0, 0.02, float64(n)*1.8, 0, 0,
	)

	return build(shapes, lights, texture.NewGradient(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1)), cam, 3)
}

// hueToRGB returns a fully saturated color at the given hue (degrees),
// used to give each grid sphere a distinct, evenly spaced color.
func hueToRGB(hueDegrees float64) core.Color {
	h := hueDegrees / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)

	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = 1, x, 0
	case h < 2:
		r, g, b = x, 1, 0
	case h < 3:
		r, g, b = 0, 1, x
	case h < 4:
		r, g, b = 0, x, 1
	case h < 5:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}
	return core.NewVec3(r, g, b)
}
