package render

import (
	"math"

	rmath "render-engine/math"
)

// Camera holds the view/inverse-view matrices and projection parameters
// needed to generate eye rays.
type Camera struct {
	Pos, Look, Up rmath.Vec3
	HeightAngle   float32 // radians
	AspectRatio   float32

	View        rmath.Mat4
	InverseView rmath.Mat4
}

// NewCamera builds the view matrix from (pos, look, up) via the standard
// right-handed basis: w = normalize(-look), v = normalize(up - (up.w)w),
// u = v x w. The view matrix is the basis rotation composed with
// translate(-pos).
func NewCamera(pos, look, up rmath.Vec3, heightAngle, aspect float32) Camera {
	w := look.Negate().Normalize()
	v := up.Sub(w.Mul(up.Dot(w))).Normalize()
	u := v.Cross(w)

	rotation := rmath.Mat4{
		{u.X, v.X, w.X, 0},
		{u.Y, v.Y, w.Y, 0},
		{u.Z, v.Z, w.Z, 0},
		{0, 0, 0, 1},
	}
	translation := rmath.Mat4Translation(pos.Negate())
	view := translation.Mul(rotation)

	return Camera{
		Pos:         pos,
		Look:        look,
		Up:          up,
		HeightAngle: heightAngle,
		AspectRatio: aspect,
		View:        view,
		InverseView: view.Inverse(),
	}
}

// EyeRay generates the world-space ray through pixel (col, row) of a
// W x H canvas, offset within the pixel by (sx, sy) in [0,1)^2. Row 0 is
// the top row.
func (c Camera) EyeRay(col, row, w, h int, sx, sy float32) Ray {
	vExtent := 2 * float32(math.Tan(float64(c.HeightAngle)/2))
	uExtent := vExtent * c.AspectRatio

	x := (float32(col)+sx)/float32(w) - 0.5
	y := (float32(h-1-row)+sy)/float32(h) - 0.5

	dirCamera := rmath.Vec3{X: uExtent * x, Y: vExtent * y, Z: -1}
	cameraRay := NewRay(rmath.Vec3{}, dirCamera)
	return cameraRay.Transform(c.InverseView, true)
}
