package world

import (
	"firstperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullNear float32 = 0.1
	cullFar  float32 = 1000.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection
// matrix (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, cullNear, cullFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, cullNear, cullFar)
	}

	// VP = P * V
	vp := rl.MatrixMultiply(view, proj)
	row := func(x, y, z, w float32) Plane {
		return normalizePlane(Plane{normal: rl.Vector3{X: x, Y: y, Z: z}, distance: w})
	}

	var f Frustum
	f.planes[0] = row(vp.M3+vp.M0, vp.M7+vp.M4, vp.M11+vp.M8, vp.M15+vp.M12)
	f.planes[1] = row(vp.M3-vp.M0, vp.M7-vp.M4, vp.M11-vp.M8, vp.M15-vp.M12)
	f.planes[2] = row(vp.M3+vp.M1, vp.M7+vp.M5, vp.M11+vp.M9, vp.M15+vp.M13)
	f.planes[3] = row(vp.M3-vp.M1, vp.M7-vp.M5, vp.M11-vp.M9, vp.M15-vp.M13)
	f.planes[4] = row(vp.M3+vp.M2, vp.M7+vp.M6, vp.M11+vp.M10, vp.M15+vp.M14)
	f.planes[5] = row(vp.M3-vp.M2, vp.M7-vp.M6, vp.M11-vp.M10, vp.M15-vp.M14)
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsBox reports whether any part of box may be visible. For each plane
// it tests the box corner furthest along the plane normal.
func (f *Frustum) ContainsBox(box physics.AABB) bool {
	for i := range f.planes {
		n := f.planes[i].normal
		corner := box.Min
		if n.X >= 0 {
			corner.X = box.Max.X
		}
		if n.Y >= 0 {
			corner.Y = box.Max.Y
		}
		if n.Z >= 0 {
			corner.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(n, corner)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}
