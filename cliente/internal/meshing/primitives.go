package meshing

import "github.com/go-gl/mathgl/mgl32"

// Box gera uma caixa fechada centrada na origem, com 6 faces (12 triângulos).
func Box(width, height, depth float32) GeometryData {
	hx, hy, hz := width/2, height/2, depth/2
	b := NewMeshBuffer(12)

	// +Z (frente)
	b.AddFace(
		mgl32.Vec3{-hx, -hy, hz}, mgl32.Vec3{hx, -hy, hz},
		mgl32.Vec3{hx, hy, hz}, mgl32.Vec3{-hx, hy, hz},
		mgl32.Vec3{0, 0, 1},
	)
	// -Z (trás)
	b.AddFace(
		mgl32.Vec3{hx, -hy, -hz}, mgl32.Vec3{-hx, -hy, -hz},
		mgl32.Vec3{-hx, hy, -hz}, mgl32.Vec3{hx, hy, -hz},
		mgl32.Vec3{0, 0, -1},
	)
	// +X (direita)
	b.AddFace(
		mgl32.Vec3{hx, -hy, hz}, mgl32.Vec3{hx, -hy, -hz},
		mgl32.Vec3{hx, hy, -hz}, mgl32.Vec3{hx, hy, hz},
		mgl32.Vec3{1, 0, 0},
	)
	// -X (esquerda)
	b.AddFace(
		mgl32.Vec3{-hx, -hy, -hz}, mgl32.Vec3{-hx, -hy, hz},
		mgl32.Vec3{-hx, hy, hz}, mgl32.Vec3{-hx, hy, -hz},
		mgl32.Vec3{-1, 0, 0},
	)
	// +Y (topo)
	b.AddFace(
		mgl32.Vec3{-hx, hy, hz}, mgl32.Vec3{hx, hy, hz},
		mgl32.Vec3{hx, hy, -hz}, mgl32.Vec3{-hx, hy, -hz},
		mgl32.Vec3{0, 1, 0},
	)
	// -Y (base)
	b.AddFace(
		mgl32.Vec3{-hx, -hy, -hz}, mgl32.Vec3{hx, -hy, -hz},
		mgl32.Vec3{hx, -hy, hz}, mgl32.Vec3{-hx, -hy, hz},
		mgl32.Vec3{0, -1, 0},
	)

	return b.Geometry
}
