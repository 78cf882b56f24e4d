package render

import (
	"image/color"

	"RockViewer/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// toRLMatrix converte uma matriz mgl32 (coluna-major) para rl.Matrix.
// Os campos Mi do raylib seguem a mesma numeração coluna-major.
func toRLMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toRLVector(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func toRLColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// toRLCamera monta a Camera3D equivalente ao viewport.
func toRLCamera(vp *camera.Viewport) rl.Camera3D {
	p := vp.Params()
	return rl.Camera3D{
		Position:   toRLVector(p.Position),
		Target:     toRLVector(p.Target),
		Up:         toRLVector(p.Up),
		Fovy:       p.FovY,
		Projection: rl.CameraPerspective,
	}
}
