package scene

import (
	"RockViewer/shared/util"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Cores e geometria fixas da cena inicial.
var (
	CubeColor = util.HexColor(0x00ff00)
	LineColor = util.HexColor(0x0000ff)

	LinePoints = []mgl32.Vec3{
		{-10, 0, 0},
		{0, 10, 0},
		{10, 0, 0},
	}
)

// Handles guarda as entidades criadas por Build.
type Handles struct {
	Cube Entity
	Line Entity
}

// Build monta a cena estática inicial: um cubo unitário verde que gira
// spinRate radianos por iteração nos eixos X e Y, e uma polilinha azul
// de três pontos.
func Build(s *Scene, spinRate float64) Handles {
	cube := s.AddBox(
		mgl32.Vec3{1, 1, 1},
		mgl32.Vec3{},
		Material{Color: CubeColor},
		mgl64.Vec3{spinRate, spinRate, 0},
	)
	line := s.AddPolyline(LinePoints, Material{Color: LineColor})
	return Handles{Cube: cube, Line: line}
}
