// Package camera define o Viewport: câmera perspectiva fixa e o tamanho da
// superfície de desenho, ambos capturados uma única vez na inicialização.
package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Params são os parâmetros fixos da câmera.
type Params struct {
	FovY     float32 // graus
	Near     float32
	Far      float32
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// DefaultParams retorna a câmera padrão: fov 75°, planos 0.1/1000,
// posicionada em (0, 0, 20) olhando para a origem.
func DefaultParams() Params {
	return Params{
		FovY:     75,
		Near:     0.1,
		Far:      1000,
		Position: mgl32.Vec3{0, 0, 20},
		Target:   mgl32.Vec3{0, 0, 0},
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

// Viewport é imutável depois de criado. Se a janela mudar de tamanho,
// aspecto e superfície continuam com os valores da inicialização.
type Viewport struct {
	params Params
	width  int32
	height int32
	aspect float32
}

// NewViewport calcula o aspecto a partir das dimensões atuais da janela.
func NewViewport(width, height int32, params Params) (*Viewport, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dimensões inválidas para o viewport: %dx%d", width, height)
	}
	if params.Near <= 0 || params.Far <= params.Near {
		return nil, fmt.Errorf("planos de corte inválidos: near=%v far=%v", params.Near, params.Far)
	}
	if params.Up == (mgl32.Vec3{}) {
		params.Up = mgl32.Vec3{0, 1, 0}
	}
	return &Viewport{
		params: params,
		width:  width,
		height: height,
		aspect: float32(width) / float32(height),
	}, nil
}

// Aspect retorna a razão largura/altura calculada na criação.
func (v *Viewport) Aspect() float32 { return v.aspect }

// Size retorna o tamanho da superfície em pixels.
func (v *Viewport) Size() (width, height int32) { return v.width, v.height }

// Params retorna os parâmetros da câmera.
func (v *Viewport) Params() Params { return v.params }

// ProjectionMatrix retorna a matriz de projeção perspectiva.
func (v *Viewport) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(v.params.FovY), v.aspect, v.params.Near, v.params.Far)
}

// ViewMatrix retorna a matriz de visão (posição olhando para o alvo).
func (v *Viewport) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(v.params.Position, v.params.Target, v.params.Up)
}

// Project converte um ponto do mundo em coordenadas de pixel da superfície.
// ok é false quando o ponto está fora do volume de visão.
func (v *Viewport) Project(world mgl32.Vec3) (x, y float32, ok bool) {
	clip := v.ProjectionMatrix().Mul4(v.ViewMatrix()).Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 || ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	x = (ndc.X() + 1) / 2 * float32(v.width)
	y = (1 - ndc.Y()) / 2 * float32(v.height)
	return x, y, true
}
