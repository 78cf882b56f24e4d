// Package scene mantém o container de entidades renderizáveis do visualizador.
//
// O container é um mundo ECS: cada entidade combina Transform, Shape e
// Material, e entidades animadas carregam também um componente Spin.
// Entidades só são adicionadas; nada é removido até o fim do processo.
// Todas as chamadas devem vir da thread de render.
package scene

import (
	"image/color"

	"RockViewer/cliente/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mlange-42/ark/ecs"
)

// ShapeKind identifica o tipo de geometria de uma entidade.
type ShapeKind int

const (
	ShapeBox      ShapeKind = iota // Volume fechado (lista de triângulos)
	ShapePolyline                  // Linha aberta entre pontos consecutivos
	ShapeModel                     // Subgrafo carregado de um asset (.glb)
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapePolyline:
		return "polyline"
	case ShapeModel:
		return "model"
	}
	return "unknown"
}

// Transform guarda posição e rotação (Euler XYZ, em radianos).
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl64.Vec3
}

// Matrix retorna a matriz de modelo: translação * Rx * Ry * Rz.
func (t *Transform) Matrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(float32(t.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(float32(t.Rotation.Y()))).
		Mul4(mgl32.HomogRotate3DZ(float32(t.Rotation.Z())))
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).Mul4(rot)
}

// Shape descreve a geometria imutável de uma entidade.
type Shape struct {
	Kind   ShapeKind
	Name   string
	Meshes []meshing.GeometryData // ShapeBox e ShapeModel
	Points []mgl32.Vec3           // ShapePolyline
}

// Segments retorna os segmentos da polilinha, ligando apenas pontos
// consecutivos (o último ponto não volta para o primeiro).
func (s *Shape) Segments() [][2]mgl32.Vec3 {
	if s.Kind != ShapePolyline || len(s.Points) < 2 {
		return nil
	}
	segs := make([][2]mgl32.Vec3, 0, len(s.Points)-1)
	for i := 1; i < len(s.Points); i++ {
		segs = append(segs, [2]mgl32.Vec3{s.Points[i-1], s.Points[i]})
	}
	return segs
}

// Material define a aparência (sem iluminação) de uma entidade.
// MeshColors, quando presente, dá uma cor a cada malha da Shape.
type Material struct {
	Color      color.RGBA
	MeshColors []color.RGBA
}

// MeshColor retorna a cor da malha i.
func (m *Material) MeshColor(i int) color.RGBA {
	if i >= 0 && i < len(m.MeshColors) {
		return m.MeshColors[i]
	}
	return m.Color
}

// Spin avança a rotação da entidade por um incremento fixo a cada iteração
// do loop de render, independente do tempo real decorrido.
type Spin struct {
	Rate mgl64.Vec3
}

// Entity é o identificador de uma entidade no container.
type Entity = ecs.Entity

// Renderable é a visão de uma entidade entregue ao Renderer.
type Renderable struct {
	Entity    Entity
	Transform *Transform
	Shape     *Shape
	Material  *Material
}

// Scene é o container de entidades renderizáveis.
type Scene struct {
	world *ecs.World

	statics  *ecs.Map3[Transform, Shape, Material]
	spinning *ecs.Map4[Transform, Shape, Material, Spin]

	transforms *ecs.Map[Transform]
	shapes     *ecs.Map[Shape]
	materials  *ecs.Map[Material]

	drawable *ecs.Filter3[Transform, Shape, Material]
	spinners *ecs.Filter2[Transform, Spin]
}

// New cria um container vazio.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:      world,
		statics:    ecs.NewMap3[Transform, Shape, Material](world),
		spinning:   ecs.NewMap4[Transform, Shape, Material, Spin](world),
		transforms: ecs.NewMap[Transform](world),
		shapes:     ecs.NewMap[Shape](world),
		materials:  ecs.NewMap[Material](world),
		drawable:   ecs.NewFilter3[Transform, Shape, Material](world),
		spinners:   ecs.NewFilter2[Transform, Spin](world),
	}
}

// AddBox adiciona uma caixa centrada em pos. Um rate não nulo faz a caixa girar.
func (s *Scene) AddBox(size, pos mgl32.Vec3, mat Material, rate mgl64.Vec3) Entity {
	t := Transform{Position: pos}
	sh := Shape{
		Kind:   ShapeBox,
		Name:   "box",
		Meshes: []meshing.GeometryData{meshing.Box(size.X(), size.Y(), size.Z())},
	}
	if rate == (mgl64.Vec3{}) {
		return s.statics.NewEntity(&t, &sh, &mat)
	}
	return s.spinning.NewEntity(&t, &sh, &mat, &Spin{Rate: rate})
}

// AddPolyline adiciona uma linha aberta passando pelos pontos na ordem dada.
func (s *Scene) AddPolyline(points []mgl32.Vec3, mat Material) Entity {
	pts := make([]mgl32.Vec3, len(points))
	copy(pts, points)

	t := Transform{}
	sh := Shape{Kind: ShapePolyline, Name: "polyline", Points: pts}
	return s.statics.NewEntity(&t, &sh, &mat)
}

// AddModel insere o subgrafo de um asset carregado como uma única entidade
// raiz, sem ajuste de transformação e sem checagem de duplicidade.
// colors[i] é a cor do material da malha i; malhas sem cor ficam brancas.
func (s *Scene) AddModel(name string, meshes []meshing.GeometryData, colors []color.RGBA) Entity {
	t := Transform{}
	sh := Shape{Kind: ShapeModel, Name: name, Meshes: meshes}
	mat := Material{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
	if len(colors) > 0 {
		mat.MeshColors = make([]color.RGBA, len(colors))
		copy(mat.MeshColors, colors)
	}
	return s.statics.NewEntity(&t, &sh, &mat)
}

// Material retorna o Material da entidade, ou nil se ela não existir.
func (s *Scene) Material(e Entity) *Material {
	if !s.world.Alive(e) || !s.materials.Has(e) {
		return nil
	}
	return s.materials.Get(e)
}

// Spin aplica um passo de animação a todas as entidades com componente Spin.
func (s *Scene) Spin() {
	query := s.spinners.Query()
	for query.Next() {
		t, spin := query.Get()
		t.Rotation = t.Rotation.Add(spin.Rate)
	}
}

// Each chama fn para cada entidade renderizável.
// fn não deve adicionar entidades ao container.
func (s *Scene) Each(fn func(Renderable)) {
	query := s.drawable.Query()
	for query.Next() {
		t, sh, mat := query.Get()
		fn(Renderable{Entity: query.Entity(), Transform: t, Shape: sh, Material: mat})
	}
}

// Count retorna o número de entidades renderizáveis.
func (s *Scene) Count() int {
	n := 0
	query := s.drawable.Query()
	for query.Next() {
		n++
	}
	return n
}

// Transform retorna o Transform da entidade, ou nil se ela não existir.
func (s *Scene) Transform(e Entity) *Transform {
	if !s.world.Alive(e) || !s.transforms.Has(e) {
		return nil
	}
	return s.transforms.Get(e)
}

// Shape retorna a Shape da entidade, ou nil se ela não existir.
func (s *Scene) Shape(e Entity) *Shape {
	if !s.world.Alive(e) || !s.shapes.Has(e) {
		return nil
	}
	return s.shapes.Get(e)
}
