package assets

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"RockViewer/cliente/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoGeometry indica um arquivo válido que não contém nenhum triângulo.
var ErrNoGeometry = errors.New("modelo sem geometria de triângulos")

// ModelData é o resultado CPU de um carregamento: o subgrafo do asset com as
// transformações dos nós já aplicadas aos vértices, uma malha por primitiva.
// Colors[i] é a cor base do material da malha i.
type ModelData struct {
	Name   string
	Meshes []meshing.GeometryData
	Colors []color.RGBA
}

// TriangleCount soma os triângulos de todas as malhas.
func (m *ModelData) TriangleCount() int {
	n := 0
	for _, g := range m.Meshes {
		n += g.TriangleCount()
	}
	return n
}

// DecodeFile abre um arquivo glTF (.glb ou .gltf) e extrai sua geometria.
func DecodeFile(path string) (*ModelData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Decode(name, doc)
}

// Decode percorre a cena padrão do documento e gera as malhas.
func Decode(name string, doc *gltf.Document) (*ModelData, error) {
	if len(doc.Scenes) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoGeometry)
	}
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = *doc.Scene
	}
	if sceneIdx < 0 || sceneIdx >= len(doc.Scenes) {
		return nil, fmt.Errorf("%s: cena padrão %d inexistente", name, sceneIdx)
	}

	d := decoder{
		doc:     doc,
		model:   &ModelData{Name: name},
		visited: make([]bool, len(doc.Nodes)),
	}
	for _, nodeIdx := range doc.Scenes[sceneIdx].Nodes {
		if err := d.walk(nodeIdx, mgl32.Ident4()); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	if len(d.model.Meshes) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoGeometry)
	}
	return d.model, nil
}

// Cor usada por primitivas sem material.
var defaultColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type decoder struct {
	doc     *gltf.Document
	model   *ModelData
	visited []bool
}

// walk percorre a hierarquia a partir de nodeIdx. Os nós de uma cena formam
// uma árvore: um nó alcançado duas vezes (pai duplicado ou ciclo) é erro.
func (d *decoder) walk(nodeIdx int, parent mgl32.Mat4) error {
	if nodeIdx < 0 || nodeIdx >= len(d.doc.Nodes) {
		return fmt.Errorf("nó %d inexistente", nodeIdx)
	}
	if d.visited[nodeIdx] {
		return fmt.Errorf("nó %d alcançado por mais de um caminho", nodeIdx)
	}
	d.visited[nodeIdx] = true
	node := d.doc.Nodes[nodeIdx]
	world := parent.Mul4(nodeMatrix(node))

	if node.Mesh != nil {
		if err := d.addMesh(*node.Mesh, world); err != nil {
			return err
		}
	}
	for _, child := range node.Children {
		if err := d.walk(child, world); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) addMesh(meshIdx int, world mgl32.Mat4) error {
	if meshIdx < 0 || meshIdx >= len(d.doc.Meshes) {
		return fmt.Errorf("malha %d inexistente", meshIdx)
	}
	normalMat := world.Mat3().Inv().Transpose()

	for i, prim := range d.doc.Meshes[meshIdx].Primitives {
		switch prim.Mode {
		case gltf.PrimitiveTriangles, gltf.PrimitiveTriangleStrip, gltf.PrimitiveTriangleFan:
		default:
			continue // Linhas e pontos não fazem parte do modelo sólido
		}
		geo, err := d.primitive(prim, world, normalMat)
		if err != nil {
			return fmt.Errorf("malha %d, primitiva %d: %w", meshIdx, i, err)
		}
		if !geo.Empty() {
			d.model.Meshes = append(d.model.Meshes, geo)
			d.model.Colors = append(d.model.Colors, d.baseColor(prim))
		}
	}
	return nil
}

// baseColor retorna o baseColorFactor do material PBR da primitiva.
func (d *decoder) baseColor(prim *gltf.Primitive) color.RGBA {
	if prim.Material == nil || *prim.Material < 0 || *prim.Material >= len(d.doc.Materials) {
		return defaultColor
	}
	mat := d.doc.Materials[*prim.Material]
	if mat == nil || mat.PBRMetallicRoughness == nil {
		return defaultColor
	}
	f := mat.PBRMetallicRoughness.BaseColorFactorOrDefault()
	return color.RGBA{R: unitToByte(f[0]), G: unitToByte(f[1]), B: unitToByte(f[2]), A: unitToByte(f[3])}
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func (d *decoder) primitive(prim *gltf.Primitive, world mgl32.Mat4, normalMat mgl32.Mat3) (meshing.GeometryData, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return meshing.GeometryData{}, nil
	}
	if !d.validAccessor(posIdx) {
		return meshing.GeometryData{}, fmt.Errorf("acessor POSITION %d inexistente", posIdx)
	}
	positions, err := modeler.ReadPosition(d.doc, d.doc.Accessors[posIdx], nil)
	if err != nil {
		return meshing.GeometryData{}, fmt.Errorf("falha ao ler POSITION: %w", err)
	}

	var normals [][3]float32
	if nIdx, ok := prim.Attributes[gltf.NORMAL]; ok && d.validAccessor(nIdx) {
		normals, err = modeler.ReadNormal(d.doc, d.doc.Accessors[nIdx], nil)
		if err != nil {
			return meshing.GeometryData{}, fmt.Errorf("falha ao ler NORMAL: %w", err)
		}
		if len(normals) != len(positions) {
			normals = nil
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if !d.validAccessor(*prim.Indices) {
			return meshing.GeometryData{}, fmt.Errorf("acessor de índices %d inexistente", *prim.Indices)
		}
		indices, err = modeler.ReadIndices(d.doc, d.doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return meshing.GeometryData{}, fmt.Errorf("falha ao ler índices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	tris := triangleList(prim.Mode, indices)

	buf := meshing.NewMeshBuffer(len(tris) / 3)
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
			return meshing.GeometryData{}, fmt.Errorf("índice fora do intervalo (%d vértices)", len(positions))
		}
		v1 := transformPoint(world, positions[a])
		v2 := transformPoint(world, positions[b])
		v3 := transformPoint(world, positions[c])

		if normals == nil {
			buf.AddFlatTriangle(v1, v2, v3)
			continue
		}
		buf.AddTriangle(v1, v2, v3,
			transformNormal(normalMat, normals[a]),
			transformNormal(normalMat, normals[b]),
			transformNormal(normalMat, normals[c]),
		)
	}
	return buf.Geometry, nil
}

// triangleList converte os índices de uma primitiva em lista de triângulos.
// Strips alternam a ordem a cada triângulo para manter o sentido anti-horário.
func triangleList(mode gltf.PrimitiveMode, indices []uint32) []uint32 {
	if len(indices) < 3 {
		return nil
	}
	switch mode {
	case gltf.PrimitiveTriangleStrip:
		out := make([]uint32, 0, (len(indices)-2)*3)
		for i := 0; i+2 < len(indices); i++ {
			if i%2 == 0 {
				out = append(out, indices[i], indices[i+1], indices[i+2])
			} else {
				out = append(out, indices[i], indices[i+2], indices[i+1])
			}
		}
		return out
	case gltf.PrimitiveTriangleFan:
		out := make([]uint32, 0, (len(indices)-2)*3)
		for i := 1; i+1 < len(indices); i++ {
			out = append(out, indices[0], indices[i], indices[i+1])
		}
		return out
	}
	return indices
}

func (d *decoder) validAccessor(idx int) bool {
	return idx >= 0 && idx < len(d.doc.Accessors)
}

// nodeMatrix retorna a transformação local do nó: a matriz explícita quando
// presente, senão T * R * S.
func nodeMatrix(node *gltf.Node) mgl32.Mat4 {
	m := node.MatrixOrDefault()
	if m != gltf.DefaultMatrix {
		var out mgl32.Mat4
		for i := range m {
			out[i] = float32(m[i])
		}
		return out
	}

	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	s := node.ScaleOrDefault()

	rot := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
	return mgl32.Translate3D(float32(t[0]), float32(t[1]), float32(t[2])).
		Mul4(rot.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(float32(s[0]), float32(s[1]), float32(s[2])))
}

func transformPoint(m mgl32.Mat4, p [3]float32) mgl32.Vec3 {
	return m.Mul4x1(mgl32.Vec4{p[0], p[1], p[2], 1}).Vec3()
}

func transformNormal(m mgl32.Mat3, n [3]float32) mgl32.Vec3 {
	v := m.Mul3x1(mgl32.Vec3{n[0], n[1], n[2]})
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
