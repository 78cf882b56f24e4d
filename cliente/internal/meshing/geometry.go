package meshing

import "github.com/go-gl/mathgl/mgl32"

// GeometryData contém os buffers de vértices de uma malha (lista de triângulos,
// sem índices). É o formato CPU que o Renderer envia para a GPU.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
}

// VertexCount retorna o número de vértices da malha.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

// TriangleCount retorna o número de triângulos da malha.
func (g GeometryData) TriangleCount() int {
	return g.VertexCount() / 3
}

// Empty indica se a malha não tem nenhum triângulo completo.
func (g GeometryData) Empty() bool {
	return g.TriangleCount() == 0
}

// Bounds retorna os cantos mínimo e máximo da malha.
func (g GeometryData) Bounds() (min, max mgl32.Vec3) {
	if len(g.Vertices) < 3 {
		return min, max
	}
	min = mgl32.Vec3{g.Vertices[0], g.Vertices[1], g.Vertices[2]}
	max = min
	for i := 3; i+2 < len(g.Vertices); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := g.Vertices[i+axis]
			if v < min[axis] {
				min[axis] = v
			}
			if v > max[axis] {
				max[axis] = v
			}
		}
	}
	return min, max
}

// Bounds retorna a caixa que envolve todas as malhas não vazias.
// ok é false quando nenhuma malha tem vértices.
func Bounds(meshes []GeometryData) (min, max mgl32.Vec3, ok bool) {
	for _, g := range meshes {
		if len(g.Vertices) < 3 {
			continue
		}
		gmin, gmax := g.Bounds()
		if !ok {
			min, max, ok = gmin, gmax, true
			continue
		}
		for axis := 0; axis < 3; axis++ {
			if gmin[axis] < min[axis] {
				min[axis] = gmin[axis]
			}
			if gmax[axis] > max[axis] {
				max[axis] = gmax[axis]
			}
		}
	}
	return min, max, ok
}

// MeshBuffer auxilia na construção de malhas.
type MeshBuffer struct {
	Geometry GeometryData
}

// NewMeshBuffer cria um buffer com capacidade para n triângulos.
func NewMeshBuffer(triangles int) *MeshBuffer {
	return &MeshBuffer{
		Geometry: GeometryData{
			Vertices: make([]float32, 0, triangles*9),
			Normals:  make([]float32, 0, triangles*9),
		},
	}
}

// AddFace adiciona uma face retangular (quad) ao buffer.
func (b *MeshBuffer) AddFace(v1, v2, v3, v4 mgl32.Vec3, n mgl32.Vec3) {
	// Triângulo 1 (v1, v2, v3)
	b.addVertex(v1, n)
	b.addVertex(v2, n)
	b.addVertex(v3, n)

	// Triângulo 2 (v1, v3, v4)
	b.addVertex(v1, n)
	b.addVertex(v3, n)
	b.addVertex(v4, n)
}

// AddTriangle adiciona uma face triangular com uma normal por vértice.
func (b *MeshBuffer) AddTriangle(v1, v2, v3 mgl32.Vec3, n1, n2, n3 mgl32.Vec3) {
	b.addVertex(v1, n1)
	b.addVertex(v2, n2)
	b.addVertex(v3, n3)
}

// AddFlatTriangle adiciona um triângulo com a normal da face calculada
// a partir da ordem anti-horária dos vértices.
func (b *MeshBuffer) AddFlatTriangle(v1, v2, v3 mgl32.Vec3) {
	n := FaceNormal(v1, v2, v3)
	b.AddTriangle(v1, v2, v3, n, n, n)
}

func (b *MeshBuffer) addVertex(v, n mgl32.Vec3) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
	b.Geometry.Normals = append(b.Geometry.Normals, n[0], n[1], n[2])
}

// FaceNormal retorna a normal unitária do triângulo (v1, v2, v3).
// Triângulos degenerados retornam o vetor nulo.
func FaceNormal(v1, v2, v3 mgl32.Vec3) mgl32.Vec3 {
	n := v2.Sub(v1).Cross(v3.Sub(v1))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
