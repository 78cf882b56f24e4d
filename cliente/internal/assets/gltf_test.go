package assets

import (
	"errors"
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// triangleDoc cria um documento com um triângulo no plano XY.
// O nó raiz é transladado por offset e tem um filho com o mesmo triângulo.
func triangleDoc(offset [3]float64, withIndices bool) *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})

	prim := &gltf.Primitive{
		Attributes: map[string]int{gltf.POSITION: pos},
	}
	if withIndices {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, []uint16{0, 1, 2}))
	}
	doc.Meshes = []*gltf.Mesh{{Name: "Rock", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{
		{Name: "Root", Mesh: gltf.Index(0), Translation: offset, Children: []int{1}},
		{Name: "Child", Mesh: gltf.Index(0), Translation: [3]float64{0, 0, 5}},
	}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

func firstVertex(t *testing.T, m *ModelData, mesh int) mgl32.Vec3 {
	t.Helper()
	v := m.Meshes[mesh].Vertices
	if len(v) < 3 {
		t.Fatalf("malha %d vazia", mesh)
	}
	return mgl32.Vec3{v[0], v[1], v[2]}
}

func TestDecodeBakesNodeTransforms(t *testing.T) {
	model, err := Decode("Rock", triangleDoc([3]float64{10, 0, 0}, true))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(model.Meshes) != 2 {
		t.Fatalf("len(Meshes) = %d, want 2 (raiz + filho)", len(model.Meshes))
	}
	if model.TriangleCount() != 2 {
		t.Errorf("TriangleCount = %d, want 2", model.TriangleCount())
	}
	if got := firstVertex(t, model, 0); got != (mgl32.Vec3{10, 0, 0}) {
		t.Errorf("vértice da raiz = %v, want (10,0,0)", got)
	}
	// O filho herda a translação do pai.
	if got := firstVertex(t, model, 1); got != (mgl32.Vec3{10, 0, 5}) {
		t.Errorf("vértice do filho = %v, want (10,0,5)", got)
	}
}

func TestDecodeWithoutIndicesGeneratesFlatNormals(t *testing.T) {
	model, err := Decode("Rock", triangleDoc([3]float64{}, false))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	n := model.Meshes[0].Normals
	if len(n) != 9 {
		t.Fatalf("len(Normals) = %d, want 9", len(n))
	}
	if got := (mgl32.Vec3{n[0], n[1], n[2]}); !got.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
		t.Errorf("normal = %v, want +Z", got)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	_, err := Decode("vazio", gltf.NewDocument())
	if !errors.Is(err, ErrNoGeometry) {
		t.Errorf("Decode de documento vazio: err = %v, want ErrNoGeometry", err)
	}
}

func TestDecodeFileGLB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Rock.glb")
	if err := gltf.SaveBinary(triangleDoc([3]float64{0, 2, 0}, true), path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}

	model, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if model.Name != "Rock" {
		t.Errorf("Name = %q, want Rock", model.Name)
	}
	if got := firstVertex(t, model, 0); got != (mgl32.Vec3{0, 2, 0}) {
		t.Errorf("vértice = %v, want (0,2,0)", got)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "nao_existe.glb")); err == nil {
		t.Error("esperava erro para arquivo inexistente")
	}
}

// quadDoc cria um quad no plano XY desenhado com o modo dado, sem índices.
func quadDoc(mode gltf.PrimitiveMode, verts [][3]float32) *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, verts)
	doc.Meshes = []*gltf.Mesh{{Name: "Quad", Primitives: []*gltf.Primitive{{
		Mode:       mode,
		Attributes: map[string]int{gltf.POSITION: pos},
	}}}}
	doc.Nodes = []*gltf.Node{{Name: "Quad", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

func TestDecodeTriangleStripAndFan(t *testing.T) {
	tests := []struct {
		name  string
		mode  gltf.PrimitiveMode
		verts [][3]float32
	}{
		{"strip", gltf.PrimitiveTriangleStrip, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
		{"fan", gltf.PrimitiveTriangleFan, [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := Decode(tt.name, quadDoc(tt.mode, tt.verts))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if model.TriangleCount() != 2 {
				t.Fatalf("TriangleCount = %d, want 2", model.TriangleCount())
			}
			// Todos os triângulos mantêm o sentido anti-horário (+Z).
			n := model.Meshes[0].Normals
			for i := 0; i+2 < len(n); i += 3 {
				if got := (mgl32.Vec3{n[i], n[i+1], n[i+2]}); !got.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
					t.Errorf("normal do vértice %d = %v, want +Z", i/3, got)
				}
			}
		})
	}
}

func TestDecodeSkipsLinePrimitives(t *testing.T) {
	doc := quadDoc(gltf.PrimitiveLines, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}})
	if _, err := Decode("linhas", doc); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("err = %v, want ErrNoGeometry", err)
	}
}

func TestDecodeRejectsSharedChildren(t *testing.T) {
	doc := triangleDoc([3]float64{}, true)
	const n = 40
	doc.Nodes = make([]*gltf.Node, n)
	for i := 0; i < n-1; i++ {
		doc.Nodes[i] = &gltf.Node{Children: []int{i + 1, i + 1}}
	}
	doc.Nodes[n-1] = &gltf.Node{Mesh: gltf.Index(0)}

	done := make(chan error, 1)
	go func() {
		_, err := Decode("compartilhado", doc)
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Error("esperava erro para nó com dois pais")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Decode não terminou em 5s")
	}
}

func TestDecodeRejectsCycle(t *testing.T) {
	doc := triangleDoc([3]float64{}, true)
	doc.Nodes[1].Children = []int{0}
	if _, err := Decode("ciclo", doc); err == nil {
		t.Error("esperava erro para hierarquia cíclica")
	}
}

func TestDecodeBaseColor(t *testing.T) {
	doc := triangleDoc([3]float64{}, true)
	doc.Materials = []*gltf.Material{{
		Name:                 "Pedra",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float64{1, 0.2, 0, 1}},
	}}
	doc.Meshes[0].Primitives[0].Material = gltf.Index(0)

	model, err := Decode("Rock", doc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(model.Colors) != len(model.Meshes) {
		t.Fatalf("len(Colors) = %d, want %d", len(model.Colors), len(model.Meshes))
	}
	want := color.RGBA{R: 255, G: 51, B: 0, A: 255}
	for i, c := range model.Colors {
		if c != want {
			t.Errorf("Colors[%d] = %v, want %v", i, c, want)
		}
	}
}

func TestDecodeWithoutMaterialIsWhite(t *testing.T) {
	model, err := Decode("Rock", triangleDoc([3]float64{}, true))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if model.Colors[0] != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Colors[0] = %v, want branco", model.Colors[0])
	}
}
