package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"image/color"
	"unsafe"

	"RockViewer/cliente/internal/camera"
	"RockViewer/cliente/internal/meshing"
	"RockViewer/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	log "github.com/sirupsen/logrus"
)

// Renderer desenha a cena na superfície fixa do viewport e apresenta a
// superfície na janela. Deve ser usado apenas na thread de render.
type Renderer struct {
	// Superfície de rasterização com o tamanho da janela na inicialização
	Surface    rl.RenderTexture2D
	Background rl.Color

	viewport *camera.Viewport
	rlCamera rl.Camera3D
	proj     rl.Matrix
	view     rl.Matrix

	// Modelos GPU por entidade (upload sob demanda no primeiro Draw)
	models map[scene.Entity]*EntityModel

	log log.FieldLogger
}

// NewRenderer cria a superfície de desenho. Exige a janela já inicializada.
func NewRenderer(vp *camera.Viewport, background color.RGBA, logger log.FieldLogger) *Renderer {
	width, height := vp.Size()
	r := &Renderer{
		Surface:    rl.LoadRenderTexture(width, height),
		Background: toRLColor(background),
		viewport:   vp,
		rlCamera:   toRLCamera(vp),
		proj:       toRLMatrix(vp.ProjectionMatrix()),
		view:       toRLMatrix(vp.ViewMatrix()),
		models:     make(map[scene.Entity]*EntityModel),
		log:        logger,
	}
	logger.WithFields(log.Fields{
		"width":  width,
		"height": height,
		"aspect": vp.Aspect(),
	}).Info("[Renderer] Superfície de desenho criada")
	return r
}

// RenderScene desenha todas as entidades da cena na superfície, do ponto
// de vista da câmera.
func (r *Renderer) RenderScene(s *scene.Scene) {
	rl.BeginTextureMode(r.Surface)
	rl.ClearBackground(r.Background)

	rl.BeginMode3D(r.rlCamera)
	// Substitui as matrizes internas do raylib pelas do viewport (near/far e aspecto fixos)
	rl.SetMatrixProjection(r.proj)
	rl.SetMatrixModelview(r.view)

	s.Each(func(e scene.Renderable) {
		switch e.Shape.Kind {
		case scene.ShapeBox, scene.ShapeModel:
			r.drawMeshes(e)
		case scene.ShapePolyline:
			r.drawPolyline(e)
		}
	})

	rl.EndMode3D()
	rl.EndTextureMode()
}

// Present copia a superfície para a janela. Deve ser chamado entre
// rl.BeginDrawing e rl.EndDrawing.
func (r *Renderer) Present() {
	width, height := r.viewport.Size()
	// Render textures do OpenGL ficam de cabeça para baixo: altura negativa inverte
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(width), Height: -float32(height)}
	rl.DrawTextureRec(r.Surface.Texture, src, rl.Vector2{}, rl.White)
}

func (r *Renderer) drawMeshes(e scene.Renderable) {
	em, ok := r.models[e.Entity]
	if !ok {
		em = r.upload(e)
		r.models[e.Entity] = em
	}

	transform := toRLMatrix(e.Transform.Matrix())
	for i, m := range em.Models {
		m.Transform = transform
		rl.DrawModel(m, rl.Vector3{}, 1.0, toRLColor(e.Material.MeshColor(em.MeshIndex[i])))
	}
}

func (r *Renderer) drawPolyline(e scene.Renderable) {
	tint := toRLColor(e.Material.Color)
	world := e.Transform.Matrix()
	for _, seg := range e.Shape.Segments() {
		a := world.Mul4x1(seg[0].Vec4(1)).Vec3()
		b := world.Mul4x1(seg[1].Vec4(1)).Vec3()
		rl.DrawLine3D(toRLVector(a), toRLVector(b), tint)
	}
}

// upload converte as malhas CPU de uma entidade em modelos Raylib GPU.
func (r *Renderer) upload(e scene.Renderable) *EntityModel {
	em := &EntityModel{}
	for i, geo := range e.Shape.Meshes {
		if geo.Empty() {
			continue
		}
		mesh := r.geometryToMesh(geo)
		rl.UploadMesh(&mesh, false)
		r.freeMeshRAM(&mesh) // Geometria já está na GPU
		em.Models = append(em.Models, rl.LoadModelFromMesh(mesh))
		em.MeshIndex = append(em.MeshIndex, i)
		em.Triangles += geo.TriangleCount()
	}

	r.log.WithFields(log.Fields{
		"shape":     e.Shape.Kind.String(),
		"name":      e.Shape.Name,
		"meshes":    len(em.Models),
		"triangles": em.Triangles,
	}).Debug("[Renderer] Upload de geometria")
	return em
}

func (r *Renderer) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	vCount := int32(data.VertexCount())
	mesh.VertexCount = vCount
	mesh.TriangleCount = vCount / 3

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(r.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	return mesh
}

func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a memória principal (C) associada a uma malha após o upload para a GPU.
func (r *Renderer) freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Normals != nil {
		C.free(unsafe.Pointer(mesh.Normals))
		mesh.Normals = nil
	}
}

// Stats retorna quantas entidades e triângulos já estão na GPU.
func (r *Renderer) Stats() (entities, triangles int) {
	for _, em := range r.models {
		triangles += em.Triangles
	}
	return len(r.models), triangles
}

// Unload libera todos os recursos GPU, incluindo a superfície.
func (r *Renderer) Unload() {
	for _, em := range r.models {
		em.unload()
	}
	r.models = make(map[scene.Entity]*EntityModel)
	rl.UnloadRenderTexture(r.Surface)
}
