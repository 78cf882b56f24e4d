package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// EntityModel guarda os modelos GPU de uma entidade da cena.
// Entidades com várias malhas (assets .glb) geram um rl.Model por malha.
// MeshIndex[i] é o índice em Shape.Meshes da malha que gerou Models[i].
type EntityModel struct {
	Models    []rl.Model
	MeshIndex []int
	Triangles int
}

func (em *EntityModel) unload() {
	for _, m := range em.Models {
		rl.UnloadModel(m)
	}
	em.Models = nil
	em.MeshIndex = nil
}
