package app

import (
	"RockViewer/cliente/internal/meshing"

	log "github.com/sirupsen/logrus"
)

// update avança um quadro: aplica os eventos de carregamento pendentes e
// anima a cena. O incremento de rotação é por iteração, não por segundo.
func (a *App) update() {
	a.processLoaderEvents()
	a.Scene.Spin()
	a.frameCount++
}

// processLoaderEvents insere na cena os modelos que terminaram de carregar
// desde a última iteração, na ordem de chegada.
func (a *App) processLoaderEvents() {
	for _, ev := range a.events.Drain() {
		a.Scene.AddModel(ev.Model.Name, ev.Model.Meshes, ev.Model.Colors)
		a.modelsLoaded++

		fields := log.Fields{
			"path":      ev.Path,
			"frame":     a.frameCount,
			"meshes":    len(ev.Model.Meshes),
			"triangles": ev.Model.TriangleCount(),
		}
		if min, max, ok := meshing.Bounds(ev.Model.Meshes); ok {
			fields["min"] = min
			fields["max"] = max
		}
		a.log.WithFields(fields).Info("[RockViewer] Modelo inserido na cena")
	}
}
