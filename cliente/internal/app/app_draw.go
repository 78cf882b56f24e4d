package app

import (
	"fmt"

	"RockViewer/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// draw renderiza a cena.
func (a *App) draw() {
	a.renderer.RenderScene(a.Scene)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	a.renderer.Present()
	a.drawHUD()
	rl.EndDrawing()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	x, y := int32(10), int32(10)
	width, height := int32(260), int32(110)
	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	gpuEntities, triangles := a.renderer.Stats()
	rl.DrawText(fmt.Sprintf("Quadro: %d", a.frameCount), x+10, y+40, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Entidades: %d (GPU: %d)", a.Scene.Count(), gpuEntities), x+10, y+58, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Triângulos: %d | Modelos: %d", triangles, a.modelsLoaded), x+10, y+76, 14, rl.LightGray)

	a.drawLabels()
}

// drawLabels escreve o nome de cada entidade sobre sua posição na tela.
func (a *App) drawLabels() {
	a.Scene.Each(func(e scene.Renderable) {
		if px, py, ok := a.Viewport.Project(labelAnchor(e)); ok {
			rl.DrawText(e.Shape.Name, int32(px)+4, int32(py)-14, 12, rl.RayWhite)
		}
	})
}

// labelAnchor retorna o ponto do mundo onde o rótulo da entidade é desenhado.
// Polilinhas usam o ponto do meio para não sobrepor entidades na origem.
func labelAnchor(e scene.Renderable) mgl32.Vec3 {
	if e.Shape.Kind == scene.ShapePolyline && len(e.Shape.Points) > 0 {
		p := e.Shape.Points[len(e.Shape.Points)/2]
		return e.Transform.Matrix().Mul4x1(p.Vec4(1)).Vec3()
	}
	return e.Transform.Position
}
