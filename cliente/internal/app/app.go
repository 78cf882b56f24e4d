package app

import (
	"context"
	"errors"
	"fmt"

	"RockViewer/cliente/internal/assets"
	"RockViewer/cliente/internal/camera"
	"RockViewer/cliente/internal/render"
	"RockViewer/cliente/internal/scene"
	"RockViewer/shared/config"
	"RockViewer/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// App é o contexto do visualizador. Tudo que o loop de render usa
// (cena, câmera, renderer, loader) vive aqui e é passado por referência.
type App struct {
	Config *config.Config

	Scene    *scene.Scene
	Handles  scene.Handles
	Viewport *camera.Viewport
	Loader   *assets.Loader

	events   *util.ThreadSafeQueue[assets.ModelReady]
	renderer *render.Renderer
	log      log.FieldLogger

	// Informações de debug
	frameCount   uint64
	modelsLoaded int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config, logger log.FieldLogger) *App {
	events := util.NewThreadSafeQueue[assets.ModelReady]()
	return &App{
		Config: cfg,
		events: events,
		Loader: assets.NewLoader(events, logger),
		log:    logger,
	}
}

// Run abre a janela e executa o loop de render até a janela ser fechada
// ou ctx ser cancelado. Deve ser chamado da thread principal do SO.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			a.log.Errorf("[PANIC] Erro fatal no loop de render: %v", r)
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	if !rl.IsWindowReady() {
		return errors.New("falha ao criar a janela")
	}
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal
	rl.SetTargetFPS(a.Config.TargetFPS)

	// Dimensões lidas uma única vez; redimensionamentos posteriores são ignorados
	width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if err := a.setup(ctx, width, height); err != nil {
		rl.CloseWindow()
		return err
	}
	a.renderer = render.NewRenderer(a.Viewport, util.RGBA(a.Config.Background), a.log)

	a.log.Infof("[RockViewer] Janela inicializada: %dx%d", width, height)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if rl.IsWindowResized() {
			a.log.Debugf("[RockViewer] Janela redimensionada para %dx%d (viewport mantém %dx%d)",
				rl.GetScreenWidth(), rl.GetScreenHeight(), width, height)
		}
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
	return nil
}

// setup monta o estado inicial: constrói o viewport e a cena estática e
// dispara o carregamento do asset. Não faz chamadas ao raylib.
func (a *App) setup(ctx context.Context, width, height int32) error {
	vp, err := camera.NewViewport(width, height, a.cameraParams())
	if err != nil {
		return fmt.Errorf("viewport: %w", err)
	}
	a.Viewport = vp

	a.Scene = scene.New()
	a.Handles = scene.Build(a.Scene, a.Config.SpinRate)

	// Só carrega depois que o setup não pode mais falhar
	if a.Config.ModelPath != "" {
		a.Loader.Load(ctx, a.Config.ModelPath)
	}
	a.log.WithFields(log.Fields{
		"entities": a.Scene.Count(),
		"aspect":   vp.Aspect(),
	}).Debug("[RockViewer] Cena inicial construída")
	return nil
}

func (a *App) cameraParams() camera.Params {
	p := camera.DefaultParams()
	p.FovY = a.Config.FOV
	p.Near = a.Config.NearPlane
	p.Far = a.Config.FarPlane
	p.Position = mgl32.Vec3(a.Config.CameraPos)
	p.Target = mgl32.Vec3(a.Config.CameraTarget)
	return p
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	a.log.Info("[RockViewer] Finalizando aplicação...")

	a.Loader.Wait()
	if a.renderer != nil {
		a.renderer.Unload()
	}
}
