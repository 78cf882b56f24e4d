package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"RockViewer/cliente/internal/app"
	"RockViewer/shared/config"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configPath := flag.String("config", config.DefaultPath(), "Arquivo de configuração JSON")
	modelPath := flag.String("model", "", "Caminho do modelo .glb (padrão: config)")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	initConfig := flag.Bool("init-config", false, "Grava a configuração padrão e sai")
	flag.Parse()

	if *initConfig {
		if err := config.DefaultConfig().SaveTo(*configPath); err != nil {
			log.Fatalf("[RockViewer] Erro ao gravar configuração: %v", err)
		}
		log.Infof("[RockViewer] Configuração padrão gravada em %s", *configPath)
		return
	}

	// Carregar configurações
	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Warnf("[RockViewer] Usando configuração padrão: %v", err)
	}

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *modelPath != "" {
		cfg.ModelPath = *modelPath
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *debug {
		cfg.ShowDebugInfo = true
		cfg.LogLevel = "debug"
	}

	logger := setupLogging(cfg)
	logger.Info("[RockViewer] Visualizador 3D iniciado (cliente/main.go)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger)
	if err := application.Run(ctx); err != nil {
		logger.WithError(err).Error("[RockViewer] Encerrado com erro")
		os.Exit(1)
	}
}

// setupLogging configura o logger padrão: stderr e, se configurado, o
// arquivo de log em modo append.
func setupLogging(cfg *config.Config) *log.Logger {
	logger := log.StandardLogger()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05"})

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(io.MultiWriter(os.Stderr, f))
		} else {
			logger.Warnf("[RockViewer] Não foi possível abrir %s: %v", cfg.LogFile, err)
		}
	}
	return logger
}
