package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config armazena as configurações do RockViewer.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	TargetFPS    int32  `json:"target_fps"`

	// Asset carregado na inicialização (.glb)
	ModelPath string `json:"model_path"`

	// Câmera (projeção fixa, definida uma única vez)
	FOV          float32    `json:"fov"`
	NearPlane    float32    `json:"near_plane"`
	FarPlane     float32    `json:"far_plane"`
	CameraPos    [3]float32 `json:"camera_position"`
	CameraTarget [3]float32 `json:"camera_target"`

	// Animação: incremento por iteração do loop (radianos)
	SpinRate float64 `json:"spin_rate"`

	// Renderização
	Background [4]uint8 `json:"background"`

	// Debug / Log
	ShowDebugInfo bool   `json:"show_debug_info"`
	LogFile       string `json:"log_file"`
	LogLevel      string `json:"log_level"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  800,
		WindowHeight: 600,
		WindowTitle:  "RockViewer",
		TargetFPS:    60,

		ModelPath: "./public/3DModels/Rock.glb",

		FOV:          75.0,
		NearPlane:    0.1,
		FarPlane:     1000.0,
		CameraPos:    [3]float32{0, 0, 20},
		CameraTarget: [3]float32{0, 0, 0},

		SpinRate: 0.01,

		Background: [4]uint8{0, 0, 0, 255},

		ShowDebugInfo: false,
		LogFile:       "debug_rv.log",
		LogLevel:      "info",
	}
}

// DefaultPath retorna o caminho do arquivo de configuração ao lado do executável.
func DefaultPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// LoadFrom carrega as configurações de um arquivo JSON.
// Arquivo ausente não é erro: os valores padrão são usados.
// Em caso de JSON inválido, retorna os padrões junto com o erro.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("falha ao ler %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("falha ao parsear %s: %w", path, err)
	}

	return cfg, nil
}

// SaveTo salva as configurações em um arquivo JSON.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
