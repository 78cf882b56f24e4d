package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nao_existe.json"))
	if err != nil {
		t.Fatalf("LoadFrom retornou erro inesperado: %v", err)
	}
	def := DefaultConfig()
	if *cfg != *def {
		t.Errorf("LoadFrom = %+v, want defaults %+v", cfg, def)
	}
}

func TestDefaultConfigCamera(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FOV != 75 || cfg.NearPlane != 0.1 || cfg.FarPlane != 1000 {
		t.Errorf("projeção padrão = (%v, %v, %v), want (75, 0.1, 1000)", cfg.FOV, cfg.NearPlane, cfg.FarPlane)
	}
	if cfg.CameraPos != [3]float32{0, 0, 20} {
		t.Errorf("CameraPos = %v, want [0 0 20]", cfg.CameraPos)
	}
	if cfg.SpinRate != 0.01 {
		t.Errorf("SpinRate = %v, want 0.01", cfg.SpinRate)
	}
}

func TestLoadFromOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"window_width": 1024, "model_path": "rock.glb"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.WindowWidth != 1024 {
		t.Errorf("WindowWidth = %d, want 1024", cfg.WindowWidth)
	}
	if cfg.ModelPath != "rock.glb" {
		t.Errorf("ModelPath = %q, want rock.glb", cfg.ModelPath)
	}
	if cfg.WindowHeight != 600 {
		t.Errorf("WindowHeight = %d, want default 600", cfg.WindowHeight)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"window_width": `), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("esperava erro para JSON inválido")
	}
	if cfg == nil || cfg.WindowWidth != 800 {
		t.Errorf("esperava defaults junto com o erro, got %+v", cfg)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.ShowDebugInfo = true
	cfg.Background = [4]uint8{30, 30, 40, 255}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if *got != *cfg {
		t.Errorf("LoadFrom após SaveTo = %+v, want %+v", got, cfg)
	}
}
