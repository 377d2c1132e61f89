// ABOUTME: Tests for YAML config loading with env overrides
// ABOUTME: Merge precedence: defaults < file < UEBERLAY_* environment

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mauromedda/ueberlay/internal/log"
	"github.com/mauromedda/ueberlay/pkg/overlay/ueberzug"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Renderer != "ueberzug" {
		t.Errorf("renderer = %q, want ueberzug", cfg.Renderer)
	}
	if cfg.Moment() != ueberzug.DrawSynchronous {
		t.Error("default drawing moment should be synchronous")
	}
	if cfg.Level() != log.LevelWarn {
		t.Errorf("default level = %v, want warn", cfg.Level())
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "renderer: ueberzugpp\ndrawing: asynchronous\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Renderer != "ueberzugpp" {
		t.Errorf("renderer = %q, want ueberzugpp", cfg.Renderer)
	}
	if cfg.Moment() != ueberzug.DrawAsynchronous {
		t.Error("expected asynchronous drawing moment")
	}
	if cfg.Level() != log.LevelDebug {
		t.Errorf("level = %v, want debug", cfg.Level())
	}
	// File did not set scaler: default survives.
	if cfg.Scaler != ueberzug.ScalerContain {
		t.Errorf("scaler = %q, want default contain", cfg.Scaler)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("renderer: from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UEBERLAY_RENDERER", "from-env")
	t.Setenv("UEBERLAY_SCALER", ueberzug.ScalerCrop)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Renderer != "from-env" {
		t.Errorf("renderer = %q, env must beat file", cfg.Renderer)
	}
	if cfg.Scaler != ueberzug.ScalerCrop {
		t.Errorf("scaler = %q, want crop", cfg.Scaler)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}
