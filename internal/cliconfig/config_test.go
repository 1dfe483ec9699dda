package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
work_dir = "/data/stack"
resolution = 10.0
snr_threshold = 6.5
workers = 8
watch = true
stac = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig returned error: %v", err)
	}
	if fc.WorkDir != "/data/stack" || fc.Resolution != 10 || fc.SNRThreshold != 6.5 || fc.Workers != 8 {
		t.Fatalf("unexpected file config %+v", fc)
	}
	if fc.Watch == nil || !*fc.Watch {
		t.Fatal("watch not parsed")
	}
	if fc.STACSidecar == nil || *fc.STACSidecar {
		t.Fatal("stac not parsed")
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyFileConfigPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	watch := true
	fc := fileConfig{
		WorkDir:      "/from/file",
		Resolution:   10,
		SNRThreshold: 6.5,
		Workers:      8,
		Watch:        &watch,
	}

	// --res was passed on the command line, so the file must not win.
	ApplyFileConfig(&cfg, fc, map[string]bool{"res": true})

	if cfg.Resolution != 30 {
		t.Fatalf("resolution = %v, file value overrode an explicit flag", cfg.Resolution)
	}
	if cfg.WorkDir != "/from/file" {
		t.Fatalf("workdir = %q, file value not applied", cfg.WorkDir)
	}
	if cfg.SNRThreshold != 6.5 || cfg.Workers != 8 || !cfg.Watch {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestApplyFileConfigZeroValuesIgnored(t *testing.T) {
	cfg := DefaultConfig()
	ApplyFileConfig(&cfg, fileConfig{}, nil)
	if cfg.Resolution != 30 || cfg.Workers != 4 {
		t.Fatalf("zero file values clobbered defaults: %+v", cfg)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("STACKRTC_RESOLUTION", "10")
	t.Setenv("STACKRTC_WORK_DIR", "/from/env")
	t.Setenv("STACKRTC_WATCH", "true")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("ApplyEnvConfig returned error: %v", err)
	}
	if cfg.Resolution != 10 || cfg.WorkDir != "/from/env" || !cfg.Watch {
		t.Fatalf("env values not applied: %+v", cfg)
	}
}

func TestApplyEnvConfigFlagWins(t *testing.T) {
	t.Setenv("STACKRTC_RESOLUTION", "10")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{"res": true}); err != nil {
		t.Fatalf("ApplyEnvConfig returned error: %v", err)
	}
	if cfg.Resolution != 30 {
		t.Fatalf("resolution = %v, env value overrode an explicit flag", cfg.Resolution)
	}
}

func TestApplyEnvConfigBadValue(t *testing.T) {
	t.Setenv("STACKRTC_WORKERS", "many")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Fatal("expected error for non-numeric STACKRTC_WORKERS")
	}
}
