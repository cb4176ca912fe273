package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/andresmejia3/matte/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.TargetWidth = 0 }, true},
		{"negative height", func(c *Config) { c.TargetHeight = -1 }, true},
		{"ratio at upper bound", func(c *Config) { c.PortraitHoriz = 0.5 }, true},
		{"ratio above upper bound", func(c *Config) { c.LandscapeVert = 0.75 }, true},
		{"negative ratio", func(c *Config) { c.LandscapeHoriz = -0.01 }, true},
		{"zero ratio is fine", func(c *Config) { c.PortraitVert = 0 }, false},
		{"quality too low", func(c *Config) { c.JPEGQuality = 0 }, true},
		{"quality too high", func(c *Config) { c.JPEGQuality = 101 }, true},
		{"in-place with empty prefix", func(c *Config) { c.SeparateFolder = false; c.OutputPrefix = "" }, true},
		{"subfolder with empty prefix is fine", func(c *Config) { c.OutputPrefix = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && !apperrors.IsKind(err, apperrors.KindConfig) {
				t.Errorf("err = %v, want config kind", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestOutputDir(t *testing.T) {
	cfg := Default()
	if got := cfg.OutputDir("/photos"); got != filepath.Join("/photos", SubfolderName) {
		t.Errorf("OutputDir = %q", got)
	}

	cfg.SeparateFolder = false
	if got := cfg.OutputDir("/photos"); got != "/photos" {
		t.Errorf("in-place OutputDir = %q", got)
	}
}

func TestLoadPresets_ApplyPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	data := `
gallery:
  landscape_vert: 0.08
  landscape_horiz: 0.08
instagram:
  width: 1080
  height: 1350
  jpeg_quality: 92
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(presets))
	}

	cfg := Default()
	if !cfg.ApplyPreset("gallery", presets) {
		t.Fatal("ApplyPreset(gallery) = false")
	}
	if cfg.LandscapeVert != 0.08 || cfg.LandscapeHoriz != 0.08 {
		t.Errorf("landscape ratios = %g/%g, want 0.08/0.08", cfg.LandscapeVert, cfg.LandscapeHoriz)
	}
	// Keys absent from the preset keep their defaults.
	if cfg.TargetWidth != 1080 || cfg.JPEGQuality != 100 || cfg.PortraitHoriz != 0.18 {
		t.Errorf("untouched fields changed: %+v", cfg)
	}

	cfg = Default()
	if !cfg.ApplyPreset("instagram", presets) {
		t.Fatal("ApplyPreset(instagram) = false")
	}
	if cfg.TargetHeight != 1350 || cfg.JPEGQuality != 92 {
		t.Errorf("instagram preset not applied: %+v", cfg)
	}
}

func TestApplyPreset_UnknownName(t *testing.T) {
	cfg := Default()
	before := cfg
	if cfg.ApplyPreset("nope", map[string]Preset{}) {
		t.Error("ApplyPreset(nope) = true, want false")
	}
	if cfg != before {
		t.Error("config mutated on unknown preset")
	}
}

func TestLoadPresets_Errors(t *testing.T) {
	if _, err := LoadPresets(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPresets(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
