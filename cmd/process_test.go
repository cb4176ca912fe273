package cmd

import (
	"testing"

	"github.com/andresmejia3/matte/internal/config"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := buildConfig(processOptions{}, changedSet(), nil)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("cfg = %+v, want stock defaults", cfg)
	}
}

func TestBuildConfig_PresetThenFlags(t *testing.T) {
	w, q := 2000, 85
	presets := map[string]config.Preset{
		"wide": {Width: &w, JPEGQuality: &q},
	}
	opts := processOptions{
		Preset:      "wide",
		JPEGQuality: 60,
		Width:       1080, // flag default, not explicitly set
	}

	// Only jpeg-quality was set on the command line, so the preset's width
	// survives but its quality is overridden.
	cfg, err := buildConfig(opts, changedSet("jpeg-quality"), presets)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.TargetWidth != 2000 {
		t.Errorf("width = %d, want preset value 2000", cfg.TargetWidth)
	}
	if cfg.JPEGQuality != 60 {
		t.Errorf("quality = %d, want explicit flag value 60", cfg.JPEGQuality)
	}
	if cfg.TargetHeight != 1080 || cfg.PortraitHoriz != 0.18 {
		t.Errorf("untouched fields changed: %+v", cfg)
	}
}

func TestBuildConfig_ExplicitFlagsOnly(t *testing.T) {
	opts := processOptions{
		LandscapeVert:  0.1,
		Prefix:         "framed_",
		SeparateFolder: false,
	}
	cfg, err := buildConfig(opts, changedSet("landscape-vert", "prefix", "separate-folder"), nil)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.LandscapeVert != 0.1 || cfg.OutputPrefix != "framed_" || cfg.SeparateFolder {
		t.Errorf("flag overrides not applied: %+v", cfg)
	}
}

func TestBuildConfig_UnknownPreset(t *testing.T) {
	_, err := buildConfig(processOptions{Preset: "nope"}, changedSet(), map[string]config.Preset{})
	if err == nil {
		t.Error("expected error for unknown preset")
	}
}
