package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"texfilter/internal/filter"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Resolve(Flags{Input: filepath.Join("tex", "brick.png")}); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.Kind() != filter.KindTriangular {
		t.Errorf("filter = %v, want triangular", cfg.Kind())
	}
	if cfg.Workers != runtime.NumCPU() || cfg.Jobs != 1 || cfg.Supersample != 1 {
		t.Errorf("workers=%d jobs=%d supersample=%d", cfg.Workers, cfg.Jobs, cfg.Supersample)
	}
	if want := filepath.Join("tex", "brick_triangular.webp"); cfg.Output != want {
		t.Errorf("output = %q, want %q", cfg.Output, want)
	}
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"input": "a.png", "width": 100, "height": 50, "filter": "bilinear", "workers": 3, "output_ext": "png"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Resolve(Flags{Size: "320x200", Filter: "nearest", Sheet: true}); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("size = %dx%d, want 320x200", cfg.Width, cfg.Height)
	}
	if cfg.Kind() != filter.KindNearest || cfg.Workers != 3 {
		t.Errorf("filter=%v workers=%d", cfg.Kind(), cfg.Workers)
	}
	if cfg.Output != "a_sheet.png" {
		t.Errorf("output = %q, want a_sheet.png", cfg.Output)
	}
}

func TestResolveBatchOutput(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"textures", "textures_filtered"},
		{"textures/", "textures_filtered"},
		{filepath.Join("data", "world1"), filepath.Join("data", "world1_filtered")},
	}
	for _, tt := range tests {
		cfg := Config{InputDir: tt.dir}
		if err := cfg.Resolve(Flags{}); err != nil {
			t.Fatal(err)
		}
		if cfg.Output != tt.want {
			t.Errorf("InputDir %q: output = %q, want %q", tt.dir, cfg.Output, tt.want)
		}
		if strings.HasPrefix(cfg.Output, filepath.Clean(tt.dir)+string(filepath.Separator)) {
			t.Errorf("InputDir %q: output %q lies inside the input tree", tt.dir, cfg.Output)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		flags Flags
	}{
		{"no input", Config{}, Flags{}},
		{"both inputs", Config{Input: "a.png"}, Flags{InputDir: "dir"}},
		{"bad filter", Config{Input: "a.png", Filter: "bicubic"}, Flags{}},
		{"bad size", Config{Input: "a.png"}, Flags{Size: "640"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Resolve(tt.flags); err == nil {
				t.Error("Resolve succeeded, want error")
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load of missing file succeeded")
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed file succeeded")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"640x480", 640, 480, true},
		{"1920X1080", 1920, 1080, true},
		{" 8 x 2 ", 8, 2, true},
		{"0x10", 0, 0, false},
		{"10x-1", 0, 0, false},
		{"axb", 0, 0, false},
		{"100", 0, 0, false},
	}
	for _, tt := range tests {
		w, h, err := ParseSize(tt.in)
		if (err == nil) != tt.ok || w != tt.w || h != tt.h {
			t.Errorf("ParseSize(%q) = %d, %d, %v", tt.in, w, h, err)
		}
	}
}
