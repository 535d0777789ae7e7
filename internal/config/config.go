package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"texfilter/internal/filter"
)

// Config holds input/output paths and render settings.
type Config struct {
	// Paths
	Input     string `json:"input"`      // single texture
	InputDir  string `json:"input_dir"`  // batch: every texture under this dir
	Output    string `json:"output"`     // file for single mode, dir for batch
	OutputExt string `json:"output_ext"` // batch output format, e.g. ".webp"

	// Render settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Filter      string `json:"filter"`
	Workers     int    `json:"workers"`     // row bands per render pass
	Jobs        int    `json:"jobs"`        // textures rendered concurrently in batch mode
	Supersample int    `json:"supersample"` // render at N x size, then downsample
	Sheet       bool   `json:"sheet"`       // render all filters side by side
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Input       string
	InputDir    string
	Output      string
	Size        string // "WxH"
	Filter      string
	Workers     int
	Jobs        int
	Supersample int
	Sheet       bool
}

// Resolve applies flags over file values, then fills defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.Input != "" {
		c.Input = flags.Input
	}
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Size != "" {
		w, h, err := ParseSize(flags.Size)
		if err != nil {
			return err
		}
		c.Width, c.Height = w, h
	}
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Jobs > 0 {
		c.Jobs = flags.Jobs
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Sheet {
		c.Sheet = true
	}

	if c.Input == "" && c.InputDir == "" {
		return fmt.Errorf("config: no input texture or input directory")
	}
	if c.Input != "" && c.InputDir != "" {
		return fmt.Errorf("config: input and input_dir are mutually exclusive")
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Filter == "" {
		c.Filter = filter.KindTriangular.String()
	}
	if _, err := filter.ParseKind(c.Filter); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Jobs <= 0 {
		c.Jobs = 1
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.OutputExt == "" {
		c.OutputExt = ".webp"
	}
	if !strings.HasPrefix(c.OutputExt, ".") {
		c.OutputExt = "." + c.OutputExt
	}

	// Output defaults next to the input. The batch folder is a sibling so a
	// rerun never indexes its own results.
	if c.Output == "" {
		if c.InputDir != "" {
			c.Output = filepath.Clean(c.InputDir) + "_filtered"
		} else {
			suffix := c.Filter
			if c.Sheet {
				suffix = "sheet"
			}
			stem := strings.TrimSuffix(c.Input, filepath.Ext(c.Input))
			c.Output = stem + "_" + suffix + c.OutputExt
		}
	}
	return nil
}

// Kind returns the parsed filter. Valid after Resolve.
func (c *Config) Kind() filter.Kind {
	k, _ := filter.ParseKind(c.Filter)
	return k
}

// ParseSize parses "WxH", e.g. "640x480".
func ParseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("config: size %q is not WxH", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("config: bad width in %q", s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("config: bad height in %q", s)
	}
	return w, h, nil
}
