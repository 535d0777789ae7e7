package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"texfilter/internal/batch"
	"texfilter/internal/config"
	"texfilter/internal/logging"
	"texfilter/internal/output"
	"texfilter/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	input := flag.String("input", "", "Texture to resample")
	inputDir := flag.String("dir", "", "Render every texture under this directory")
	outputPath := flag.String("output", "", "Output file (single) or directory (batch)")
	size := flag.String("size", "", "Output resolution WxH (default: 640x480)")
	filterName := flag.String("filter", "", "nearest, bilinear or triangular (default: triangular)")
	workers := flag.Int("workers", 0, "Row bands per render pass (default: NumCPU)")
	jobs := flag.Int("jobs", 0, "Textures rendered concurrently in batch mode (default: 1)")
	supersample := flag.Int("supersample", 0, "Render at N x size, then downsample (default: 1)")
	sheet := flag.Bool("sheet", false, "Render all three filters side by side")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	if *input == "" && flag.NArg() > 0 {
		*input = flag.Arg(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	err := cfg.Resolve(config.Flags{
		Input:       *input,
		InputDir:    *inputDir,
		Output:      *outputPath,
		Size:        *size,
		Filter:      *filterName,
		Workers:     *workers,
		Jobs:        *jobs,
		Supersample: *supersample,
		Sheet:       *sheet,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	settings := batch.Settings{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Kind:        cfg.Kind(),
		Workers:     cfg.Workers,
		Supersample: cfg.Supersample,
		Sheet:       cfg.Sheet,
	}

	var code int
	if cfg.InputDir != "" {
		code = runBatch(ctx, cfg, settings)
	} else {
		code = runSingle(ctx, cfg, settings)
	}
	stop()
	os.Exit(code)
}

func runSingle(ctx context.Context, cfg config.Config, settings batch.Settings) int {
	if !output.Supported(cfg.Output) {
		fmt.Fprintf(os.Stderr, "Error: unsupported output format %q (use .webp, .png or .tga)\n", filepath.Ext(cfg.Output))
		return 1
	}

	tex, err := texture.Load(cfg.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Texture: %s (%dx%d %s)\n", cfg.Input, tex.Width(), tex.Height(), tex.Format())

	start := time.Now()
	img, err := batch.RenderImage(ctx, tex, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: render: %v\n", err)
		return 1
	}
	if err := output.Save(cfg.Output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Rendered %dx%d %s in %.2fs -> %s\n",
		cfg.Width, cfg.Height, cfg.Filter, time.Since(start).Seconds(), cfg.Output)
	return 0
}

func runBatch(ctx context.Context, cfg config.Config, settings batch.Settings) int {
	// An explicit -output may point inside the input tree; never index it.
	texIndex, err := texture.BuildIndex(cfg.InputDir, cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	names := texIndex.Stems()
	if len(names) == 0 {
		fmt.Println("No textures to render.")
		return 0
	}

	fmt.Printf("Texture resampler: %s %dx%d\n", cfg.Filter, cfg.Width, cfg.Height)
	fmt.Printf("Textures: %d, Jobs: %d, Workers: %d\n", len(names), cfg.Jobs, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(ctx, batch.Config{
		OutputDir:   cfg.Output,
		OutputExt:   cfg.OutputExt,
		TexResolver: texture.NewCache(texIndex),
		Settings:    settings,
		Jobs:        cfg.Jobs,
	}, names)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	// Count results
	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(len(failed), 20)
		for _, e := range failed[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.Output, "manifest.json")
	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, settings, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		return 1
	}
	return 0
}
