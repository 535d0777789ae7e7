package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"texfilter/internal/logging"
	"texfilter/internal/output"
	"texfilter/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	OutputExt   string
	TexResolver texture.Resolver
	Settings    Settings
	Jobs        int // textures in flight; each runs its own render pass
}

// Result holds the outcome of processing one texture.
type Result struct {
	Name    string
	Image   string // output path relative to OutputDir
	Width   int
	Height  int
	Success bool
	Error   string
}

// Run renders every named texture using a worker pool. Results are in the
// order of names.
func Run(ctx context.Context, cfg Config, names []string) []Result {
	total := len(names)
	results := make([]Result, total)
	var processed atomic.Int64

	jobs := max(cfg.Jobs, 1)
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f textures/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	nameChan := make(chan int, jobs*2)
	var wg sync.WaitGroup

	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range nameChan {
				results[idx] = processTexture(ctx, cfg, names[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range names {
		nameChan <- i
	}
	close(nameChan)

	wg.Wait()
	close(done)

	logging.Logger().Info("batch finished", "textures", total, "elapsed", time.Since(start))
	return results
}

// OutputName is the file name a texture renders to.
func OutputName(name string, s Settings, ext string) string {
	suffix := s.Kind.String()
	if s.Sheet {
		suffix = "sheet"
	}
	return fmt.Sprintf("%s_%s%s", name, suffix, ext)
}

func processTexture(ctx context.Context, cfg Config, name string) Result {
	res := Result{
		Name:   name,
		Image:  OutputName(name, cfg.Settings, cfg.OutputExt),
		Width:  cfg.Settings.Width,
		Height: cfg.Settings.Height,
	}

	tex, err := cfg.TexResolver.Resolve(name)
	if err != nil {
		res.Error = err.Error()
		logging.Logger().Warn("texture skipped", "name", name, "err", err)
		return res
	}

	img, err := RenderImage(ctx, tex, cfg.Settings)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	if err := output.Save(filepath.Join(cfg.OutputDir, res.Image), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
