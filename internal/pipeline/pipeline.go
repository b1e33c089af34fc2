package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/sixtyxsix/brandgen/internal/brand"
	"github.com/sixtyxsix/brandgen/internal/canvas"
	"github.com/sixtyxsix/brandgen/internal/manifest"
	"github.com/sixtyxsix/brandgen/internal/profile"
)

// Config holds all parameters for a build pipeline run.
type Config struct {
	OutputDir string
	Profile   profile.Profile
	Designs   []brand.Design
	Themes    []brand.Theme
	Accent    canvas.Color
	Workers   int
	Verbose   bool
	HashNames bool // embed the content hash in file names
}

// Pipeline renders every requested icon and its size variants.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Designs == nil {
		cfg.Designs = brand.Designs
	}
	if cfg.Themes == nil {
		cfg.Themes = brand.Themes
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the full build and returns the manifest. A failed icon is
// left out of the manifest and none of its files remain on disk; Run only
// fails when every icon fails.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	jobs := PlanJobs(p.cfg.Designs, p.cfg.Themes)
	if len(jobs) == 0 {
		return nil, fmt.Errorf("nothing to render")
	}
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	sizes := p.cfg.Profile.EffectiveSizes(brand.MasterSize)
	p.logf("%d icons × %d sizes %v", len(jobs), len(sizes), sizes)

	// Each job owns its canvas; nothing is shared between workers.
	results := make([]processResult, len(jobs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, j Job) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			p.logf("processing: %s", j.Key)

			results[idx] = processJob(j, sizes, p.cfg)

			if results[idx].err == nil {
				p.logf("done: %s (%d variants)", j.Key, len(results[idx].icon.Variants))
			}
		}(i, job)
	}
	wg.Wait()

	m := manifest.New(p.cfg.Profile.Name)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Icons[r.key] = r.icon
	}

	// Report errors but don't fail the entire build for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[brandgen] error: %v\n", e)
		}
		if len(errs) == len(jobs) {
			return nil, fmt.Errorf("all %d icons failed to render", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[brandgen] warning: %d of %d icons had errors\n",
			len(errs), len(jobs))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:    p.cfg.Workers,
		MasterSize: brand.MasterSize,
	}
	m.ComputeStats()
	return m, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[brandgen] "+format+"\n", args...)
	}
}
