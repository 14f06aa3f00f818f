package wix2site

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/yu-lab/go-wix2site/internal/fileutil"
)

// Builder renders every configured page from its fragment plus the shared
// layout, localizes remaining external image URLs, and writes the results.
type Builder struct {
	log      *slog.Logger
	renderer *Renderer
	assets   *AssetIndex
	workers  int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithWorkers sets the number of pages built concurrently. Pages share no
// state, so concurrency never changes output bytes.
// Panics if n < 1 (programmer error).
func WithWorkers(n int) BuilderOption {
	if n < 1 {
		panic("wix2site: WithWorkers count must be positive")
	}
	return func(b *Builder) {
		b.workers = n
	}
}

// NewBuilder creates a Builder. assets may be nil, in which case external
// image URLs are left unchanged. A nil logger discards logs.
func NewBuilder(logger *slog.Logger, renderer *Renderer, assets *AssetIndex, opts ...BuilderOption) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	b := &Builder{
		log:      logger,
		renderer: renderer,
		assets:   assets,
		workers:  1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildResult holds the outcome of a single page build.
type BuildResult struct {
	Template   string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// Build processes every record and returns one result per record, in record
// order. Any error during a single page's render or write is caught at the
// page boundary, logged with the output path, and does not stop the
// remaining pages.
func (b *Builder) Build(records []PageRecord) []BuildResult {
	if len(records) == 0 {
		return nil
	}

	concurrency := b.workers
	if concurrency > len(records) {
		concurrency = len(records)
	}

	results := make([]BuildResult, len(records))
	jobs := make(chan int, len(records))
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = b.buildPage(records[idx])
				if results[idx].Err != nil {
					b.log.Error("page build failed", "output", records[idx].OutputPath, "error", results[idx].Err)
				} else {
					b.log.Info("page built", "output", records[idx].OutputPath)
				}
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage renders and writes a single page.
func (b *Builder) buildPage(rec PageRecord) BuildResult {
	start := time.Now()
	result := BuildResult{
		Template:   rec.Template,
		OutputPath: rec.OutputPath,
	}

	if err := rec.Validate(); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	doc, err := b.renderer.Render(rec.Template, rec.Config)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// Final fix-up passes over the rendered text.
	doc = stripSrcset(doc)
	if b.assets != nil {
		doc = localizeExternalImages(doc, rec.Config.RootPath, b.assets.Lookup)
	}

	if err := fileutil.WriteFile(rec.OutputPath, []byte(doc)); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// FailedCount tallies results with errors.
func FailedCount(results []BuildResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}
