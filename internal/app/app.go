// Package app implements the application layer for lode.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/lode/internal/adapters/telemetry/progrock"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic: it resolves a module graph from
// an entry specifier and optionally reports the result.
type App struct {
	engine       ports.Engine
	loader       ports.SourceLoader
	normalizer   ports.PathNormalizer
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	reportWriter ports.ReportWriter
}

// New creates a new App instance.
func New(
	engine ports.Engine,
	loader ports.SourceLoader,
	normalizer ports.PathNormalizer,
	configLoader ports.ConfigLoader,
	log ports.Logger,
	tracer ports.Tracer,
	reportWriter ports.ReportWriter,
) *App {
	return &App{
		engine:       engine,
		loader:       loader,
		normalizer:   normalizer,
		configLoader: configLoader,
		logger:       log,
		tracer:       tracer,
		reportWriter: reportWriter,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Entry overrides the lodefile's entry specifier.
	Entry string
	// Workdir is where lodefile discovery starts and the base for a relative
	// entry. Empty means the process working directory.
	Workdir string
	// ReportPath, when set, is where the resolution report is written.
	ReportPath string
	// Progress enables terminal progress output instead of the injected tracer.
	Progress bool
}

// Run resolves the module graph rooted at the configured entry.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	workdir := opts.Workdir
	if workdir == "" {
		workdir = "."
	}

	// 1. Load configuration. A missing lodefile is fine when the entry comes
	// from the command line.
	entry := opts.Entry
	cfg, err := a.configLoader.Load(workdir)
	switch {
	case err == nil:
		if entry == "" {
			entry = cfg.Entry
		}
		if opts.Workdir == "" && cfg.Workdir != "" {
			workdir = cfg.Workdir
		}
	case errors.Is(err, domain.ErrConfigNotFound) && opts.Entry != "":
		// Proceed on command-line entry alone.
	default:
		return zerr.Wrap(err, "failed to load configuration")
	}

	if entry == "" {
		return domain.ErrNoEntry
	}

	// Anchor a relative entry at the workdir; the resolver itself falls back
	// to the process working directory.
	if workdir != "." && !filepath.IsAbs(entry) {
		entry = filepath.Join(workdir, entry)
	}

	// 2. Telemetry
	tracer := a.tracer
	if opts.Progress {
		rec := progrock.New()
		defer rec.Close() //nolint:errcheck // Best effort close of progress output
		tracer = rec
	}

	// 3. Engine context and resolver, torn down in reverse order
	engCtx, err := a.engine.NewContext()
	if err != nil {
		return zerr.Wrap(err, "failed to create engine context")
	}
	defer engCtx.Close() //nolint:errcheck // Cleanup in defer

	res := resolver.New(engCtx, a.loader, a.normalizer)
	defer res.Close() //nolint:errcheck // Cleanup in defer

	// 4. Walk the graph
	tracer.EmitPlan(ctx, []string{entry})

	seen := make(map[uint64]bool)
	if err := a.resolveGraph(ctx, tracer, res, engCtx, entry, nil, seen); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("resolved %d modules from %s", res.Len(), entry))

	// 5. Report
	if opts.ReportPath != "" {
		entries, err := a.collectReport(res, engCtx)
		if err != nil {
			return err
		}
		if err := a.reportWriter.Write(opts.ReportPath, entries); err != nil {
			return err
		}
	}

	return nil
}

// resolveGraph resolves specifier and recurses into the module's static
// requests. seen is keyed by module identity, so a cycle ends the recursion
// at its first revisited module.
func (a *App) resolveGraph(
	ctx context.Context,
	tracer ports.Tracer,
	res *resolver.Resolver,
	engCtx ports.EngineContext,
	specifier string,
	referrer domain.Value,
	seen map[uint64]bool,
) error {
	spanCtx, span := tracer.Start(ctx, "resolve "+specifier)
	defer span.End()

	module, err := res.Resolve(spanCtx, specifier, referrer)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrResolutionFailed.Error()), "specifier", specifier)
		span.RecordError(err)
		a.logger.Error(err)
		return err
	}
	defer module.Release()

	if seen[module.ID()] {
		span.Cached()
		return nil
	}
	seen[module.ID()] = true

	if meta, ok := engCtx.ModuleData(module); ok {
		span.SetAttribute("path", meta.CanonicalPath.String())
		span.SetAttribute("content_hash", fmt.Sprintf("%016x", meta.ContentHash))
	}

	requests, err := engCtx.ModuleRequests(module)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to list module requests")
	}

	for _, request := range requests {
		if err := a.resolveGraph(ctx, tracer, res, engCtx, request, module, seen); err != nil {
			return err
		}
	}

	return nil
}

// collectReport snapshots the cache into report entries, one per resolved
// module, with the specifiers each module requests.
func (a *App) collectReport(res *resolver.Resolver, engCtx ports.EngineContext) ([]domain.ReportEntry, error) {
	cached := res.Entries()
	entries := make([]domain.ReportEntry, 0, len(cached))

	for _, entry := range cached {
		requests, err := engCtx.ModuleRequests(entry.Module)
		if err != nil {
			return nil, zerr.With(err, "path", entry.CanonicalPath.String())
		}
		entries = append(entries, domain.ReportEntry{
			Path:        entry.CanonicalPath,
			Realm:       entry.Realm.ID(),
			ContentHash: fmt.Sprintf("%016x", entry.ContentHash),
			Requests:    requests,
		})
	}

	return entries, nil
}
