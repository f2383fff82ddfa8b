// Package converter orchestrates DSL conversion runs: each input file is read,
// built into entries and handed to the configured sinks.
package converter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dslconv/internal/dsl"
	"github.com/heartmarshall/dslconv/internal/dsl/markup"
	"github.com/heartmarshall/dslconv/pkg/ctxutil"
)

// FileResult holds the outcome of converting a single input file.
type FileResult struct {
	Path     string
	Name     string
	Entries  int
	Stats    dsl.Stats
	Output   string    // JSON file written, if any
	Inserted int       // rows written to the store, if any
	Replaced int       // earlier imports of the same file removed
	DryRun   bool
	Duration time.Duration
	Err      error

	DictionaryID uuid.UUID
}

// Options tunes a Pipeline.
type Options struct {
	Workers int  // files converted concurrently; <= 0 means 1
	DryRun  bool // read and build only, sinks are not called
}

// Pipeline converts files independently. A failing file does not stop the others.
type Pipeline struct {
	log   *slog.Logger
	rules markup.Rules
	opts  Options
	sinks []Sink
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, rules markup.Rules, opts Options, sinks ...Sink) *Pipeline {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Pipeline{log: log, rules: rules, opts: opts, sinks: sinks}
}

// Run converts every path and returns one result per path, in input order.
// The error is non-nil only when ctx ends before all files are processed;
// per-file failures are reported through FileResult.Err.
func (p *Pipeline) Run(ctx context.Context, paths []string) ([]FileResult, error) {
	if _, ok := ctxutil.RunIDFromCtx(ctx); !ok {
		ctx = ctxutil.WithRunID(ctx, uuid.New())
	}

	start := time.Now()
	p.log.InfoContext(ctx, "conversion started",
		slog.Int("files", len(paths)),
		slog.Int("workers", p.opts.Workers),
		slog.Bool("dry_run", p.opts.DryRun),
	)

	results := make([]FileResult, len(paths))
	conflicts := p.claimOutputs(ctx, paths)

	var g errgroup.Group
	g.SetLimit(p.opts.Workers)
	for i, path := range paths {
		if err, ok := conflicts[i]; ok {
			results[i] = FileResult{Path: path, Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FileResult{Path: path, Err: err}
				return err
			}
			results[i] = p.convertFile(ctxutil.WithSource(ctx, path), path)
			return nil
		})
	}
	waitErr := g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	p.log.InfoContext(ctx, "conversion completed",
		slog.Int("files", len(paths)),
		slog.Int("failed", failed),
		slog.Duration("duration", time.Since(start)),
	)

	if waitErr != nil {
		return results, fmt.Errorf("conversion interrupted: %w", waitErr)
	}
	return results, nil
}

// claimOutputs fails inputs that would overwrite another input's output.
func (p *Pipeline) claimOutputs(ctx context.Context, paths []string) map[int]error {
	conflicts := make(map[int]error)
	if p.opts.DryRun {
		return conflicts
	}
	for _, sink := range p.sinks {
		c, ok := sink.(outputClaimer)
		if !ok {
			continue
		}
		for i, err := range c.claimOutputs(paths) {
			if _, seen := conflicts[i]; seen {
				continue
			}
			conflicts[i] = fmt.Errorf("%s sink: %w", sink.Name(), err)
			p.log.ErrorContext(ctxutil.WithSource(ctx, paths[i]), "file skipped", slog.String("error", conflicts[i].Error()))
		}
	}
	return conflicts
}

func (p *Pipeline) convertFile(ctx context.Context, path string) FileResult {
	start := time.Now()
	res := FileResult{Path: path, DryRun: p.opts.DryRun}

	p.log.DebugContext(ctx, "reading file")

	d, err := dsl.Load(path, p.rules)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		p.log.ErrorContext(ctx, "file failed", slog.String("error", err.Error()))
		return res
	}

	res.Name = dictionaryName(d)
	res.Entries = len(d.Entries)
	res.Stats = d.Stats
	p.logStats(ctx, d.Stats)

	if !p.opts.DryRun {
		for _, sink := range p.sinks {
			if err := sink.Write(ctx, d, &res); err != nil {
				res.Err = fmt.Errorf("%s sink: %w", sink.Name(), err)
				break
			}
		}
	}
	res.Duration = time.Since(start)

	if res.Err != nil {
		p.log.ErrorContext(ctx, "file failed",
			slog.String("error", res.Err.Error()),
			slog.Duration("duration", res.Duration),
		)
		return res
	}

	p.log.InfoContext(ctx, "file converted",
		slog.String("name", res.Name),
		slog.Int("entries", res.Entries),
		slog.String("output", res.Output),
		slog.Int("inserted", res.Inserted),
		slog.Duration("duration", res.Duration),
	)
	return res
}

func (p *Pipeline) logStats(ctx context.Context, s dsl.Stats) {
	p.log.DebugContext(ctx, "file built",
		slog.Int("lines", s.TotalLines),
		slog.Int("headwords", s.Headwords),
		slog.Int("definitions", s.DefinitionLines),
		slog.Int("grouped_headwords", s.GroupedHeadwords),
	)
	if s.UnresolvedGroups > 0 {
		p.log.WarnContext(ctx, "headwords left without definitions",
			slog.Int("count", s.UnresolvedGroups),
		)
	}
	if s.OrphanDefinitions > 0 {
		p.log.WarnContext(ctx, "definition lines before the first headword dropped",
			slog.Int("count", s.OrphanDefinitions),
		)
	}
}

// HasErrors reports whether any file failed.
func HasErrors(results []FileResult) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
