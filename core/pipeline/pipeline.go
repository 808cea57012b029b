// Package pipeline runs the extraction cascade over a fetched document.
// Stages execute in fixed priority order — structured data, then the HTML
// fallback scraper, then page metadata — and merge into an accumulator under
// a first-writer-wins policy: a later stage may only fill a field the
// accumulator doesn't have yet. Provenance is implicit in that order.
package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/meta"
	"github.com/gaurav-prasanna/recipepipe/core/scrape"
	"github.com/gaurav-prasanna/recipepipe/core/structured"
)

// stage pairs an extractor with a gate deciding whether it still has
// anything to offer given the accumulator so far.
type stage struct {
	extractor core.Extractor
	gate      func(acc *core.ParsedFragment) bool
}

// Orchestrator drives the stages and owns the merge policy.
type Orchestrator struct {
	stages []stage
	log    *zap.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger attaches a logger for stage-outcome reporting. The default is
// a nop logger so the pipeline stays silent when embedded.
func WithLogger(log *zap.Logger) Option {
	return func(o *Orchestrator) { o.log = log }
}

// WithStages replaces the default cascade. Every supplied extractor runs
// unconditionally; intended for tests.
func WithStages(extractors ...core.Extractor) Option {
	return func(o *Orchestrator) {
		o.stages = nil
		for _, e := range extractors {
			o.stages = append(o.stages, stage{extractor: e})
		}
	}
}

// New builds the default cascade.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		stages: []stage{
			{extractor: structured.New()},
			// The scraper only runs while one of the content halves is
			// still missing; page metadata always runs, since the merge
			// makes it a no-op when nothing is left to fill.
			{extractor: scrape.New(), gate: missingContent},
			{extractor: meta.New()},
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func missingContent(acc *core.ParsedFragment) bool {
	return len(acc.Ingredients) == 0 || len(acc.Instructions) == 0
}

// Extract runs the cascade over one document. Stage failures degrade to the
// next stage; only exhaustion of all stages with zero ingredients and zero
// instructions becomes an error, and that error wraps core.ErrNoRecipe.
func (o *Orchestrator) Extract(doc core.RawDocument) (core.CanonicalRecipe, error) {
	doc = doc.Truncated()
	acc := &core.ParsedFragment{}

	for _, st := range o.stages {
		if st.gate != nil && !st.gate(acc) {
			o.log.Debug("stage skipped", zap.String("stage", st.extractor.Name()))
			continue
		}
		frag, err := st.extractor.Attempt(doc)
		if err != nil {
			// Sentinel no-match signals and real parse failures both
			// degrade; the distinction only matters for log level.
			if errors.Is(err, core.ErrNoStructuredData) || errors.Is(err, core.ErrNoScrapedContent) {
				o.log.Debug("stage found nothing", zap.String("stage", st.extractor.Name()))
			} else {
				o.log.Warn("stage failed", zap.String("stage", st.extractor.Name()), zap.Error(err))
			}
			continue
		}
		Supplement(acc, frag)
		o.log.Debug("stage merged",
			zap.String("stage", st.extractor.Name()),
			zap.Int("ingredients", len(acc.Ingredients)),
			zap.Int("instructions", len(acc.Instructions)))
	}

	if !acc.HasContent() {
		return core.CanonicalRecipe{}, fmt.Errorf("extracting %s: %w", doc.SourceID, core.ErrNoRecipe)
	}
	return acc.Canonical(doc.SourceID), nil
}

// Supplement merges src into dst, writing only fields dst doesn't have.
// This is the whole non-destructiveness guarantee, so it lives in one place.
func Supplement(dst, src *core.ParsedFragment) {
	if src == nil {
		return
	}
	if dst.Title == "" {
		dst.Title = src.Title
	}
	if dst.Description == "" {
		dst.Description = src.Description
	}
	if len(dst.Ingredients) == 0 {
		dst.Ingredients = src.Ingredients
	}
	if len(dst.Instructions) == 0 {
		dst.Instructions = src.Instructions
	}
	if dst.Servings == 0 {
		dst.Servings = src.Servings
	}
	if dst.PrepMinutes == nil {
		dst.PrepMinutes = src.PrepMinutes
	}
	if dst.CookMinutes == nil {
		dst.CookMinutes = src.CookMinutes
	}
	if len(dst.Tags) == 0 {
		dst.Tags = src.Tags
	}
	if len(dst.ImageURLs) == 0 {
		dst.ImageURLs = src.ImageURLs
	}
}
