// Package pipeline orchestrates a ranking run: query every configured source
// concurrently, normalize and score what comes back, merge, sort and truncate.
// It always produces a result; when every live source fails it ranks the
// static fallback set instead.
package pipeline

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"restaurant-scout/agent"
	"restaurant-scout/extract"
	"restaurant-scout/fallback"
	"restaurant-scout/metrics"
	"restaurant-scout/models"
	"restaurant-scout/profile"
	"restaurant-scout/scoring"
	"restaurant-scout/sources"
	"restaurant-scout/utils"
)

// Options bound a ranking run
type Options struct {
	Sources        []string
	SourceTimeout  time.Duration
	MaxConcurrency int
	FallbackCity   string
}

// Pipeline wires the collaborators behind a single Rank operation
type Pipeline struct {
	opts       Options
	extractor  agent.Extractor
	normalizer *extract.Normalizer
	profile    *profile.Profile
	logger     *utils.Logger

	buildURL  func(platform string, intent *models.StructuredIntent) (string, error)
	buildTask func(platform, pageURL string) string
}

// New creates a Pipeline. Zero-value options get sensible defaults.
func New(opts Options, extractor agent.Extractor, p *profile.Profile, logger *utils.Logger) *Pipeline {
	if len(opts.Sources) == 0 {
		opts.Sources = sources.Default()
	}
	if opts.SourceTimeout <= 0 {
		opts.SourceTimeout = 60 * time.Second
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = 3
	}
	if opts.FallbackCity == "" {
		opts.FallbackCity = p.Location.HomeCity
	}

	return &Pipeline{
		opts:       opts,
		extractor:  extractor,
		normalizer: extract.NewNormalizer(logger),
		profile:    p,
		logger:     logger,
		buildURL:   sources.BuildURL,
		buildTask:  sources.TaskDescription,
	}
}

// Rank runs the full pipeline for an intent and returns the top n candidates.
// It never fails for "no restaurants found": an empty merge is replaced by the
// fallback set, scored identically and tagged with the fallback source id.
func (p *Pipeline) Rank(ctx context.Context, intent *models.StructuredIntent, n int) *models.RankedResult {
	perSource := make([][]*models.RankedEntry, len(p.opts.Sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.MaxConcurrency)
	for i, src := range p.opts.Sources {
		i, src := i, src
		g.Go(func() error {
			perSource[i] = p.querySource(gctx, src, intent)
			return nil
		})
	}
	_ = g.Wait() // source tasks never return errors; failures become empty lists

	// Merge in configured source order so ties keep discovery order.
	var merged []*models.RankedEntry
	for _, entries := range perSource {
		merged = append(merged, entries...)
	}

	if len(merged) == 0 {
		p.logger.Warn("No candidates from any live source, using known restaurants for %s", p.opts.FallbackCity)
		metrics.FallbackActivations.Inc()
		for _, c := range fallback.Candidates(p.opts.FallbackCity, n) {
			merged = append(merged, &models.RankedEntry{
				Candidate: c,
				Score:     scoring.Score(c, p.profile, intent),
				Source:    fallback.SourceID,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score.Total > merged[j].Score.Total
	})
	if len(merged) > n {
		merged = merged[:n]
	}

	return &models.RankedResult{
		RequestID:   uuid.NewString(),
		Query:       intent.Query,
		GeneratedAt: time.Now(),
		Entries:     merged,
	}
}

// querySource runs extract → normalize → score for one source. Failures and
// timeouts degrade to zero candidates; partial text captured before a
// deadline is still normalized.
func (p *Pipeline) querySource(ctx context.Context, src string, intent *models.StructuredIntent) []*models.RankedEntry {
	start := time.Now()
	defer func() {
		metrics.SourceDuration.WithLabelValues(src).Observe(time.Since(start).Seconds())
	}()

	pageURL, err := p.buildURL(src, intent)
	if err != nil {
		p.logger.Warn("Skipping source %s: %v", src, err)
		metrics.SourceCalls.WithLabelValues(src, "failed").Inc()
		return nil
	}

	raw, err := p.extractor.Extract(ctx, pageURL, p.buildTask(src, pageURL), p.opts.SourceTimeout)
	switch {
	case err != nil && raw == "":
		p.logger.Warn("Source %s failed: %v", src, err)
		metrics.SourceCalls.WithLabelValues(src, "failed").Inc()
		return nil
	case err != nil:
		p.logger.Warn("Source %s returned partial text (%d chars): %v", src, len(raw), err)
		metrics.SourceCalls.WithLabelValues(src, "ok").Inc()
	case raw == "":
		metrics.SourceCalls.WithLabelValues(src, "empty").Inc()
		return nil
	default:
		metrics.SourceCalls.WithLabelValues(src, "ok").Inc()
	}

	candidates := p.normalizer.Normalize(raw, intent, p.profile)
	metrics.CandidatesExtracted.WithLabelValues(src).Add(float64(len(candidates)))
	p.logger.Info("Source %s: %d candidates", src, len(candidates))

	entries := make([]*models.RankedEntry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, &models.RankedEntry{
			Candidate: c,
			Score:     scoring.Score(c, p.profile, intent),
			Source:    src,
		})
	}
	return entries
}
