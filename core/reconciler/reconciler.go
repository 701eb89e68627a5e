// ABOUTME: Store reconciler runs one ingestion pass from load to persist
// ABOUTME: Merges new relevant candidates into the store without touching existing records

package reconciler

import (
	"context"
	"fmt"

	"github.com/xiajiun/article-scraping/core/domain"
	apperrors "github.com/xiajiun/article-scraping/core/errors"
	"github.com/xiajiun/article-scraping/core/interfaces"
	"github.com/xiajiun/article-scraping/core/relevance"
)

// CandidateSource discovers candidate articles
type CandidateSource interface {
	FetchCandidates(ctx context.Context) ([]domain.Article, error)
}

// ContentSource returns the full text of an article page, or "" on failure
type ContentSource interface {
	GetFullContent(ctx context.Context, url string) string
}

// Result summarizes one run
type Result struct {
	RunID      string
	Existing   int
	Candidates int
	Duplicates int
	Irrelevant int
	Added      int
	Persisted  bool
}

// String renders the outcome line logged at the end of a run
func (r *Result) String() string {
	return fmt.Sprintf("%d records added", r.Added)
}

// Reconciler merges newly discovered articles into the store
type Reconciler struct {
	store      interfaces.ArticleStore
	candidates CandidateSource
	details    ContentSource
	filter     *relevance.Filter
	logger     interfaces.Logger
	runID      string
	dryRun     bool
}

// Option configures a Reconciler
type Option func(*Reconciler)

// WithRunID tags log lines and the result with a run identifier
func WithRunID(id string) Option {
	return func(r *Reconciler) {
		r.runID = id
	}
}

// WithDryRun computes the additions without saving them
func WithDryRun() Option {
	return func(r *Reconciler) {
		r.dryRun = true
	}
}

// New creates a reconciler
func New(store interfaces.ArticleStore, candidates CandidateSource, details ContentSource, filter *relevance.Filter, logger interfaces.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:      store,
		candidates: candidates,
		details:    details,
		filter:     filter,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs one pass: load, discover, drop known URLs, enrich, merge and
// persist. The store is written at most once, at the end, and only when at
// least one record was added. Load and discovery failures abort the run
// before anything is written.
func (r *Reconciler) Run(ctx context.Context) (*Result, error) {
	result := &Result{RunID: r.runID}

	existing, err := r.store.Load(ctx)
	if err != nil {
		r.logger.Error("Failed to load existing articles", map[string]interface{}{
			"run_id": r.runID,
			"path":   r.store.Path(),
			"error":  err.Error(),
		})
		if apperrors.IsStoreLoad(err) {
			return result, err
		}
		return result, &apperrors.StoreLoadError{Path: r.store.Path(), Err: err}
	}
	store := domain.NewStore(existing)
	result.Existing = store.Len()
	r.logger.Info("Loaded existing articles", map[string]interface{}{
		"run_id":  r.runID,
		"path":    r.store.Path(),
		"records": result.Existing,
	})

	candidates, err := r.candidates.FetchCandidates(ctx)
	if err != nil {
		r.logger.Error("Aborting run, candidate discovery failed", map[string]interface{}{
			"run_id": r.runID,
			"error":  err.Error(),
		})
		return result, fmt.Errorf("discover candidates: %w", err)
	}
	result.Candidates = len(candidates)

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if store.Contains(candidate.URL) {
			result.Duplicates++
			r.logger.Debug("Skipping known article", map[string]interface{}{
				"run_id": r.runID,
				"url":    candidate.URL,
			})
			continue
		}

		body := r.details.GetFullContent(ctx, candidate.URL)
		candidate.ExtractedSentences = r.filter.ExtractSentences(body)
		if !candidate.IsRelevant() {
			result.Irrelevant++
			r.logger.Info("No keyword sentences found, dropping candidate", map[string]interface{}{
				"run_id": r.runID,
				"url":    candidate.URL,
			})
			continue
		}

		if store.Append(candidate) {
			result.Added++
		}
	}

	if result.Added == 0 {
		r.logger.Info("No new articles found related to the specified keywords", map[string]interface{}{
			"run_id":     r.runID,
			"candidates": result.Candidates,
			"duplicates": result.Duplicates,
			"irrelevant": result.Irrelevant,
		})
		return result, nil
	}

	store.SortByDate()

	if r.dryRun {
		r.logger.Info("Dry run, not saving", map[string]interface{}{
			"run_id": r.runID,
			"added":  result.Added,
		})
		return result, nil
	}

	if err := r.store.Save(ctx, store.Records()); err != nil {
		r.logger.Error("Failed to save articles", map[string]interface{}{
			"run_id": r.runID,
			"path":   r.store.Path(),
			"error":  err.Error(),
		})
		return result, fmt.Errorf("save articles: %w", err)
	}
	result.Persisted = true

	r.logger.Info("Added new articles to the file", map[string]interface{}{
		"run_id":  r.runID,
		"path":    r.store.Path(),
		"added":   result.Added,
		"records": store.Len(),
	})

	return result, nil
}
