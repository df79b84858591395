package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"stencil/internal/catalog"
	"stencil/internal/config"
	"stencil/internal/identifier"
	"stencil/internal/logging"
	"stencil/internal/registry"
	"stencil/internal/resolve"
	"stencil/internal/services"
)

// Runner resolves manifest entries and persists them to the catalog. It holds
// registry handles rather than a fixed resolver: each run snapshots the
// current registries, so a caller may swap in freshly loaded tables between
// runs without affecting a run already in flight.
type Runner struct {
	cfg      *config.Config
	store    *catalog.Store
	coaches  *registry.Handle
	students *registry.Handle
	logger   *slog.Logger

	lockPath string
	lock     *flock.Flock
}

// Result summarizes a completed batch run.
type Result struct {
	RunID     string
	Processed int
	Flagged   int
	Failed    int
	Records   []*catalog.Record
}

// NewRunner constructs a batch runner.
func NewRunner(cfg *config.Config, store *catalog.Store, coaches, students *registry.Handle, logger *slog.Logger) (*Runner, error) {
	if cfg == nil || store == nil || coaches == nil || students == nil {
		return nil, errors.New("runner requires config, store, and registry handles")
	}
	lockPath := filepath.Join(cfg.Paths.DataDir, "ingest.lock")
	return &Runner{
		cfg:      cfg,
		store:    store,
		coaches:  coaches,
		students: students,
		logger:   logging.NewComponentLogger(logger, "ingest"),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

type workItem struct {
	index int
	entry Entry
}

type workOutcome struct {
	index  int
	record *catalog.Record
	err    error
}

// Run processes every entry in the manifest at path. The returned result
// preserves manifest order; per-entry failures are counted rather than
// aborting the run.
func (r *Runner) Run(ctx context.Context, manifestPath string) (*Result, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	ok, err := r.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire ingest lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another ingest run is already in progress")
	}
	defer func() {
		if unlockErr := r.lock.Unlock(); unlockErr != nil {
			r.logger.Warn("failed to release ingest lock", logging.Args(logging.Error(unlockErr))...)
		}
	}()

	resolver := resolve.New(r.coaches.Load(), r.students.Load(), resolve.Options{
		FuzzyThreshold:    r.cfg.Resolver.FuzzyThreshold,
		CoachEmailDomains: r.cfg.Resolver.CoachEmailDomains,
		CoachKeywords:     r.cfg.Resolver.CoachKeywords,
	}, r.logger)

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger)
	logger.Info("batch run started",
		logging.Args(
			logging.String("manifest", manifestPath),
			logging.Int("recordings", len(manifest.Recordings)),
		)...)

	workers := r.cfg.Resolver.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(manifest.Recordings) {
		workers = len(manifest.Recordings)
	}

	items := make(chan workItem)
	outcomes := make(chan workOutcome, len(manifest.Recordings))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range items {
				rec, err := r.processEntry(ctx, resolver, item.entry, runID)
				outcomes <- workOutcome{index: item.index, record: rec, err: err}
			}
		}()
	}

	go func() {
		defer close(items)
		for i, entry := range manifest.Recordings {
			select {
			case items <- workItem{index: i, entry: entry}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	collected := make([]workOutcome, 0, len(manifest.Recordings))
	for outcome := range outcomes {
		collected = append(collected, outcome)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })

	result := &Result{RunID: runID}
	for _, outcome := range collected {
		if outcome.err != nil {
			result.Failed++
			logger.Error("recording failed",
				logging.Args(
					logging.Int("entry", outcome.index),
					logging.Error(outcome.err),
				)...)
			continue
		}
		result.Processed++
		if outcome.record.NeedsReview {
			result.Flagged++
		}
		result.Records = append(result.Records, outcome.record)
	}

	logger.Info("batch run finished",
		logging.Args(
			logging.Int("processed", result.Processed),
			logging.Int("flagged", result.Flagged),
			logging.Int("failed", result.Failed),
		)...)
	return result, nil
}

func (r *Runner) processEntry(ctx context.Context, resolver *resolve.Resolver, entry Entry, runID string) (*catalog.Record, error) {
	rc := entry.Context()
	res := resolver.Resolve(rc)
	id := identifier.Build(res, rc.Timestamp, rc.MeetingID, rc.UUID)

	rec, err := catalog.NewRecord(id.String(), &res, rc, runID)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "ingest", "build record", entry.Topic, err)
	}
	if res.Overall < r.cfg.Resolver.ReviewThreshold {
		rec.NeedsReview = true
		rec.ReviewReason = fmt.Sprintf("overall confidence %d below threshold %d", res.Overall, r.cfg.Resolver.ReviewThreshold)
	}

	saved, err := r.store.Save(ctx, rec)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "ingest", "save record", id.String(), err)
	}
	return saved, nil
}
