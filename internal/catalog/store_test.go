package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"stencil/internal/catalog"
	"stencil/internal/recording"
	"stencil/internal/testsupport"
)

func sampleResolution() *recording.Resolution {
	return &recording.Resolution{
		Coach:       "Jenny",
		Student:     "Arshiya Kapoor",
		Week:        recording.Week{Number: 16},
		SessionType: recording.SessionCoaching,
		Confidence: recording.Confidence{
			Coach:   50,
			Student: 50,
			Week:    50,
		},
		Overall:       100,
		MethodTrail:   []string{"pattern"},
		CoachSource:   recording.SourcePattern,
		StudentSource: recording.SourcePattern,
		WeekSource:    recording.SourcePattern,
	}
}

func sampleContext() *recording.Context {
	return &recording.Context{
		Topic:     "Jenny & Arshiya: Week 16",
		Timestamp: "2026-03-14",
		MeetingID: "810",
		UUID:      "abc123",
	}
}

func TestSaveAndFetchRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	rec, err := catalog.NewRecord("Coaching_Jenny_Arshiya_Wk16_2026-03-14", sampleResolution(), sampleContext(), "run-1")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}

	saved, err := store.Save(ctx, rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected record ID to be assigned")
	}
	if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set, got %#v", saved)
	}

	fetched, err := store.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched == nil || fetched.Identifier != "Coaching_Jenny_Arshiya_Wk16_2026-03-14" {
		t.Fatalf("unexpected fetched record: %#v", fetched)
	}
	if fetched.Coach != "Jenny" || fetched.Student != "Arshiya Kapoor" {
		t.Fatalf("unexpected participants: %#v", fetched)
	}
	if got := fetched.MethodTrail(); len(got) != 1 || got[0] != "pattern" {
		t.Fatalf("unexpected method trail: %v", got)
	}
	if fetched.Overall != 100 || fetched.CoachConfidence != 50 {
		t.Fatalf("unexpected confidence: %#v", fetched)
	}

	found, err := store.FindByIdentifier(ctx, "Coaching_Jenny_Arshiya_Wk16_2026-03-14")
	if err != nil {
		t.Fatalf("FindByIdentifier: %v", err)
	}
	if found == nil || found.ID != saved.ID {
		t.Fatalf("expected to find saved record, got %#v", found)
	}
}

func TestGetByIDMissingReturnsNil(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)

	rec, err := store.GetByID(context.Background(), 9999)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil for missing record, got %#v", rec)
	}
}

func TestReviewLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	rec, err := catalog.NewRecord("MISC_unknown_Unknown_WkUnknown_2026-03-14", sampleResolution(), sampleContext(), "run-1")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	rec.NeedsReview = true
	rec.ReviewReason = "overall confidence 0 below threshold 40"

	saved, err := store.Save(ctx, rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	pending, err := store.ListNeedsReview(ctx)
	if err != nil {
		t.Fatalf("ListNeedsReview: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != saved.ID {
		t.Fatalf("expected one review record, got %#v", pending)
	}

	if err := store.MarkReviewed(ctx, saved.ID); err != nil {
		t.Fatalf("MarkReviewed: %v", err)
	}

	pending, err = store.ListNeedsReview(ctx)
	if err != nil {
		t.Fatalf("ListNeedsReview after review: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no review records, got %#v", pending)
	}

	cleared, err := store.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if cleared.NeedsReview || cleared.ReviewReason != "" {
		t.Fatalf("expected review flag cleared, got %#v", cleared)
	}
}

func TestUpdatePersistsChanges(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	rec, err := catalog.NewRecord("Coaching_Jenny_Arshiya_Wk16_2026-03-14", sampleResolution(), sampleContext(), "run-1")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	saved, err := store.Save(ctx, rec)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	saved.Identifier = "Coaching_Jenny_Arshiya_Wk17_2026-03-21"
	saved.WeekToken = "Wk17"
	if err := store.Update(ctx, saved); err != nil {
		t.Fatalf("Update: %v", err)
	}

	fetched, err := store.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched.Identifier != "Coaching_Jenny_Arshiya_Wk17_2026-03-21" || fetched.WeekToken != "Wk17" {
		t.Fatalf("expected update to persist, got %#v", fetched)
	}
}

func TestListByRunAndClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec, err := catalog.NewRecord(fmt.Sprintf("Coaching_Jenny_Arshiya_Wk%02d_2026-03-14", i+1), sampleResolution(), sampleContext(), "run-a")
		if err != nil {
			t.Fatalf("NewRecord: %v", err)
		}
		if _, err := store.Save(ctx, rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	other, err := catalog.NewRecord("Coaching_Noor_Priya_Wk02_2026-03-14", sampleResolution(), sampleContext(), "run-b")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if _, err := store.Save(ctx, other); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runRecords, err := store.ListByRun(ctx, "run-a")
	if err != nil {
		t.Fatalf("ListByRun: %v", err)
	}
	if len(runRecords) != 3 {
		t.Fatalf("expected 3 records for run-a, got %d", len(runRecords))
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 records, got %d", len(all))
	}

	removed, err := store.Remove(ctx, all[0].ID)
	if err != nil || !removed {
		t.Fatalf("Remove: %v removed=%v", err, removed)
	}

	cleared, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if cleared != 3 {
		t.Fatalf("expected 3 cleared, got %d", cleared)
	}
}

func TestHealthSummary(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenCatalog(t, cfg)
	ctx := context.Background()

	known, err := catalog.NewRecord("Coaching_Jenny_Arshiya_Wk16_2026-03-14", sampleResolution(), sampleContext(), "run-1")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if _, err := store.Save(ctx, known); err != nil {
		t.Fatalf("Save: %v", err)
	}

	unresolved := sampleResolution()
	unresolved.Coach = recording.Unknown
	unresolved.Student = recording.Unknown
	rec, err := catalog.NewRecord("MISC_unknown_Unknown_WkUnknown_2026-03-14", unresolved, sampleContext(), "run-1")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	rec.NeedsReview = true
	if _, err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	summary, err := store.Health(ctx)
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if summary.Total != 2 || summary.NeedsReview != 1 {
		t.Fatalf("unexpected summary: %#v", summary)
	}
	if summary.UnknownCoach != 1 || summary.UnknownStudent != 1 {
		t.Fatalf("unexpected unknown counts: %#v", summary)
	}
}
