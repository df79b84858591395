package services_test

import (
	"context"
	"testing"

	"stencil/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRecordingID(ctx, 42)
	ctx = services.WithStage(ctx, "participants")
	ctx = services.WithRunID(ctx, "run-123")

	if id, ok := services.RecordingIDFromContext(ctx); !ok || id != 42 {
		t.Fatalf("unexpected recording id: %v %v", id, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "participants" {
		t.Fatalf("unexpected stage: %v %v", stage, ok)
	}
	if rid, ok := services.RunIDFromContext(ctx); !ok || rid != "run-123" {
		t.Fatalf("unexpected run id: %v %v", rid, ok)
	}
}

func TestStageBlankPreservesContext(t *testing.T) {
	ctx := services.WithStage(context.Background(), "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected no stage value")
	}
}

func TestMissingValuesReportAbsence(t *testing.T) {
	ctx := context.Background()
	if _, ok := services.RecordingIDFromContext(ctx); ok {
		t.Fatal("expected no recording id")
	}
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id")
	}
}
