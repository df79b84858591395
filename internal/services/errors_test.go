package services_test

import (
	"errors"
	"strings"
	"testing"

	"stencil/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrTransient, "catalog", "save", "insert failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"catalog", "save", "insert failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "ingest", "parse", "bad manifest", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestNeedsReviewClassification(t *testing.T) {
	validationErr := services.Wrap(services.ErrValidation, "identifier", "build", "invalid", nil)
	if !services.NeedsReview(validationErr) {
		t.Fatalf("expected review for validation error, got %v", validationErr)
	}

	notFoundErr := services.Wrap(services.ErrNotFound, "registry", "lookup", "no entry", nil)
	if !services.NeedsReview(notFoundErr) {
		t.Fatalf("expected review for not-found error, got %v", notFoundErr)
	}

	transientErr := services.Wrap(services.ErrTransient, "catalog", "open", "locked", errors.New("io"))
	if services.NeedsReview(transientErr) {
		t.Fatalf("expected hard failure for transient error, got %v", transientErr)
	}

	if services.NeedsReview(nil) {
		t.Fatal("expected nil error to not need review")
	}
}
