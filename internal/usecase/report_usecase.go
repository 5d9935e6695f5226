package usecase

import (
	"context"

	"musika/internal/domain/entity"
)

// ReportOutput carries the rendered report text and how the query was read.
type ReportOutput struct {
	Kind   entity.ReportKind `json:"kind"`
	Report string            `json:"report"`
}

// ReportUsecase defines the interface for natural-language report generation.
type ReportUsecase interface {
	// GenerateReport interprets a free-text question, runs the matching
	// aggregate and renders a one-line answer. Unrecognized questions get a
	// static fallback message, not an error.
	GenerateReport(ctx context.Context, query string) (*ReportOutput, error)
}
