package in

import (
	"context"

	"tvp/internal/modules/parser/dto"
)

type Usecase interface {
	// Parse suggests a structured event without recording anything.
	Parse(ctx context.Context, input dto.ParseInput) (dto.SuggestionOutput, error)
	// Capture parses and records in one step. A suggestion that needs
	// clarification is returned unrecorded.
	Capture(ctx context.Context, input dto.ParseInput) (dto.CaptureOutput, error)
}
