package in

import (
	"context"

	parserdto "tvp/internal/modules/parser/dto"
	parserin "tvp/internal/modules/parser/port/in"
)

type CLIHandler struct {
	usecase parserin.Usecase
}

func NewCLIHandler(usecase parserin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Parse(ctx context.Context, text string) (parserdto.SuggestionOutput, error) {
	return h.usecase.Parse(ctx, parserdto.ParseInput{Text: text})
}

func (h CLIHandler) Capture(ctx context.Context, text string) (parserdto.CaptureOutput, error) {
	return h.usecase.Capture(ctx, parserdto.ParseInput{Text: text})
}
