package usecase

import (
	"context"

	eventlogdto "tvp/internal/modules/eventlog/dto"
	eventlogin "tvp/internal/modules/eventlog/port/in"
	"tvp/internal/modules/parser/domain"
	"tvp/internal/modules/parser/dto"
	parserin "tvp/internal/modules/parser/port/in"
	"tvp/internal/modules/parser/service"
)

type Interactor struct {
	svc      *service.ParserService
	eventlog eventlogin.Usecase
}

func NewInteractor(svc *service.ParserService, eventlog eventlogin.Usecase) parserin.Usecase {
	return &Interactor{svc: svc, eventlog: eventlog}
}

func (i *Interactor) Parse(ctx context.Context, input dto.ParseInput) (dto.SuggestionOutput, error) {
	suggestion, timestamp := i.svc.Suggest(input.Text)
	return toOutput(suggestion, timestamp), nil
}

func (i *Interactor) Capture(ctx context.Context, input dto.ParseInput) (dto.CaptureOutput, error) {
	suggestion, timestamp := i.svc.Suggest(input.Text)
	out := dto.CaptureOutput{Suggestion: toOutput(suggestion, timestamp)}
	if suggestion.NeedsClarification {
		return out, nil
	}
	recorded, err := i.eventlog.Record(ctx, eventlogdto.RecordInput{
		Timestamp: timestamp,
		EventType: suggestion.Action,
		Category:  suggestion.Category,
		Activity:  suggestion.Activity,
		Context:   suggestion.Context,
		RawInput:  suggestion.RawInput,
	})
	if err != nil {
		return dto.CaptureOutput{}, err
	}
	out.Recorded = true
	out.Seq = recorded.Seq
	out.Line = recorded.Line
	return out, nil
}

func toOutput(s domain.Suggestion, timestamp string) dto.SuggestionOutput {
	return dto.SuggestionOutput{
		Action:               s.Action,
		Category:             s.Category,
		Activity:             s.Activity,
		Context:              s.Context,
		RawInput:             s.RawInput,
		Confidence:           s.Confidence,
		Method:               s.Method,
		NeedsClarification:   s.NeedsClarification,
		ClarificationMessage: s.ClarificationMessage,
		FormattedEvent:       s.FormattedEvent,
		Timestamp:            timestamp,
	}
}
