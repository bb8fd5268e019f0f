package in

import (
	"context"

	"tvp/internal/modules/eventlog/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	ListStarts(ctx context.Context) ([]dto.EventOutput, error)
	ListWindow(ctx context.Context, lookbackDays int) ([]dto.EventOutput, error)
	ListGoals(ctx context.Context) ([]dto.EventOutput, error)
	ListDoneToday(ctx context.Context) ([]dto.EventOutput, error)
	ListByDate(ctx context.Context, date string) ([]dto.EventOutput, error)
	ListDates(ctx context.Context) ([]string, error)
	MasterLines(ctx context.Context) ([]string, error)
}
