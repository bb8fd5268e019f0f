package in

import (
	"context"

	"tvp/internal/modules/analytics/dto"
)

type Usecase interface {
	Sessions(ctx context.Context) ([]dto.SessionOutput, error)
	Ratios(ctx context.Context, timeframe string) (dto.RatioOutput, error)
	TimeSpent(ctx context.Context, input dto.TimeSpentInput) (dto.TimeSpentOutput, error)
	Timeline(ctx context.Context) (dto.TimelineOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Answer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error)
}
