package in

import (
	"context"

	analyticsdto "tvp/internal/modules/analytics/dto"
	analyticsin "tvp/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Sessions(ctx context.Context) ([]analyticsdto.SessionOutput, error) {
	return h.usecase.Sessions(ctx)
}

func (h CLIHandler) Ratios(ctx context.Context, timeframe string) (analyticsdto.RatioOutput, error) {
	return h.usecase.Ratios(ctx, timeframe)
}

func (h CLIHandler) TimeSpent(ctx context.Context, timeframe, category, activity string) (analyticsdto.TimeSpentOutput, error) {
	return h.usecase.TimeSpent(ctx, analyticsdto.TimeSpentInput{Timeframe: timeframe, Category: category, Activity: activity})
}

func (h CLIHandler) Answer(ctx context.Context, query, timeframe string) (analyticsdto.AnswerOutput, error) {
	return h.usecase.Answer(ctx, analyticsdto.AnswerInput{Query: query, Timeframe: timeframe})
}
