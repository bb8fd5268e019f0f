package usecase

import (
	"context"

	"tvp/internal/modules/analytics/domain"
	"tvp/internal/modules/analytics/dto"
	analyticsin "tvp/internal/modules/analytics/port/in"
	"tvp/internal/modules/analytics/service"
)

type Interactor struct {
	svc *service.AnalyticsService
}

func NewInteractor(svc *service.AnalyticsService) analyticsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Sessions(ctx context.Context) ([]dto.SessionOutput, error) {
	return toSessionOutputs(i.svc.Sessions(ctx)), nil
}

func (i *Interactor) Ratios(ctx context.Context, timeframe string) (dto.RatioOutput, error) {
	return toRatioOutput(i.svc.Ratios(ctx, timeframe)), nil
}

func (i *Interactor) TimeSpent(ctx context.Context, input dto.TimeSpentInput) (dto.TimeSpentOutput, error) {
	return toTimeSpentOutput(i.svc.TimeSpent(ctx, input.Timeframe, input.Category, input.Activity)), nil
}

func (i *Interactor) Timeline(ctx context.Context) (dto.TimelineOutput, error) {
	return toTimelineOutput(i.svc.Timeline(ctx)), nil
}

func (i *Interactor) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	return toSummaryOutput(i.svc.Summary(ctx)), nil
}

func (i *Interactor) Answer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error) {
	timeframe := input.Timeframe
	if timeframe == "" {
		timeframe = "week"
	}
	answer := i.svc.AnswerQuery(ctx, input.Query, timeframe)
	out := dto.AnswerOutput{Type: answer.Type, Message: answer.Message}
	switch answer.Type {
	case "ratio":
		ratio := toRatioOutput(answer.Ratio)
		out.Ratio = &ratio
	case "time_spent":
		spent := toTimeSpentOutput(answer.TimeSpent)
		out.TimeSpent = &spent
	case "timeline":
		timeline := toTimelineOutput(answer.Timeline)
		out.Timeline = &timeline
	case "summary":
		summary := toSummaryOutput(answer.Summary)
		out.Summary = &summary
	}
	return out, nil
}

func toSessionOutputs(sessions []domain.Session) []dto.SessionOutput {
	outputs := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		outputs = append(outputs, dto.SessionOutput{
			Category:    s.Category,
			Activity:    s.Activity,
			StartStamp:  s.StartStamp,
			EndStamp:    s.EndStamp,
			DurationMin: s.DurationMin,
			HasDuration: s.HasDuration,
			Display:     s.Display,
			Active:      s.Active,
		})
	}
	return outputs
}

func toRatioOutput(r domain.RatioReport) dto.RatioOutput {
	return dto.RatioOutput{
		Timeframe:        r.Timeframe,
		TotalSessions:    r.TotalSessions,
		Breakdown:        r.Breakdown,
		Ratios:           r.Ratios,
		TheoryToPractice: r.TheoryToPractice,
		NoData:           r.NoData,
	}
}

func toTimeSpentOutput(r domain.TimeSpentReport) dto.TimeSpentOutput {
	rollups := make([]dto.ActivityRollupOutput, 0, len(r.ByActivity))
	for _, entry := range r.ByActivity {
		rollups = append(rollups, dto.ActivityRollupOutput{
			Activity: entry.Activity,
			Minutes:  entry.Minutes,
			Display:  entry.Display,
			Sessions: entry.Sessions,
		})
	}
	return dto.TimeSpentOutput{
		Timeframe:    r.Timeframe,
		Category:     r.Category,
		Activity:     r.Activity,
		TotalMinutes: r.TotalMinutes,
		TotalDisplay: r.TotalDisplay,
		SessionCount: r.SessionCount,
		ByActivity:   rollups,
	}
}

func toTimelineOutput(t service.Timeline) dto.TimelineOutput {
	return dto.TimelineOutput{RecentSessions: toSessionOutputs(t.Recent), Count: t.Count}
}

func toSummaryOutput(s service.Summary) dto.SummaryOutput {
	return dto.SummaryOutput{Activities: s.Activities, TotalActivities: len(s.Activities)}
}
