package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	analyticsdto "tvp/internal/modules/analytics/dto"
	analyticsin "tvp/internal/modules/analytics/port/in"
	"tvp/internal/modules/plugin/dto"
	pluginin "tvp/internal/modules/plugin/port/in"
	"tvp/internal/modules/plugin/service"
)

type Interactor struct {
	svc       *service.PluginService
	analytics analyticsin.Usecase
}

func NewInteractor(svc *service.PluginService, analytics analyticsin.Usecase) pluginin.Usecase {
	return &Interactor{svc: svc, analytics: analytics}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error) {
	return i.svc.ListCommands(ctx, pluginName)
}

func (i *Interactor) Execute(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	return i.svc.Execute(ctx, input)
}

// Report feeds report plugins a projection snapshot. When the caller
// supplies no InputJSON the snapshot is built from current analytics.
func (i *Interactor) Report(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	if input.InputJSON == "" {
		snapshot, err := i.projectionSnapshot(ctx, input.Timeframe)
		if err != nil {
			return dto.ExecuteOutput{}, err
		}
		input.InputJSON = snapshot
	}
	return i.svc.Report(ctx, input)
}

func (i *Interactor) projectionSnapshot(ctx context.Context, timeframe string) (string, error) {
	if timeframe == "" {
		timeframe = "week"
	}
	ratio, err := i.analytics.Ratios(ctx, timeframe)
	if err != nil {
		return "", fmt.Errorf("build ratio projection: %w", err)
	}
	timeSpent, err := i.analytics.TimeSpent(ctx, analyticsdto.TimeSpentInput{Timeframe: timeframe})
	if err != nil {
		return "", fmt.Errorf("build time-spent projection: %w", err)
	}
	payload := struct {
		Timeframe string                       `json:"timeframe"`
		Ratio     analyticsdto.RatioOutput     `json:"ratio"`
		TimeSpent analyticsdto.TimeSpentOutput `json:"time_spent"`
	}{
		Timeframe: timeframe,
		Ratio:     ratio,
		TimeSpent: timeSpent,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode projection: %w", err)
	}
	return string(data), nil
}
