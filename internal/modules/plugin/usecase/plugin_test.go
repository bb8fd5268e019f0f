package usecase_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	analyticsdto "tvp/internal/modules/analytics/dto"
	"tvp/internal/modules/plugin/domain"
	"tvp/internal/modules/plugin/dto"
	"tvp/internal/modules/plugin/service"
	"tvp/internal/modules/plugin/usecase"
)

type fakeStore struct {
	manifests []domain.Manifest
}

func (s fakeStore) Load(context.Context) ([]domain.Manifest, error) {
	return s.manifests, nil
}

type fakeHost struct {
	commands []domain.CommandDescriptor
	lastReq  *domain.ExecuteRequest
}

func (*fakeHost) GetMetadata(context.Context, domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: "fake", Version: "1"}, nil
}
func (h *fakeHost) ListCommands(context.Context, domain.Manifest) ([]domain.CommandDescriptor, error) {
	return h.commands, nil
}
func (h *fakeHost) Execute(_ context.Context, _ domain.Manifest, req domain.ExecuteRequest) (domain.ExecuteResult, error) {
	h.lastReq = &req
	return domain.ExecuteResult{Stdout: "report", ExitCode: 0}, nil
}

type fakeAnalytics struct{}

func (fakeAnalytics) Sessions(context.Context) ([]analyticsdto.SessionOutput, error) {
	return nil, nil
}

func (fakeAnalytics) Ratios(_ context.Context, timeframe string) (analyticsdto.RatioOutput, error) {
	return analyticsdto.RatioOutput{
		Timeframe:     timeframe,
		TotalSessions: 4,
		Breakdown:     map[string]int{"THEORY": 2, "PRACTICE": 1, "TASK": 1, "GAME": 0},
		Ratios:        map[string]float64{"THEORY": 50, "PRACTICE": 25, "TASK": 25, "GAME": 0},
	}, nil
}

func (fakeAnalytics) TimeSpent(_ context.Context, input analyticsdto.TimeSpentInput) (analyticsdto.TimeSpentOutput, error) {
	return analyticsdto.TimeSpentOutput{Timeframe: input.Timeframe, TotalMinutes: 90, TotalDisplay: "1h 30m", SessionCount: 4}, nil
}

func (fakeAnalytics) Timeline(context.Context) (analyticsdto.TimelineOutput, error) {
	return analyticsdto.TimelineOutput{}, nil
}

func (fakeAnalytics) Summary(context.Context) (analyticsdto.SummaryOutput, error) {
	return analyticsdto.SummaryOutput{}, nil
}

func (fakeAnalytics) Answer(context.Context, analyticsdto.AnswerInput) (analyticsdto.AnswerOutput, error) {
	return analyticsdto.AnswerOutput{}, nil
}

func reportManifest(t *testing.T) domain.Manifest {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "plugin-bin")
	if err := os.WriteFile(binPath, []byte("binary"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}
	hash := sha256.Sum256([]byte("binary"))
	return domain.Manifest{
		Name:         "weekly",
		Version:      "1.0.0",
		Binary:       binPath,
		SHA256:       hex.EncodeToString(hash[:]),
		Enabled:      true,
		Capabilities: []domain.Capability{domain.CapabilityReport},
	}
}

func TestReportBuildsProjectionSnapshot(t *testing.T) {
	t.Parallel()
	manifest := reportManifest(t)
	host := &fakeHost{commands: []domain.CommandDescriptor{{ID: "weekly", Kind: domain.CommandKindReport}}}
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, host)
	uc := usecase.NewInteractor(svc, fakeAnalytics{})

	out, err := uc.Report(context.Background(), dto.ExecuteInput{
		PluginName: manifest.Name,
		CommandID:  "weekly",
		VaultPath:  "/vault",
		Cwd:        "/vault",
	})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if out.Stdout != "report" {
		t.Fatalf("stdout %q", out.Stdout)
	}
	if host.lastReq == nil {
		t.Fatal("plugin never executed")
	}
	if !strings.Contains(host.lastReq.InputJSON, `"timeframe":"week"`) {
		t.Fatalf("snapshot missing default timeframe: %s", host.lastReq.InputJSON)
	}
	if !strings.Contains(host.lastReq.InputJSON, `"TotalMinutes":90`) {
		t.Fatalf("snapshot missing time-spent projection: %s", host.lastReq.InputJSON)
	}
}

func TestReportKeepsCallerInputJSON(t *testing.T) {
	t.Parallel()
	manifest := reportManifest(t)
	host := &fakeHost{commands: []domain.CommandDescriptor{{ID: "weekly", Kind: domain.CommandKindReport}}}
	svc := service.NewPluginService(fakeStore{manifests: []domain.Manifest{manifest}}, host)
	uc := usecase.NewInteractor(svc, fakeAnalytics{})

	_, err := uc.Report(context.Background(), dto.ExecuteInput{
		PluginName: manifest.Name,
		CommandID:  "weekly",
		VaultPath:  "/vault",
		Cwd:        "/vault",
		InputJSON:  `{"custom":true}`,
	})
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if host.lastReq.InputJSON != `{"custom":true}` {
		t.Fatalf("caller input overwritten: %s", host.lastReq.InputJSON)
	}
}
