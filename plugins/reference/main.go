package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	pluginrpc "tvp/internal/modules/plugin/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	return &pluginrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"command", "report"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.ListCommandsResponse, error) {
	return &pluginrpc.ListCommandsResponse{Commands: []pluginrpc.CommandDescriptor{
		{ID: "echo", Title: "Echo", Description: "Echoes provided input", Kind: "command", TimeoutMS: 2000},
		{ID: "weekly-report", Title: "Weekly Report", Description: "Renders a weekly report from the projection snapshot", Kind: "report", TimeoutMS: 2500},
	}}, nil
}

func (s *server) Execute(_ context.Context, in *pluginrpc.ExecuteRequest) (*pluginrpc.ExecuteResponse, error) {
	switch in.CommandID {
	case "echo":
		if strings.TrimSpace(in.InputJSON) == "" {
			return &pluginrpc.ExecuteResponse{Stdout: "echo", OutputJSON: `{"echo":""}`, ExitCode: 0}, nil
		}
		return &pluginrpc.ExecuteResponse{Stdout: in.InputJSON, OutputJSON: fmt.Sprintf(`{"echo":%q}`, in.InputJSON), ExitCode: 0}, nil
	case "weekly-report":
		return s.weeklyReport(in)
	default:
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
}

type projection struct {
	Timeframe string `json:"timeframe"`
	Ratio     struct {
		TotalSessions    int                `json:"TotalSessions"`
		Breakdown        map[string]int     `json:"Breakdown"`
		Ratios           map[string]float64 `json:"Ratios"`
		TheoryToPractice float64            `json:"TheoryToPractice"`
		NoData           bool               `json:"NoData"`
	} `json:"ratio"`
	TimeSpent struct {
		TotalMinutes int    `json:"TotalMinutes"`
		TotalDisplay string `json:"TotalDisplay"`
		SessionCount int    `json:"SessionCount"`
	} `json:"time_spent"`
}

func (s *server) weeklyReport(in *pluginrpc.ExecuteRequest) (*pluginrpc.ExecuteResponse, error) {
	var snapshot projection
	if strings.TrimSpace(in.InputJSON) == "" {
		return nil, fmt.Errorf("weekly-report needs a projection snapshot")
	}
	if err := json.Unmarshal([]byte(in.InputJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("parse projection snapshot: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weekly Report (%s)\n", snapshot.Timeframe)
	if snapshot.Ratio.NoData {
		b.WriteString("No sessions logged yet.\n")
	} else {
		fmt.Fprintf(&b, "Sessions: %d, time: %s\n", snapshot.Ratio.TotalSessions, snapshot.TimeSpent.TotalDisplay)
		fmt.Fprintf(&b, "Theory/practice ratio: %.2f\n", snapshot.Ratio.TheoryToPractice)
		for _, category := range []string{"THEORY", "PRACTICE", "TASK", "GAME"} {
			fmt.Fprintf(&b, "  %s: %d (%.1f%%)\n", category, snapshot.Ratio.Breakdown[category], snapshot.Ratio.Ratios[category])
		}
	}

	summary := map[string]any{
		"timeframe":      snapshot.Timeframe,
		"total_sessions": snapshot.Ratio.TotalSessions,
		"total_minutes":  snapshot.TimeSpent.TotalMinutes,
	}
	raw, _ := json.Marshal(summary)
	return &pluginrpc.ExecuteResponse{Stdout: b.String(), OutputJSON: string(raw), ExitCode: 0}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
