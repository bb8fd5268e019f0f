package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	analyticsdto "tvp/internal/modules/analytics/dto"
	analyticsin "tvp/internal/modules/analytics/port/in"
	dailyin "tvp/internal/modules/daily/port/in"
	kanbandto "tvp/internal/modules/kanban/dto"
	kanbanin "tvp/internal/modules/kanban/port/in"
	parserdto "tvp/internal/modules/parser/dto"
	parserin "tvp/internal/modules/parser/port/in"
)

type logActivityArgs struct {
	Text string `json:"text" jsonschema:"required,description=Natural language description of the activity"`
}

type askArgs struct {
	Query     string `json:"query" jsonschema:"required,description=Natural language question about logged activity"`
	Timeframe string `json:"timeframe" jsonschema:"description=Override timeframe: day week month or all"`
}

type ratioArgs struct {
	Timeframe string `json:"timeframe" jsonschema:"default=week,description=Timeframe: day week month or all"`
}

type timeSpentArgs struct {
	Timeframe string `json:"timeframe" jsonschema:"default=week,description=Timeframe: day week month or all"`
	Category  string `json:"category" jsonschema:"description=Filter by category: THEORY PRACTICE TASK or GAME"`
	Activity  string `json:"activity" jsonschema:"description=Filter by activity substring"`
}

type syncArgs struct {
	Mode string `json:"mode" jsonschema:"default=prod,enum=prod,enum=guide,description=Board sync mode"`
}

func registerTools(s *server.MCPServer, parser parserin.Usecase, analytics analyticsin.Usecase, kanban kanbanin.Usecase, daily dailyin.Usecase) {
	s.AddTool(mcp.NewTool("log_activity",
		mcp.WithDescription("Parse a natural language activity description and record it as a structured event. Returns the parsed suggestion, or a clarification request when the text is too vague to record."),
		mcp.WithInputSchema[logActivityArgs](),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args logActivityArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		out, err := parser.Capture(ctx, parserdto.ParseInput{Text: args.Text})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if out.Suggestion.NeedsClarification {
			return mcp.NewToolResultText(out.Suggestion.ClarificationMessage), nil
		}
		return jsonResult(out)
	})

	s.AddTool(mcp.NewTool("ask",
		mcp.WithDescription("Answer a natural language question about logged activity: ratios, time spent, recent sessions or a daily summary."),
		mcp.WithInputSchema[askArgs](),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args askArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		out, err := analytics.Answer(ctx, analyticsdto.AnswerInput{Query: args.Query, Timeframe: args.Timeframe})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if out.Type == "unknown" {
			return mcp.NewToolResultText(out.Message), nil
		}
		return jsonResult(out)
	})

	s.AddTool(mcp.NewTool("ratio",
		mcp.WithDescription("Theory to practice ratio and category breakdown for a timeframe."),
		mcp.WithInputSchema[ratioArgs](),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ratioArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		out, err := analytics.Ratios(ctx, args.Timeframe)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(out)
	})

	s.AddTool(mcp.NewTool("time_spent",
		mcp.WithDescription("Total time and per-activity rollup for a timeframe, optionally filtered by category or activity."),
		mcp.WithInputSchema[timeSpentArgs](),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args timeSpentArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		out, err := analytics.TimeSpent(ctx, analyticsdto.TimeSpentInput{
			Timeframe: args.Timeframe,
			Category:  args.Category,
			Activity:  args.Activity,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(out)
	})

	s.AddTool(mcp.NewTool("bridge_board",
		mcp.WithDescription("Current bridge projection: active task, paused tasks, captured reality and the next three suggestions."),
	), func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := kanban.Bridge(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(out)
	})

	s.AddTool(mcp.NewTool("goal_board",
		mcp.WithDescription("Goal events grouped into horizon sections: Short term, Medium Term, Long Term, Come back to."),
	), func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := kanban.Goals(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(out)
	})

	s.AddTool(mcp.NewTool("sync_boards",
		mcp.WithDescription("Sync the kanban task and goal boards in the vault from logged events."),
		mcp.WithInputSchema[syncArgs](),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args syncArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		out, err := kanban.Sync(ctx, kanbandto.SyncInput{Mode: args.Mode})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(out)
	})

	s.AddTool(mcp.NewTool("sync_daily_note",
		mcp.WithDescription("Regenerate today's daily note in the vault from logged events."),
	), func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := daily.SyncToday(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(out)
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
