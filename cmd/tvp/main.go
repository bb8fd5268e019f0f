package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tvp/internal/bootstrap"
	analyticsdto "tvp/internal/modules/analytics/dto"
	eventlogdto "tvp/internal/modules/eventlog/dto"
	plugindto "tvp/internal/modules/plugin/dto"
	"tvp/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vaultPath string

	root := &cobra.Command{
		Use:           "tvp",
		Short:         "Activity logging and vault projection engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&vaultPath, "vault", ".", "Obsidian vault path")

	root.AddCommand(newLogCmd(&vaultPath))
	root.AddCommand(newParseCmd(&vaultPath))
	root.AddCommand(newRecordCmd(&vaultPath))
	root.AddCommand(newQueryCmd(&vaultPath))
	root.AddCommand(newRatioCmd(&vaultPath))
	root.AddCommand(newTimeSpentCmd(&vaultPath))
	root.AddCommand(newSessionsCmd(&vaultPath))
	root.AddCommand(newEventsCmd(&vaultPath))
	root.AddCommand(newSyncCmd(&vaultPath))
	root.AddCommand(newBoardCmd(&vaultPath))
	root.AddCommand(newGoalsCmd(&vaultPath))
	root.AddCommand(newPluginCmd(&vaultPath))
	root.AddCommand(newMCPCmd(&vaultPath))
	root.AddCommand(newTUICmd(&vaultPath))
	return root
}

func loadApp(vaultPath string) (*bootstrap.App, error) {
	cfg, err := config.New(vaultPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newLogCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "log <text>...",
		Short: "Parse natural language and record an activity event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ParserCLI.Capture(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if out.Suggestion.NeedsClarification {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Suggestion.ClarificationMessage)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded #%d: %s\n", out.Seq, out.Line)
			return nil
		},
	}
}

func newParseCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>...",
		Short: "Show how a phrase would be parsed, without recording",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.ParserCLI.Parse(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if out.NeedsClarification {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.ClarificationMessage)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "action=%s category=%s activity=%s", out.Action, out.Category, out.Activity)
			if out.Context != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " context=%q", out.Context)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nline: %s\n", out.FormattedEvent)
			return nil
		},
	}
}

func newRecordCmd(vaultPath *string) *cobra.Command {
	var eventType, category, activity, eventContext, raw string
	record := &cobra.Command{
		Use:   "record --type <start|done|note> --category <cat> --activity <name>",
		Short: "Record a structured event directly, bypassing the parser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(activity) == "" {
				return fmt.Errorf("--activity is required")
			}
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.EventLogCLI.Record(context.Background(), eventType, category, activity, eventContext, raw)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded #%d: %s\n", out.Seq, out.Line)
			return nil
		},
	}
	record.Flags().StringVar(&eventType, "type", "start", "event type: start|done|note")
	record.Flags().StringVar(&category, "category", "TASK", "category: THEORY|PRACTICE|TASK|GAME|GOAL")
	record.Flags().StringVar(&activity, "activity", "", "activity name")
	record.Flags().StringVar(&eventContext, "context", "", "optional context")
	record.Flags().StringVar(&raw, "raw", "", "original raw input")
	return record
}

func newQueryCmd(vaultPath *string) *cobra.Command {
	var timeframe string
	query := &cobra.Command{
		Use:   "query <question>...",
		Short: "Answer a natural language question about logged activity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AnalyticsCLI.Answer(context.Background(), strings.Join(args, " "), timeframe)
			if err != nil {
				return err
			}
			printAnswer(cmd, out)
			return nil
		},
	}
	query.Flags().StringVar(&timeframe, "timeframe", "", "override timeframe: day|week|month|all")
	return query
}

func printAnswer(cmd *cobra.Command, out analyticsdto.AnswerOutput) {
	w := cmd.OutOrStdout()
	switch out.Type {
	case "ratio":
		printRatio(cmd, *out.Ratio)
	case "time_spent":
		printTimeSpent(cmd, *out.TimeSpent)
	case "timeline":
		for _, s := range out.Timeline.RecentSessions {
			printSession(cmd, s)
		}
		_, _ = fmt.Fprintf(w, "%d sessions total\n", out.Timeline.Count)
	case "summary":
		if out.Summary.TotalActivities == 0 {
			_, _ = fmt.Fprintln(w, "nothing logged yet")
			return
		}
		_, _ = fmt.Fprintf(w, "worked on: %s\n", strings.Join(out.Summary.Activities, ", "))
	default:
		_, _ = fmt.Fprintln(w, out.Message)
	}
}

func printRatio(cmd *cobra.Command, ratio analyticsdto.RatioOutput) {
	w := cmd.OutOrStdout()
	if ratio.NoData {
		_, _ = fmt.Fprintf(w, "no data for timeframe %s\n", ratio.Timeframe)
		return
	}
	_, _ = fmt.Fprintf(w, "timeframe=%s sessions=%d theory/practice=%.2f\n", ratio.Timeframe, ratio.TotalSessions, ratio.TheoryToPractice)
	for _, category := range []string{"THEORY", "PRACTICE", "TASK", "GAME"} {
		_, _ = fmt.Fprintf(w, "  %-9s %3d  %5.1f%%\n", category, ratio.Breakdown[category], ratio.Ratios[category])
	}
}

func printTimeSpent(cmd *cobra.Command, spent analyticsdto.TimeSpentOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "timeframe=%s total=%s sessions=%d\n", spent.Timeframe, spent.TotalDisplay, spent.SessionCount)
	for _, rollup := range spent.ByActivity {
		_, _ = fmt.Fprintf(w, "  %-20s %4dm  %d sessions\n", rollup.Display, rollup.Minutes, rollup.Sessions)
	}
}

func printSession(cmd *cobra.Command, s analyticsdto.SessionOutput) {
	w := cmd.OutOrStdout()
	marker := " "
	if s.Active {
		marker = "●"
	}
	duration := "-"
	if s.HasDuration {
		duration = s.Display
	}
	_, _ = fmt.Fprintf(w, "%s %-9s %-20s %-10s %s\n", marker, s.Category, s.Activity, duration, s.StartStamp)
}

func newRatioCmd(vaultPath *string) *cobra.Command {
	var timeframe string
	ratio := &cobra.Command{
		Use:   "ratio",
		Short: "Theory to practice ratio for a timeframe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AnalyticsCLI.Ratios(context.Background(), timeframe)
			if err != nil {
				return err
			}
			printRatio(cmd, out)
			return nil
		},
	}
	ratio.Flags().StringVar(&timeframe, "timeframe", "week", "timeframe: day|week|month|all")
	return ratio
}

func newTimeSpentCmd(vaultPath *string) *cobra.Command {
	var timeframe, category, activity string
	spent := &cobra.Command{
		Use:   "timespent",
		Short: "Time spent per activity for a timeframe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AnalyticsCLI.TimeSpent(context.Background(), timeframe, category, activity)
			if err != nil {
				return err
			}
			printTimeSpent(cmd, out)
			return nil
		},
	}
	spent.Flags().StringVar(&timeframe, "timeframe", "week", "timeframe: day|week|month|all")
	spent.Flags().StringVar(&category, "category", "", "filter by category")
	spent.Flags().StringVar(&activity, "activity", "", "filter by activity substring")
	return spent
}

func newSessionsCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List sessions derived from start events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			sessions, err := app.AnalyticsCLI.Sessions(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				printSession(cmd, s)
			}
			return nil
		},
	}
}

func newEventsCmd(vaultPath *string) *cobra.Command {
	var days int
	var date string
	events := &cobra.Command{
		Use:   "events",
		Short: "List raw events from the store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			var list []eventlogdto.EventOutput
			if date != "" {
				list, err = app.EventLogCLI.ListByDate(ctx, date)
			} else {
				list, err = app.EventLogCLI.ListWindow(ctx, days)
			}
			if err != nil {
				return err
			}
			if len(list) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no events")
				return nil
			}
			for _, e := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "#%d\t%s\t%s\t%s\t%s\n", e.Seq, e.Timestamp, e.EventType, e.Category, e.Activity)
			}
			return nil
		},
	}
	events.Flags().IntVar(&days, "days", 7, "lookback window in days")
	events.Flags().StringVar(&date, "date", "", "exact date (YYYY-MM-DD), overrides --days")
	return events
}

func newSyncCmd(vaultPath *string) *cobra.Command {
	sync := &cobra.Command{Use: "sync", Short: "Project events into vault markdown"}

	sync.AddCommand(&cobra.Command{
		Use:   "today",
		Short: "Regenerate today's daily note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.DailyCLI.SyncToday(context.Background())
			if err != nil {
				return err
			}
			for _, path := range out.Updated {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", path)
			}
			return nil
		},
	})

	sync.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Regenerate daily notes for every logged date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.DailyCLI.SyncAll(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %d notes\n", len(out.Updated))
			return nil
		},
	})

	var mode string
	kanban := &cobra.Command{
		Use:   "kanban",
		Short: "Sync task and goal boards from events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.KanbanCLI.Sync(context.Background(), mode)
			if err != nil {
				return err
			}
			for _, path := range out.Updated {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", path)
			}
			return nil
		},
	}
	kanban.Flags().StringVar(&mode, "mode", "prod", "sync mode: prod|guide")
	sync.AddCommand(kanban)

	return sync
}

func newBoardCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the bridge projection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.KanbanCLI.Bridge(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printColumn(w, "Now", out.Now)
			printColumn(w, "Paused", out.Paused)
			printColumn(w, "Captured from Reality", out.Captured)
			printColumn(w, "Next 3", out.Next)
			return nil
		},
	}
}

func newGoalsCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "goals",
		Short: "Show goal events grouped by horizon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.KanbanCLI.Goals(context.Background())
			if err != nil {
				return err
			}
			for _, section := range out.Order {
				printColumn(cmd.OutOrStdout(), section, out.Sections[section])
			}
			return nil
		},
	}
}

func printColumn(w io.Writer, header string, items []string) {
	_, _ = fmt.Fprintf(w, "%s:\n", header)
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "  (empty)")
		return
	}
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "  %s\n", item)
	}
}

func newPluginCmd(vaultPath *string) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Plugin host commands"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List installed plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			plugins, err := app.PluginCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins installed")
				return nil
			}
			for _, p := range plugins {
				state := "disabled"
				if p.Enabled {
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.Name, p.Version, state, strings.Join(p.Capabilities, ","))
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check plugin manifests, binaries and checksums",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			results, err := app.PluginCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			for _, r := range results {
				status := "ok"
				if r.Error != "" {
					status = r.Error
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tbinary=%t checksum=%t metadata=%t\t%s\n", r.Name, r.BinaryReachable, r.ChecksumValid, r.MetadataOK, status)
			}
			return nil
		},
	})

	var commandsPlugin string
	commands := &cobra.Command{
		Use:   "commands --plugin <name>",
		Short: "List commands exposed by a plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(commandsPlugin) == "" {
				return fmt.Errorf("--plugin is required")
			}
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			list, err := app.PluginCLI.ListCommands(context.Background(), commandsPlugin)
			if err != nil {
				return err
			}
			for _, c := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", c.ID, c.Kind, c.Title, c.Description)
			}
			return nil
		},
	}
	commands.Flags().StringVar(&commandsPlugin, "plugin", "", "plugin name")
	plugin.AddCommand(commands)

	var execPlugin, execCommand, execInputJSON string
	execCmd := &cobra.Command{
		Use:   "exec --plugin <name> --command <id>",
		Short: "Execute a command-capability plugin command",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(execPlugin) == "" || strings.TrimSpace(execCommand) == "" {
				return fmt.Errorf("--plugin and --command are required")
			}
			if err := validateJSONInput(execInputJSON); err != nil {
				return err
			}
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.PluginCLI.Execute(context.Background(), plugindto.ExecuteInput{
				PluginName: execPlugin,
				CommandID:  execCommand,
				InputJSON:  execInputJSON,
				VaultPath:  app.Config.VaultPath,
				DBPath:     app.Config.DBPath,
				Cwd:        app.Config.VaultPath,
			})
			if err != nil {
				return err
			}
			printExecuteOutput(cmd, out)
			return nil
		},
	}
	execCmd.Flags().StringVar(&execPlugin, "plugin", "", "plugin name")
	execCmd.Flags().StringVar(&execCommand, "command", "", "command id")
	execCmd.Flags().StringVar(&execInputJSON, "input-json", "", "JSON input payload")
	plugin.AddCommand(execCmd)

	var reportPlugin, reportCommand, reportTimeframe string
	report := &cobra.Command{
		Use:   "report --plugin <name> --command <id>",
		Short: "Run a report plugin against the current projection snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(reportPlugin) == "" || strings.TrimSpace(reportCommand) == "" {
				return fmt.Errorf("--plugin and --command are required")
			}
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.PluginCLI.Report(context.Background(), plugindto.ExecuteInput{
				PluginName: reportPlugin,
				CommandID:  reportCommand,
				Timeframe:  reportTimeframe,
				VaultPath:  app.Config.VaultPath,
				DBPath:     app.Config.DBPath,
				Cwd:        app.Config.VaultPath,
			})
			if err != nil {
				return err
			}
			printExecuteOutput(cmd, out)
			return nil
		},
	}
	report.Flags().StringVar(&reportPlugin, "plugin", "", "plugin name")
	report.Flags().StringVar(&reportCommand, "command", "", "command id")
	report.Flags().StringVar(&reportTimeframe, "timeframe", "week", "projection timeframe")
	plugin.AddCommand(report)

	return plugin
}

func printExecuteOutput(cmd *cobra.Command, out plugindto.ExecuteOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plugin=%s command=%s exit=%d\n", out.PluginName, out.CommandID, out.ExitCode)
	if strings.TrimSpace(out.Stdout) != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Stdout)
	}
	if strings.TrimSpace(out.Stderr) != "" {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), out.Stderr)
	}
	if strings.TrimSpace(out.OutputJSON) != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.OutputJSON)
	}
}

func validateJSONInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if !json.Valid([]byte(input)) {
		return fmt.Errorf("--input-json must be valid JSON")
	}
	return nil
}

func newMCPCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the engine over MCP on stdio",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunMCP(app)
		},
	}
}

func newTUICmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the activity dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}
