package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tvp/internal/mcp"
	analyticsinadapter "tvp/internal/modules/analytics/adapter/in"
	analyticsoutadapter "tvp/internal/modules/analytics/adapter/out"
	analyticsin "tvp/internal/modules/analytics/port/in"
	analyticsservice "tvp/internal/modules/analytics/service"
	analyticsusecase "tvp/internal/modules/analytics/usecase"
	dailyinadapter "tvp/internal/modules/daily/adapter/in"
	dailyoutadapter "tvp/internal/modules/daily/adapter/out"
	dailyin "tvp/internal/modules/daily/port/in"
	dailyservice "tvp/internal/modules/daily/service"
	dailyusecase "tvp/internal/modules/daily/usecase"
	eventloginadapter "tvp/internal/modules/eventlog/adapter/in"
	eventlogoutadapter "tvp/internal/modules/eventlog/adapter/out"
	eventlogservice "tvp/internal/modules/eventlog/service"
	eventlogusecase "tvp/internal/modules/eventlog/usecase"
	kanbaninadapter "tvp/internal/modules/kanban/adapter/in"
	kanbanoutadapter "tvp/internal/modules/kanban/adapter/out"
	kanbanin "tvp/internal/modules/kanban/port/in"
	kanbanservice "tvp/internal/modules/kanban/service"
	kanbanusecase "tvp/internal/modules/kanban/usecase"
	parserinadapter "tvp/internal/modules/parser/adapter/in"
	parserin "tvp/internal/modules/parser/port/in"
	parserservice "tvp/internal/modules/parser/service"
	parserusecase "tvp/internal/modules/parser/usecase"
	plugininadapter "tvp/internal/modules/plugin/adapter/in"
	pluginoutadapter "tvp/internal/modules/plugin/adapter/out"
	pluginservice "tvp/internal/modules/plugin/service"
	pluginusecase "tvp/internal/modules/plugin/usecase"
	"tvp/internal/platform/clock"
	"tvp/internal/platform/config"
	"tvp/internal/platform/tx"
	uiapp "tvp/internal/ui/app"
)

// App wires every module's handler for the CLI, TUI and MCP surfaces.
type App struct {
	Config config.Config

	EventLogCLI  eventloginadapter.CLIHandler
	ParserCLI    parserinadapter.CLIHandler
	AnalyticsCLI analyticsinadapter.CLIHandler
	KanbanCLI    kanbaninadapter.CLIHandler
	DailyCLI     dailyinadapter.CLIHandler
	PluginCLI    plugininadapter.CLIHandler

	parserUC    parserin.Usecase
	analyticsUC analyticsin.Usecase
	kanbanUC    kanbanin.Usecase
	dailyUC     dailyin.Usecase

	closeStores func() error
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	eventStore, err := eventlogoutadapter.NewSQLiteEventStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open event store: %w", err)
	}
	logStore := eventlogoutadapter.NewFileLogStore(cfg.MasterLogPath)
	eventlogUC := eventlogusecase.NewInteractor(
		eventlogservice.NewEventLogService(clk, tx.NoopManager{}, eventStore, logStore))

	parserUC := parserusecase.NewInteractor(parserservice.NewParserService(clk), eventlogUC)

	analyticsUC := analyticsusecase.NewInteractor(
		analyticsservice.NewAnalyticsService(clk, analyticsoutadapter.NewEventlogSource(eventlogUC)))

	kanbanUC := kanbanusecase.NewInteractor(kanbanservice.NewKanbanService(
		kanbanoutadapter.NewEventlogSource(eventlogUC),
		kanbanoutadapter.NewTodoBacklogStore(cfg.TodoPath),
		kanbanoutadapter.NewVaultBoardStore(cfg.KanbanDir),
		cfg.LookbackDays,
	))

	dailyUC := dailyusecase.NewInteractor(dailyservice.NewDailyService(
		clk,
		dailyoutadapter.NewEventlogSource(eventlogUC),
		dailyoutadapter.NewVaultNoteStore(cfg.DailyDir),
	))

	pluginUC := pluginusecase.NewInteractor(pluginservice.NewPluginService(
		pluginoutadapter.NewManifestStore(cfg.PluginDir),
		pluginoutadapter.NewGRPCHost(),
	), analyticsUC)

	return &App{
		Config:       cfg,
		EventLogCLI:  eventloginadapter.NewCLIHandler(eventlogUC),
		ParserCLI:    parserinadapter.NewCLIHandler(parserUC),
		AnalyticsCLI: analyticsinadapter.NewCLIHandler(analyticsUC),
		KanbanCLI:    kanbaninadapter.NewCLIHandler(kanbanUC),
		DailyCLI:     dailyinadapter.NewCLIHandler(dailyUC),
		PluginCLI:    plugininadapter.NewCLIHandler(pluginUC),
		parserUC:     parserUC,
		analyticsUC:  analyticsUC,
		kanbanUC:     kanbanUC,
		dailyUC:      dailyUC,
		closeStores:  eventStore.Close,
	}, nil
}

// Close releases the sqlite handle.
func (a *App) Close() error {
	if a.closeStores == nil {
		return nil
	}
	return a.closeStores()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.analyticsUC, app.kanbanUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func RunMCP(app *App) error {
	server := mcp.NewServer(app.parserUC, app.analyticsUC, app.kanbanUC, app.dailyUC)
	return server.ServeStdio()
}
