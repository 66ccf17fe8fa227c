package bootstrap

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"

	recordsinadapter "lectrack/internal/modules/records/adapter/in"
	recordsoutadapter "lectrack/internal/modules/records/adapter/out"
	recordsservice "lectrack/internal/modules/records/service"
	recordsusecase "lectrack/internal/modules/records/usecase"
	wizardinadapter "lectrack/internal/modules/wizard/adapter/in"
	wizardoutadapter "lectrack/internal/modules/wizard/adapter/out"
	wizardservice "lectrack/internal/modules/wizard/service"
	wizardusecase "lectrack/internal/modules/wizard/usecase"
	"lectrack/internal/platform/clock"
	"lectrack/internal/platform/config"
	"lectrack/internal/platform/id"
	"lectrack/internal/platform/logging"
	uiapp "lectrack/internal/ui/app"
)

type App struct {
	RecordsCLI recordsinadapter.CLIHandler
	WizardTUI  wizardinadapter.TUIHandler
	Logger     hclog.Logger

	closers []io.Closer
}

func New(cfg config.Config) (*App, error) {
	logger, logCloser, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	app := &App{Logger: logger, closers: []io.Closer{logCloser}}

	store, err := recordsoutadapter.NewSQLiteRecordStore(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new record store: %w", err)
	}
	app.closers = append([]io.Closer{store}, app.closers...)

	recordsUC := recordsusecase.NewInteractor(recordsservice.NewRecordService(
		store,
		recordsoutadapter.NewCSVExporter(),
		cfg.ExportPath,
		logger,
	))

	wizardSvc, err := wizardservice.NewWizardService(
		clock.SystemClock{},
		id.UUID{},
		wizardoutadapter.NewRecordsSinkAdapter(recordsUC),
		cfg.Groups,
		cfg.Report.KeepDraft,
		logger,
	)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new wizard: %w", err)
	}

	app.RecordsCLI = recordsinadapter.NewCLIHandler(recordsUC)
	app.WizardTUI = wizardinadapter.NewTUIHandler(wizardusecase.NewInteractor(wizardSvc))
	logger.Debug("app ready", "db", cfg.DBPath, "export", cfg.ExportPath, "groups", len(cfg.Groups))
	return app, nil
}

// Close releases the database and the log file, in that order.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.WizardTUI, app.RecordsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
