// Package wire provides dependency injection for the cropdb application.
// The database path comes from flags, so a Container is built per command
// invocation rather than as a process-wide singleton.
package wire

import (
	"database/sql"
	"io"
	"os"

	"github.com/example/cropdb/internal/adapters/eppo"
	"github.com/example/cropdb/internal/adapters/sqlite"
	"github.com/example/cropdb/internal/app"
	"github.com/example/cropdb/internal/db"
	"github.com/example/cropdb/internal/ports/primary"
)

// Options carries everything the container needs from flags and config.
type Options struct {
	DBPath      string
	EppoBaseURL string // empty uses the production EPPO endpoint
	EppoToken   string
	Out         io.Writer // progress output; nil uses stdout
}

// Container holds the wired services for one command invocation.
type Container struct {
	DB *sql.DB

	EppoVerify   primary.EppoVerifyService
	FocusImport  primary.FocusImportService
	Interception primary.InterceptionImportService
	PrimoImport  primary.PrimoImportService
	SwashImport  primary.SwashImportService
	Status       primary.StatusService
	RunLog       primary.RunLogService
}

// Build opens the database and wires repositories into services. The
// database file must already exist; init creates it.
func Build(opts Options) (*Container, error) {
	database, err := db.Open(opts.DBPath)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	baseURL := opts.EppoBaseURL
	if baseURL == "" {
		baseURL = eppo.DefaultBaseURL
	}

	// Repository adapters (secondary ports)
	cropRepo := sqlite.NewCropRepository(database)
	eppoRepo := sqlite.NewEppoCodeRepository(database)
	scenarioRepo := sqlite.NewScenarioRepository(database)
	focusCropRepo := sqlite.NewFocusCropRepository(database)
	commodityRepo := sqlite.NewCommodityRepository(database)
	runRepo := sqlite.NewRunRepository(database)
	statusRepo := sqlite.NewStatusRepository(database)

	taxonomy := eppo.NewClient(baseURL, opts.EppoToken)

	// Services (primary ports implementation)
	return &Container{
		DB:           database,
		EppoVerify:   app.NewEppoVerifyService(eppoRepo, taxonomy, runRepo, out),
		FocusImport:  app.NewFocusService(scenarioRepo, focusCropRepo, runRepo),
		Interception: app.NewInterceptionService(focusCropRepo, runRepo),
		PrimoImport:  app.NewPrimoService(cropRepo, commodityRepo, runRepo),
		SwashImport:  app.NewSwashService(focusCropRepo, scenarioRepo, runRepo),
		Status:       app.NewStatusService(statusRepo, runRepo),
		RunLog:       app.NewRunLogService(runRepo),
	}, nil
}

// Close releases the database connection.
func (c *Container) Close() error {
	return c.DB.Close()
}
