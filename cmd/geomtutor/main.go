package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"geomtutor/internal/config"
	"geomtutor/internal/controllers"
	"geomtutor/internal/logger"
	"geomtutor/internal/models"
	"geomtutor/internal/ontology"
	"geomtutor/internal/services"
	"geomtutor/internal/views"
)

const (
	AppName    = "Geometry Area Tutor"
	AppID      = "org.geomtutor.app"
	AppVersion = "1.0.0"
)

// Application wires the tutoring components together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	catalog    *models.ShapeCatalog
	session    *services.Session
	controller *controllers.MainController
	view       *views.MainView

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	var (
		configFile   string
		ontologyPath string
		logLevel     string
	)

	rootCmd := &cobra.Command{
		Use:   "geomtutor",
		Short: "Desktop tutor for 2D-geometry area computation",
		Long: "geomtutor generates practice problems from a shape ontology, " +
			"checks numeric answers against tolerance bands and gives " +
			"formula-based feedback.",
		Version:       AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if ontologyPath != "" {
				cfg.OntologyPath = ontologyPath
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			application := NewApplication(ctx, cfg)
			setupGracefulShutdown(application, cancel)
			return application.Run()
		},
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "path to an optional YAML config file")
	rootCmd.Flags().StringVar(&ontologyPath, "ontology", "", "path to the OWL ontology file (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewApplication initializes all components with dependency injection.
func NewApplication(ctx context.Context, cfg *config.Config) *Application {
	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))

	appLogger.Info("app", "application starting", map[string]interface{}{
		"version":  AppVersion,
		"ontology": cfg.OntologyPath,
	})

	linear := models.ParameterRange{Min: cfg.Params.LinearMin, Max: cfg.Params.LinearMax}
	radius := models.ParameterRange{Min: cfg.Params.RadiusMin, Max: cfg.Params.RadiusMax}

	loader := ontology.NewLoader(appLogger, linear, radius)
	catalog := models.NewShapeCatalog(loader.Load(cfg.OntologyPath))
	session := services.NewSession(catalog, cfg.Tolerance, nil, appLogger)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(800, 650))
	window.CenterOnScreen()

	mainView := views.NewMainView(window)
	mainController := controllers.NewMainController(session, catalog, appLogger)
	mainController.SetMainView(mainView)
	mainController.SetWindow(window)

	appCtx, appCancel := context.WithCancel(ctx)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		catalog:    catalog,
		session:    session,
		controller: mainController,
		view:       mainView,
		ctx:        appCtx,
		cancel:     appCancel,
	}

	application.setupWindowEvents()

	appLogger.Info("app", "application initialized", map[string]interface{}{
		"shapes":     catalog.Count(),
		"session_id": session.ID.String(),
	})
	return application
}

// Run shows the window and enters the Fyne event loop (blocking).
func (a *Application) Run() error {
	a.controller.Initialize()

	fyne.Do(func() {
		a.view.Show()
	})

	go func() {
		<-a.ctx.Done()
		a.logger.Info("app", "context cancelled, closing window", nil)
		fyne.Do(func() {
			a.window.Close()
		})
	}()

	a.fyneApp.Run()

	a.controller.Shutdown()
	a.logger.Info("app", "application terminated", nil)
	return nil
}

// setupWindowEvents configures window lifecycle handling. Nothing is
// persisted on exit; progress state is in-memory by design.
func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.cancel()
	})
}

// setupGracefulShutdown cancels the application context on SIGINT or
// SIGTERM so the window closes cleanly.
func setupGracefulShutdown(application *Application, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		application.logger.Info("app", "system signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		cancel()
		application.cancel()
	}()
}
