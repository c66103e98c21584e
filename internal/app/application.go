package app

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/dispatcher"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
	"github.com/Rorical/RoriCalc/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.CalcService
	model      *AppModel
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		log.Printf("event bus: %v", e)
	})

	disp := dispatcher.NewEventDispatcher(eb)
	service := core.NewCalcService(eb)
	ctx, cancel := context.WithCancel(context.Background())

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      NewAppModel(cfg, disp),
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model)
	app.watchConfig(p)

	_, err := p.Run()
	return err
}

// watchConfig restyles the running UI when the config file changes.
func (app *Application) watchConfig(p *tea.Program) {
	path, err := config.Path()
	if err != nil {
		log.Printf("config watch disabled: %v", err)
		return
	}
	go func() {
		err := config.Watch(app.ctx, path,
			func(cfg *config.Config) { p.Send(update.ConfigReloadedMsg{Config: cfg}) },
			func(err error) { p.Send(update.ConfigErrorMsg{Err: err}) },
		)
		if err != nil {
			log.Printf("config watch stopped: %v", err)
		}
	}()
}

func (app *Application) Stop() {
	app.cancel()
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}

func createInitialAppModel(cfg *config.Config) models.AppModel {
	// Display starts empty; core pushes the initial state on start
	return models.AppModel{
		Status:     "Ready",
		ShowKeypad: cfg.ShowKeypad,
	}
}
