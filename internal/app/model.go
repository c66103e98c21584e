package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/dispatcher"
	"github.com/Rorical/RoriCalc/internal/models"
	"github.com/Rorical/RoriCalc/internal/update"
	"github.com/Rorical/RoriCalc/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	theme      config.Theme
	dispatcher *dispatcher.EventDispatcher
}

func NewAppModel(cfg *config.Config, disp *dispatcher.EventDispatcher) *AppModel {
	return &AppModel{
		appModel:   createInitialAppModel(cfg),
		theme:      cfg.Theme(),
		dispatcher: disp,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatcher.CoreEventMsg:
		// Handle core events and continue listening
		cmd := update.HandleCoreEvent(&m.appModel, msg)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	case update.ConfigReloadedMsg:
		m.theme = msg.Config.Theme()
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderPending(m.theme, m.appModel.Pending, m.appModel.HasPending))
	b.WriteString("\n")
	b.WriteString(components.RenderDisplay(m.theme, m.appModel.Display, m.appModel.Width))
	b.WriteString("\n")
	if m.appModel.ShowKeypad {
		b.WriteString(components.RenderKeypad(m.theme, m.appModel.LastKey))
		b.WriteString("\n")
	}
	b.WriteString(components.RenderStatus(m.theme, m.appModel.Status, m.appModel.Width))

	return b.String()
}
