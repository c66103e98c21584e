package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/dispatcher"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
)

func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	case ConfigReloadedMsg:
		HandleConfigReloaded(appModel, msg)
		return nil
	case ConfigErrorMsg:
		appModel.Status = "Config error: " + msg.Err.Error()
		return nil
	}
	return nil
}
