package update

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriCalc/internal/calculator"
	"github.com/Rorical/RoriCalc/internal/config"
	"github.com/Rorical/RoriCalc/internal/core"
	"github.com/Rorical/RoriCalc/internal/dispatcher"
	"github.com/Rorical/RoriCalc/internal/eventbus"
	"github.com/Rorical/RoriCalc/internal/models"
)

// ConfigReloadedMsg carries a config re-read after the file changed
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a failed config reload
type ConfigErrorMsg struct {
	Err error
}

// keyRune maps a key press to the calculator key it stands for.
func keyRune(keyMsg tea.KeyMsg) (rune, bool) {
	switch keyMsg.Type {
	case tea.KeyEnter:
		return '=', true
	case tea.KeyEsc, tea.KeyDelete:
		return 'c', true
	case tea.KeyRunes:
		if len(keyMsg.Runes) == 1 {
			return keyMsg.Runes[0], true
		}
	}
	return 0, false
}

// HandleKeyMsgWithEventBus forwards one calculator key to core
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	}

	r, ok := keyRune(keyMsg)
	if !ok {
		return nil
	}
	event, ok := core.ParseKey(r)
	if !ok {
		return nil
	}
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending key: " + err.Error()
		return nil
	}
	appModel.LastKey = keypadKey(event)
	return nil
}

// keypadKey names the keypad legend entry an event corresponds to.
func keypadKey(event eventbus.UIEvent) string {
	switch e := event.(type) {
	case eventbus.DigitEvent:
		return strconv.Itoa(e.Digit)
	case eventbus.OperatorEvent:
		switch e.Op {
		case calculator.Add:
			return "+"
		case calculator.Sub:
			return "-"
		case calculator.Mul:
			return "*"
		case calculator.Div:
			return "/"
		}
	case eventbus.EvaluateEvent:
		return "="
	case eventbus.ClearEvent:
		return "c"
	}
	return ""
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		// The display is overwritten on every update
		appModel.Display = event.Display
		appModel.Pending = event.Pending
		appModel.HasPending = event.HasPending
		appModel.Status = "Ready"
	}

	return nil
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleConfigReloaded(appModel *models.AppModel, msg ConfigReloadedMsg) {
	appModel.ShowKeypad = msg.Config.ShowKeypad
	appModel.Status = "Config reloaded"
}
