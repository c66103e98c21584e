package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Display    int32  // Number shown on the display, as last pushed by core
	Pending    string // Pending operator symbol, empty when none
	HasPending bool   // Whether an operator is waiting for its right operand
	LastKey    string // Last key forwarded to core, highlighted on the keypad
	Status     string // Status bar text
	Width      int    // Terminal width
	Height     int    // Terminal height
	ShowKeypad bool   // Whether the keypad legend is drawn
}
