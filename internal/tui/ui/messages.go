package ui

import "github.com/xolan/datepicker/internal/picker"

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// RangeChangedMsg carries a picker change event to the root model.
type RangeChangedMsg struct {
	Event picker.ChangeEvent
}
