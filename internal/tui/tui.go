// Package tui provides the Terminal User Interface for the datepicker application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/datepicker/internal/service"
	"github.com/xolan/datepicker/internal/tui/ui"
	"github.com/xolan/datepicker/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabPicker Tab = iota
	TabConfig
)

var tabNames = []string{"Picker", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab  Tab
	width      int
	height     int
	showHelp   bool
	lastChange string

	// View models
	pickerView views.PickerModel
	configView views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabPicker,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		pickerView:    views.NewPickerModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.pickerView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The date popup captures every key except ctrl+c
		inputMode := m.isInputMode()

		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit) && !inputMode:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !inputMode:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !inputMode:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !inputMode:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !inputMode:
			m.activeTab = TabPicker
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !inputMode:
			m.activeTab = TabConfig
			return m, m.initCurrentView()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.pickerView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.RangeChangedMsg:
		m.lastChange = fmt.Sprintf("%s → %s", msg.Event.Previous, msg.Event.Range)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.pickerView, _ = m.pickerView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Keys go to the active view; async results reach both views
	if _, ok := msg.(tea.KeyMsg); ok {
		switch m.activeTab {
		case TabPicker:
			m.pickerView, cmd = m.pickerView.Update(msg)
		case TabConfig:
			m.configView, cmd = m.configView.Update(msg)
		}
		return m, cmd
	}

	var configCmd tea.Cmd
	m.pickerView, cmd = m.pickerView.Update(msg)
	m.configView, configCmd = m.configView.Update(msg)
	return m, tea.Batch(cmd, configCmd)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabPicker:
		b.WriteString(m.pickerView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isInputMode() {
		parts = append(parts, m.renderKeyHelp("Enter", "select"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabPicker:
			for _, b := range m.keys.ShortHelp() {
				parts = append(parts, m.renderKeyHelp(b.Help().Key, b.Help().Desc))
			}
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
			parts = append(parts, m.renderKeyHelp("d/w/m", "default"))
		}

		parts = append(parts, m.renderKeyHelp("1-2", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")
	if m.lastChange != "" && m.activeTab == TabPicker {
		content += "  " + m.styles.StatusValue.Render(m.lastChange)
	}

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isInputMode reports whether the date popup is capturing keys
func (m Model) isInputMode() bool {
	return m.activeTab == TabPicker && m.pickerView.IsInputMode()
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	if m.activeTab == TabConfig {
		return m.configView.Init()
	}
	return nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// renderHelpOverlay renders the keyboard shortcuts in place of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-2    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabPicker:
		help.WriteString(m.styles.StatLabel.Render("Picker:"))
		help.WriteString("\n")
		help.WriteString("  ←/h        Previous day, week or month\n")
		help.WriteString("  →/l        Next day, week or month\n")
		help.WriteString("  d/w/m      Day, week or month\n")
		help.WriteString("  t          Today\n")
		help.WriteString("  Enter/p    Type a date\n")
		help.WriteString("  Esc        Close the date popup\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  d/w/m      Set default granularity\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
