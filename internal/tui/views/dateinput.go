package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/datepicker/internal/timeutil"
	"github.com/xolan/datepicker/internal/tui/ui"
)

// layoutHints maps input layouts to the placeholder shown to the user
var layoutHints = map[string]string{
	"2006-01-02": "YYYY-MM-DD",
	"01-2006":    "MM-YYYY",
}

// DateInputModel is the popup used to type a date
type DateInputModel struct {
	styles ui.Styles
	keys   ui.KeyMap

	active bool
	input  textinput.Model
	now    time.Time
	err    error
}

// NewDateInputModel creates a closed date input popup
func NewDateInputModel(styles ui.Styles, keys ui.KeyMap) DateInputModel {
	ti := textinput.New()
	ti.CharLimit = 20
	ti.Width = 20

	return DateInputModel{
		styles: styles,
		keys:   keys,
		input:  ti,
	}
}

// Open shows the popup prefilled with current formatted using layout.
// now resolves relative inputs such as "today".
func (m *DateInputModel) Open(current time.Time, layout string, now time.Time) tea.Cmd {
	m.active = true
	m.now = now
	m.err = nil
	m.input.Placeholder = layout
	if hint, ok := layoutHints[layout]; ok {
		m.input.Placeholder = hint
	}
	m.input.SetValue(current.Format(layout))
	m.input.CursorEnd()
	m.input.Focus()
	return textinput.Blink
}

// Update implements tea.Model
func (m DateInputModel) Update(msg tea.Msg) (DateInputModel, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Select):
			value := strings.TrimSpace(m.input.Value())
			date, err := timeutil.ParseDate(value, m.now)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.close()
			return m, func() tea.Msg { return datePickedMsg{date: date} }
		case key.Matches(msg, m.keys.Back):
			m.close()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *DateInputModel) close() {
	m.active = false
	m.err = nil
	m.input.Blur()
	m.input.SetValue("")
}

// Active reports whether the popup is open
func (m DateInputModel) Active() bool {
	return m.active
}

// SetStyles replaces the styles after a theme change
func (m *DateInputModel) SetStyles(styles ui.Styles) {
	m.styles = styles
}

// View implements tea.Model
func (m DateInputModel) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Pick a date"))
	b.WriteString("\n")
	b.WriteString(m.styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("%v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.StatusHelp.Render("Enter select  Esc cancel"))

	return m.styles.Dialog.Render(b.String())
}
