package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/datepicker/internal/daterange"
	"github.com/xolan/datepicker/internal/picker"
	"github.com/xolan/datepicker/internal/service"
	"github.com/xolan/datepicker/internal/tui/ui"
)

const boundsLayout = "Mon 2006-01-02 15:04:05.000"

// PickerModel is the model for the picker view
type PickerModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width   int
	height  int
	session *service.Session
	events  *eventQueue
	loading bool
	err     error
	status  string

	// Date entry popup
	input DateInputModel
}

// eventQueue collects change events emitted while an operation runs
type eventQueue struct {
	pending []picker.ChangeEvent
}

func (q *eventQueue) push(e picker.ChangeEvent) {
	q.pending = append(q.pending, e)
}

func (q *eventQueue) drain() []picker.ChangeEvent {
	events := q.pending
	q.pending = nil
	return events
}

// NewPickerModel creates a new picker view model
func NewPickerModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) PickerModel {
	return PickerModel{
		services: services,
		styles:   styles,
		keys:     keys,
		loading:  true,
		input:    NewDateInputModel(styles, keys),
	}
}

// pickerLoadedMsg is sent when the saved picker state has been opened
type pickerLoadedMsg struct {
	session *service.Session
	err     error
}

// Init implements tea.Model
func (m PickerModel) Init() tea.Cmd {
	return m.loadPicker()
}

// Update implements tea.Model
func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.input.Active() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		if m.session == nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Prev):
			return m.navigate(-1)
		case key.Matches(msg, m.keys.Next):
			return m.navigate(1)
		case key.Matches(msg, m.keys.Day):
			return m.setGranularity(daterange.Day)
		case key.Matches(msg, m.keys.Week):
			return m.setGranularity(daterange.Week)
		case key.Matches(msg, m.keys.Month):
			return m.setGranularity(daterange.Month)
		case key.Matches(msg, m.keys.Today):
			return m.today()
		case key.Matches(msg, m.keys.OpenPicker):
			now, err := m.services.Picker.Now()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.status = ""
			return m, m.input.Open(m.session.Range().Start, m.session.InputLayout(), now)
		}

	case pickerLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.session = msg.session
		if m.session != nil {
			m.events = &eventQueue{}
			m.session.OnChange(m.events.push)
		}
		return m, nil

	case datePickedMsg:
		if m.session == nil {
			return m, nil
		}
		changed, err := m.session.PickDate(msg.date)
		return m.finish(changed, err)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.input.SetStyles(msg.Styles)
		return m, nil
	}

	// Keep the cursor blinking while the popup is open
	if m.input.Active() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m PickerModel) navigate(delta int) (PickerModel, tea.Cmd) {
	changed, err := m.session.Navigate(delta)
	return m.finish(changed, err)
}

func (m PickerModel) today() (PickerModel, tea.Cmd) {
	now, err := m.services.Picker.Now()
	if err != nil {
		m.err = err
		return m, nil
	}
	changed, err := m.session.Today(now)
	return m.finish(changed, err)
}

// setGranularity switches the granularity, which emits no change event
// of its own, so the new state is saved and announced here.
func (m PickerModel) setGranularity(g daterange.Granularity) (PickerModel, tea.Cmd) {
	if g == m.session.Granularity() {
		m.status = "unchanged"
		return m, nil
	}

	previous := m.session.Range()
	if err := m.session.SetGranularity(g); err != nil {
		m.err = err
		return m, nil
	}
	if err := m.services.Picker.Save(m.session.Picker); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.status = ""
	event := picker.ChangeEvent{Range: m.session.Range(), Previous: previous, Granularity: g}
	return m, announce(event)
}

// finish records the outcome of a picker operation and forwards the
// change events it produced.
func (m PickerModel) finish(changed bool, err error) (PickerModel, tea.Cmd) {
	if err == nil {
		err = m.session.Err()
	}
	m.err = err

	var cmds []tea.Cmd
	for _, e := range m.events.drain() {
		cmds = append(cmds, announce(e))
	}
	if err != nil {
		return m, tea.Batch(cmds...)
	}

	m.status = ""
	if !changed {
		m.status = "unchanged"
	}
	return m, tea.Batch(cmds...)
}

func announce(e picker.ChangeEvent) tea.Cmd {
	return func() tea.Msg {
		return ui.RangeChangedMsg{Event: e}
	}
}

// View implements tea.Model
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Date Range"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.session == nil {
		if m.err != nil {
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
			b.WriteString(m.styles.StatLabel.Render("Run 'datepicker reset' to discard the saved range"))
		}
		return b.String()
	}

	b.WriteString(m.renderGranularities())
	b.WriteString("\n\n")
	b.WriteString(m.renderRangeRow())
	b.WriteString("\n\n")

	r := m.session.Range()
	b.WriteString(m.styles.StatLabel.Render("From:"))
	b.WriteString(" ")
	b.WriteString(m.styles.RangeBounds.Render(r.Start.Format(boundsLayout)))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("To:"))
	b.WriteString(" ")
	b.WriteString(m.styles.RangeBounds.Render(r.End.Format(boundsLayout)))
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Days:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%d", r.Days())))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render("(" + m.status + ")"))
		b.WriteString("\n")
	}

	if m.input.Active() {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}

	return b.String()
}

// renderGranularities renders the day/week/month selector
func (m PickerModel) renderGranularities() string {
	var parts []string
	for _, g := range daterange.Granularities() {
		name := strings.ToUpper(string(g)[:1]) + string(g)[1:]
		if g == m.session.Granularity() {
			parts = append(parts, m.styles.GranularityActive.Render(name))
		} else {
			parts = append(parts, m.styles.GranularityInactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderRangeRow renders the ◀ label ▶ row
func (m PickerModel) renderRangeRow() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.RangeArrow.Render("◀"),
		m.styles.RangeLabel.Render(m.session.Label()),
		m.styles.RangeArrow.Render("▶"),
	)
}

// IsInputMode returns true while the date entry popup is open
func (m PickerModel) IsInputMode() bool {
	return m.input.Active()
}

// Range returns the currently selected range, if loaded
func (m PickerModel) Range() (daterange.Range, bool) {
	if m.session == nil {
		return daterange.Range{}, false
	}
	return m.session.Range(), true
}

// SetSize sets the view dimensions
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// loadPicker creates a command that opens the saved picker state
func (m PickerModel) loadPicker() tea.Cmd {
	return func() tea.Msg {
		sess, err := m.services.Picker.Open()
		return pickerLoadedMsg{session: sess, err: err}
	}
}

// datePickedMsg is sent when a date was entered in the popup
type datePickedMsg struct {
	date time.Time
}
