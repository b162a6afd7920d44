// Package dashboard implements the interactive terminal view: a Bubble Tea
// model polling one amdgpu device on a timer and drawing each enabled row
// as a severity-colored gauge or a plain value.
package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jabastien/gpumon/internal/device"
)

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// samplesMsg carries one tick's samples for every enabled row.
type samplesMsg struct {
	samples [RowCount]device.Sample
	time    time.Time
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	collector *Collector
	enabled   EnabledMask
	interval  time.Duration

	samples    [RowCount]device.Sample
	sampled    bool
	lastUpdate time.Time

	width  int
	height int

	quitting bool
}

// NewModel creates the dashboard model. The interval is both the sample
// period and the redraw cadence.
func NewModel(collector *Collector, enabled EnabledMask, interval time.Duration) Model {
	return Model{
		collector: collector,
		enabled:   enabled,
		interval:  interval,
	}
}

// Init starts the tick timer and triggers an initial collection so the
// first frame has data instead of waiting out a full interval.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.collectCmd(),
		m.tickCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// Geometry is derived from these in View on every frame, so a
		// resize takes effect on the very next draw.
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.tickCmd(), m.collectCmd())

	case samplesMsg:
		m.samples = msg.samples
		m.sampled = true
		m.lastUpdate = msg.time
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd returns a command that samples every enabled row once.
func (m Model) collectCmd() tea.Cmd {
	return func() tea.Msg {
		return samplesMsg{
			samples: m.collector.Collect(m.enabled),
			time:    time.Now(),
		}
	}
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// completed collection.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
