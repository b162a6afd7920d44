package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarFieldWidth(t *testing.T) {
	// columns - label column - both margins
	assert.Equal(t, 63, barFieldWidth(80))
	assert.Equal(t, 103, barFieldWidth(120))

	// Before the first WindowSizeMsg the default width applies.
	assert.Equal(t, 63, barFieldWidth(0))
}

// sampledModel returns a model that has completed one collection.
func sampledModel(t *testing.T, enabled EnabledMask, width int) Model {
	t.Helper()
	c := newTestCollector(t)
	m := NewModel(c, enabled, time.Second)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: 30})
	m = updated.(Model)
	updated, _ = m.Update(m.collectCmd()())
	return updated.(Model)
}

func TestView_RendersAllEnabledRows(t *testing.T) {
	m := sampledModel(t, AllEnabled(), 80)
	out := m.View()

	for _, spec := range Rows {
		assert.Contains(t, out, spec.Label)
	}
	assert.Contains(t, out, "gpumon")
	assert.Contains(t, out, "card0")
	assert.Contains(t, out, "quit")
}

func TestView_OmitsDisabledRows(t *testing.T) {
	enabled := AllEnabled()
	enabled.Disable("gtt,voltage")

	m := sampledModel(t, enabled, 80)
	out := m.View()

	assert.NotContains(t, out, "GTT:")
	assert.NotContains(t, out, "Voltage:")
	assert.Contains(t, out, "GPU busy:")
}

func TestView_ResizeChangesGaugeWidth(t *testing.T) {
	narrow := sampledModel(t, AllEnabled(), 60)
	wide := sampledModel(t, AllEnabled(), 100)

	lineWidth := func(out, label string) int {
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, label) {
				return len(line)
			}
		}
		return -1
	}

	n := lineWidth(narrow.View(), "GPU busy:")
	w := lineWidth(wide.View(), "GPU busy:")
	require.Positive(t, n)
	require.Positive(t, w)
	assert.Equal(t, 40, w-n, "gauge width tracks terminal columns")
}

func TestView_BeforeFirstSampleShowsLabelsOnly(t *testing.T) {
	c := newTestCollector(t)
	m := NewModel(c, AllEnabled(), time.Second)

	out := m.View()
	assert.Contains(t, out, "GPU busy:")
	assert.NotContains(t, out, "[", "no gauges before the first collection")
	assert.Contains(t, out, "waiting for first sample")
}

func TestView_VeryNarrowTerminalDoesNotPanic(t *testing.T) {
	m := sampledModel(t, AllEnabled(), 10)
	assert.NotPanics(t, func() { m.View() })
}
