package dashboard

import (
	"fmt"
	"strings"
)

// Layout constants. The label column is sized for the widest label
// ("Temperature:") plus a space; the horizontal pad margins both sides.
const (
	labelWidth = 13
	hpad       = 2

	// defaultWidth is used until the first WindowSizeMsg arrives.
	defaultWidth = 80
)

// barFieldWidth computes the width available to a gauge from the current
// terminal columns. Recomputed every frame, never cached across a resize.
func barFieldWidth(termWidth int) int {
	if termWidth <= 0 {
		termWidth = defaultWidth
	}
	return termWidth - labelWidth - 2*hpad
}

// renderDashboard renders the complete frame: header, one line per enabled
// row in catalog order, footer. Rebuilding the whole frame makes every
// redraw idempotent; leftovers from a longer previous value cannot survive.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	field := barFieldWidth(m.width)
	margin := strings.Repeat(" ", hpad)

	for _, spec := range Rows {
		if !m.enabled[spec.ID] {
			continue
		}

		sample := m.samples[spec.ID]
		b.WriteString(margin)
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, spec.Label)))

		if m.sampled {
			switch spec.Kind {
			case KindBar:
				b.WriteString(RenderGauge(sample.Ratio, sample.Text, field))
			case KindScalar:
				b.WriteString(ScalarValueStyle.Render(sample.Text))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with the device name and refresh info.
func (m Model) renderHeader() string {
	title := HeaderTitleStyle.Render("gpumon")

	var updateText string
	switch s := m.SecondsSinceUpdate(); {
	case !m.sampled:
		updateText = "waiting for first sample"
	case s == 0:
		updateText = "updated just now"
	case s == 1:
		updateText = "updated 1s ago"
	default:
		updateText = fmt.Sprintf("updated %ds ago", s)
	}

	info := HeaderInfoStyle.Render(fmt.Sprintf(" | %s | every %s | %s",
		m.collector.Device().Name(), m.interval, updateText))

	return strings.Repeat(" ", hpad) + title + info
}

// renderFooter renders the keyboard hint line.
func (m Model) renderFooter() string {
	h := keys.Quit.Help()
	return strings.Repeat(" ", hpad) + FooterStyle.Render(h.Key+" "+h.Desc)
}
