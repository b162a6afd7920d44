package dashboard

import "strings"

// fillChar is the character a bar's filled portion is drawn with.
const fillChar = "|"

// RenderGauge draws one bar row's value into a field of the given width:
// an opening bracket, a run of fill characters colored by severity band,
// the value string right-aligned, and a closing bracket.
//
// The fill length is floor((field - 2 - len(value)) * ratio). When the
// available width comes out negative (terminal too narrow for the value),
// the gauge renders as an empty string: the row shows nothing, and the rows
// after it are unaffected.
func RenderGauge(ratio float64, value string, field int) string {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	avail := field - 2 - len(value)
	if avail < 0 {
		return ""
	}
	fill := int(float64(avail) * ratio)

	var b strings.Builder
	b.WriteString(BracketStyle.Render("["))
	if fill > 0 {
		b.WriteString(bandStyle(ratio).Render(strings.Repeat(fillChar, fill)))
	}
	if gap := avail - fill; gap > 0 {
		b.WriteString(strings.Repeat(" ", gap))
	}
	b.WriteString(ValueStyle.Render(value))
	b.WriteString(BracketStyle.Render("]"))
	return b.String()
}
