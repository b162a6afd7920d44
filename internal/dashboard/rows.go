package dashboard

import "strings"

// RowKind distinguishes proportional bar rows from plain value rows.
type RowKind int

const (
	KindBar RowKind = iota
	KindScalar
)

// RowID identifies one dashboard row. Values double as the row's position
// in display order.
type RowID int

const (
	RowBusy RowID = iota
	RowVRAM
	RowGTT
	RowCPUVis
	RowPower
	RowTemperature
	RowFan
	RowVoltage
	RowGfxClock
	RowMemClock
	RowLinkSpeed
	RowLinkWidth

	RowCount
)

// RowSpec describes one row of the display: its identity, the label drawn in
// the left column, the key accepted by the --disable list, and its kind.
type RowSpec struct {
	ID    RowID
	Key   string
	Label string
	Kind  RowKind
}

// Rows is the static row catalog in display order. Never mutated after
// process start.
var Rows = [RowCount]RowSpec{
	{RowBusy, "busy", "GPU busy:", KindBar},
	{RowVRAM, "vram", "GPU vram:", KindBar},
	{RowGTT, "gtt", "GTT:", KindBar},
	{RowCPUVis, "cpu_vis", "CPU Vis:", KindBar},
	{RowPower, "power", "Power draw:", KindBar},
	{RowTemperature, "temperature", "Temperature:", KindBar},
	{RowFan, "fan", "Fan speed:", KindBar},
	{RowVoltage, "voltage", "Voltage:", KindScalar},
	{RowGfxClock, "gfx_clock", "GFX clock:", KindScalar},
	{RowMemClock, "mem_clock", "Mem clock:", KindScalar},
	{RowLinkSpeed, "link_speed", "Link speed:", KindScalar},
	{RowLinkWidth, "link_width", "Link width:", KindScalar},
}

// rowKeys maps disable-list keys to row identities. Lookup is case-sensitive.
var rowKeys = func() map[string]RowID {
	m := make(map[string]RowID, RowCount)
	for _, spec := range Rows {
		m[spec.Key] = spec.ID
	}
	return m
}()

// RowByKey resolves a disable-list key to a row identity.
func RowByKey(key string) (RowID, bool) {
	id, ok := rowKeys[key]
	return id, ok
}

// EnabledMask records which rows are drawn and sampled. Mutated only during
// startup option handling; read-only once the display loop starts.
type EnabledMask [RowCount]bool

// AllEnabled returns a mask with every row enabled, the default.
func AllEnabled() EnabledMask {
	var m EnabledMask
	for i := range m {
		m[i] = true
	}
	return m
}

// Disable turns off each row named in the comma-separated list.
// Unknown keys are silently ignored.
func (m *EnabledMask) Disable(list string) {
	for _, key := range strings.Split(list, ",") {
		if id, ok := RowByKey(key); ok {
			m[id] = false
		}
	}
}

// Any reports whether at least one row remains enabled.
func (m EnabledMask) Any() bool {
	for _, on := range m {
		if on {
			return true
		}
	}
	return false
}

// Count returns the number of enabled rows.
func (m EnabledMask) Count() int {
	n := 0
	for _, on := range m {
		if on {
			n++
		}
	}
	return n
}
