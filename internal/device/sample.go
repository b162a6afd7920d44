package device

// Sample is one reading for one dashboard row: a human-readable value and a
// dimensionless position within the row's static bound. Samples are built
// fresh on every tick and never stored past the draw that consumed them.
type Sample struct {
	Text  string
	Ratio float64
}

// clampRatio keeps a ratio inside [0, 1]. Readings can momentarily exceed a
// recorded bound (power spikes above power1_cap_max, for one), and a
// degenerate bound can push the raw ratio negative or NaN.
func clampRatio(r float64) float64 {
	switch {
	case r != r: // NaN
		return 0
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

// rangeRatio positions sample within [min, max], clamped. A bound pair with
// max <= min has no usable range; the ratio degrades to zero rather than
// dividing by zero.
func rangeRatio(sample, min, max uint64) float64 {
	if max <= min {
		return 0
	}
	return clampRatio((float64(sample) - float64(min)) / float64(max-min))
}

// boundRatio positions sample against a ceiling bound (no floor subtracted).
func boundRatio(sample, bound uint64) float64 {
	if bound == 0 {
		return 0
	}
	return clampRatio(float64(sample) / float64(bound))
}
