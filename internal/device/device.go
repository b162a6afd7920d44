// Package device reads amdgpu metrics for a single card and normalizes them
// into value strings and [0,1] ratios against bounds captured at startup.
package device

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jabastien/gpumon/internal/logger"
	"github.com/jabastien/gpumon/internal/sysfs"
)

// Unit divisors for the raw sysfs values.
const (
	bytesPerMiB    = 1024 * 1024
	microwattsPerW = 1_000_000
	millidegPerC   = 1_000
	hzPerMHz       = 1_000_000
)

// Device reads metrics for one amdgpu card. The bounds are captured once at
// construction and act as denominators for every ratio; the hardware limits
// they describe do not change while the process runs.
type Device struct {
	path  string
	hwmon string
	log   logger.Logger

	vramTotal    uint64
	gttTotal     uint64
	visVRAMTotal uint64
	powerMin     uint64
	powerMax     uint64
	tempCrit     uint64
	fanMin       uint64
	fanMax       uint64

	// Precomputed "/8192MiB" style suffixes for the memory rows.
	vramSuffix    string
	gttSuffix     string
	visVRAMSuffix string
}

// New captures the static bounds for the card at path. Any bound that cannot
// be read or parsed is fatal: without it the ratio math is meaningless, and
// the caller must abort before taking over the terminal.
func New(path string, log logger.Logger) (*Device, error) {
	if log == nil {
		log = logger.Noop()
	}

	d := &Device{
		path:  path,
		hwmon: sysfs.HwmonDir(path, log),
		log:   log,
	}

	bounds := []struct {
		dst  *uint64
		path string
	}{
		{&d.vramTotal, d.file("mem_info_vram_total")},
		{&d.gttTotal, d.file("mem_info_gtt_total")},
		{&d.visVRAMTotal, d.file("mem_info_vis_vram_total")},
		{&d.powerMin, d.hwmonFile("power1_cap_min")},
		{&d.powerMax, d.hwmonFile("power1_cap_max")},
		{&d.tempCrit, d.hwmonFile("temp1_crit")},
		{&d.fanMin, d.hwmonFile("fan1_min")},
		{&d.fanMax, d.hwmonFile("fan1_max")},
	}
	for _, b := range bounds {
		v, err := sysfs.ReadBound(b.path)
		if err != nil {
			return nil, err
		}
		*b.dst = v
	}

	d.vramSuffix = fmt.Sprintf("/%dMiB", d.vramTotal/bytesPerMiB)
	d.gttSuffix = fmt.Sprintf("/%dMiB", d.gttTotal/bytesPerMiB)
	d.visVRAMSuffix = fmt.Sprintf("/%dMiB", d.visVRAMTotal/bytesPerMiB)

	log.Debug("device %s: vram=%d gtt=%d vis=%d power=[%d,%d]µW crit=%dm°C fan=[%d,%d]rpm",
		path, d.vramTotal, d.gttTotal, d.visVRAMTotal,
		d.powerMin, d.powerMax, d.tempCrit, d.fanMin, d.fanMax)

	return d, nil
}

// Name returns the card label for display (e.g. "card0").
func (d *Device) Name() string {
	return sysfs.CardName(d.path)
}

// Path returns the device base directory.
func (d *Device) Path() string {
	return d.path
}

func (d *Device) file(name string) string {
	return filepath.Join(d.path, name)
}

func (d *Device) hwmonFile(name string) string {
	return filepath.Join(d.hwmon, name)
}

// Busy reads the utilization percentage.
func (d *Device) Busy() Sample {
	raw := sysfs.ReadValue(d.file("gpu_busy_percent"))
	pc, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// Unparsable content degrades to zero, same as a missing file.
		raw, pc = "0", 0
	}
	return Sample{Text: raw + "%", Ratio: clampRatio(pc * 0.01)}
}

// VRAM reads dedicated memory usage.
func (d *Device) VRAM() Sample {
	return d.memSample("mem_info_vram_used", d.vramTotal, d.vramSuffix)
}

// GTT reads the graphics translation table (system memory mapped for the GPU).
func (d *Device) GTT() Sample {
	return d.memSample("mem_info_gtt_used", d.gttTotal, d.gttSuffix)
}

// VisVRAM reads the CPU-visible slice of dedicated memory.
func (d *Device) VisVRAM() Sample {
	return d.memSample("mem_info_vis_vram_used", d.visVRAMTotal, d.visVRAMSuffix)
}

func (d *Device) memSample(name string, total uint64, suffix string) Sample {
	used := sysfs.ReadUint(d.file(name))
	return Sample{
		Text:  strconv.FormatUint(used/bytesPerMiB, 10) + suffix,
		Ratio: boundRatio(used, total),
	}
}

// Power reads the average power draw, positioned within the cap range.
func (d *Device) Power() Sample {
	uw := sysfs.ReadUint(d.hwmonFile("power1_average"))
	return Sample{
		Text:  strconv.FormatUint(uw/microwattsPerW, 10) + "W",
		Ratio: rangeRatio(uw, d.powerMin, d.powerMax),
	}
}

// Temperature reads the edge temperature, positioned against the critical
// trip point. No floor is subtracted: crit is a ceiling, not a range.
func (d *Device) Temperature() Sample {
	mdeg := sysfs.ReadUint(d.hwmonFile("temp1_input"))
	return Sample{
		Text:  strconv.FormatUint(mdeg/millidegPerC, 10) + "C",
		Ratio: boundRatio(mdeg, d.tempCrit),
	}
}

// Fan reads the fan speed, positioned within the fan's RPM range.
func (d *Device) Fan() Sample {
	rpm := sysfs.ReadUint(d.hwmonFile("fan1_input"))
	return Sample{
		Text:  strconv.FormatUint(rpm, 10) + "RPM",
		Ratio: rangeRatio(rpm, d.fanMin, d.fanMax),
	}
}

// Voltage reads the core voltage in millivolts.
func (d *Device) Voltage() string {
	return sysfs.ReadValue(d.hwmonFile("in0_input")) + "mV"
}

// GfxClock reads the shader clock.
func (d *Device) GfxClock() string {
	hz := sysfs.ReadUint(d.hwmonFile("freq1_input"))
	return strconv.FormatUint(hz/hzPerMHz, 10) + "MHz"
}

// MemClock reads the memory clock.
func (d *Device) MemClock() string {
	hz := sysfs.ReadUint(d.hwmonFile("freq2_input"))
	return strconv.FormatUint(hz/hzPerMHz, 10) + "MHz"
}

// LinkSpeed reads the PCIe link speed as the kernel reports it
// (e.g. "8.0 GT/s PCIe").
func (d *Device) LinkSpeed() string {
	return sysfs.ReadValue(d.file("current_link_speed"))
}

// LinkWidth reads the PCIe lane count, prefixed in the usual "x16" form.
func (d *Device) LinkWidth() string {
	return "x" + sysfs.ReadValue(d.file("current_link_width"))
}
