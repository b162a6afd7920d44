package dashboard

import (
	"github.com/jabastien/gpumon/internal/device"
	"github.com/jabastien/gpumon/internal/logger"
)

// samplers binds each row to its device reading, indexed by RowID. Scalar
// readings are wrapped into Samples with an unused zero ratio so the draw
// pass can stay data-driven instead of branching per row.
var samplers = [RowCount]func(*device.Device) device.Sample{
	RowBusy:        (*device.Device).Busy,
	RowVRAM:        (*device.Device).VRAM,
	RowGTT:         (*device.Device).GTT,
	RowCPUVis:      (*device.Device).VisVRAM,
	RowPower:       (*device.Device).Power,
	RowTemperature: (*device.Device).Temperature,
	RowFan:         (*device.Device).Fan,
	RowVoltage:     scalar((*device.Device).Voltage),
	RowGfxClock:    scalar((*device.Device).GfxClock),
	RowMemClock:    scalar((*device.Device).MemClock),
	RowLinkSpeed:   scalar((*device.Device).LinkSpeed),
	RowLinkWidth:   scalar((*device.Device).LinkWidth),
}

func scalar(read func(*device.Device) string) func(*device.Device) device.Sample {
	return func(d *device.Device) device.Sample {
		return device.Sample{Text: read(d)}
	}
}

// Collector samples the enabled rows of a device. Every call re-reads sysfs;
// a row is sampled at most once per tick, so there is nothing to cache.
type Collector struct {
	dev *device.Device
	log logger.Logger
}

// NewCollector creates a collector for the given device.
func NewCollector(dev *device.Device, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{dev: dev, log: log}
}

// Device returns the underlying device.
func (c *Collector) Device() *device.Device {
	return c.dev
}

// Collect samples every enabled row. Disabled slots keep zero Samples that
// the draw pass never touches. Individual read failures have already
// degraded to zero readings inside the device layer; a tick never fails.
func (c *Collector) Collect(enabled EnabledMask) [RowCount]device.Sample {
	var out [RowCount]device.Sample
	for id := RowID(0); id < RowCount; id++ {
		if !enabled[id] {
			continue
		}
		out[id] = samplers[id](c.dev)
	}
	c.log.Debug("collected %d row(s)", enabled.Count())
	return out
}
