package config

import (
	"github.com/go-logr/logr"
)

// Geometry holds the physical parameters the timing model is derived from.
// Cylinders is the disk size used when a query leaves it unset.
type Geometry struct {
	Cylinders    int
	RPM          int
	SectorSize   int
	SeekRate     float64
	TransferRate float64
}

func DefaultGeometry() Geometry {
	return Geometry{
		Cylinders:    DefaultDiskSize,
		RPM:          RPM,
		SectorSize:   SectorSize,
		SeekRate:     SeekRate,
		TransferRate: TransferRate,
	}
}

// LoadGeometry starts from DefaultGeometry and applies any environment overrides.
// Unparsable or non-positive values keep the default.
func LoadGeometry(logger logr.Logger) Geometry {
	g := DefaultGeometry()
	g.Cylinders = positiveInt(EnvInt(EnvDiskSize, g.Cylinders, logger), g.Cylinders)
	g.RPM = positiveInt(EnvInt(EnvRPM, g.RPM, logger), g.RPM)
	g.SectorSize = positiveInt(EnvInt(EnvSectorSize, g.SectorSize, logger), g.SectorSize)
	g.SeekRate = positiveFloat(EnvFloat(EnvSeekRate, g.SeekRate, logger), g.SeekRate)
	g.TransferRate = positiveFloat(EnvFloat(EnvTransferRate, g.TransferRate, logger), g.TransferRate)
	return g
}

func positiveInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func positiveFloat(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}
