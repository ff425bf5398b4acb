// Package timing derives access time from the head movement of a run.
package timing

import (
	"diskarm/src/config"
	"diskarm/src/types"
)

// RotationalLatency is the average rotational delay in ms: half a revolution.
func RotationalLatency(g config.Geometry) float64 {
	return 60_000 / float64(g.RPM*2)
}

// SeekTime is the time to move the head movement cylinders, in ms.
func SeekTime(g config.Geometry, movement int) float64 {
	return float64(movement) * g.SeekRate
}

// TransferTime is the time to transfer one sector for each request, in ms.
func TransferTime(g config.Geometry, requests int) float64 {
	return float64(requests*g.SectorSize) / (g.TransferRate * 1000)
}

// Estimate returns the full breakdown. Values are not rounded.
func Estimate(g config.Geometry, movement, requests int) types.Timing {
	t := types.Timing{
		Seek:       SeekTime(g, movement),
		Rotational: RotationalLatency(g),
		Transfer:   TransferTime(g, requests),
	}
	t.Total = t.Seek + t.Rotational + t.Transfer
	return t
}
