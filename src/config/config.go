package config

const (
	DefaultDiskSize = 200

	RPM          = 7200
	SectorSize   = 512 // bytes
	SeekRate     = 0.1 // ms per cylinder
	TransferRate = 125 // sectors per ms

	MinRandomRequests = 5
	MaxRandomRequests = 15
)

// Environment variables that override the default geometry.
const (
	EnvDiskSize     = "DISKARM_DISK_SIZE"
	EnvRPM          = "DISKARM_RPM"
	EnvSeekRate     = "DISKARM_SEEK_RATE"
	EnvTransferRate = "DISKARM_TRANSFER_RATE"
	EnvSectorSize   = "DISKARM_SECTOR_SIZE"
)
