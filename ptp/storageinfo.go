package ptp

// StorageInfo is the GetStorageInfo response payload.
type StorageInfo struct {
	StorageType        uint16
	FilesystemType      uint16
	AccessCapability    uint16
	MaxCapacity         uint64
	FreeSpaceInBytes    uint64
	FreeSpaceInImages   uint32
	StorageDescription  string
	VolumeLabel         string
}

// DecodeStorageInfo reads a StorageInfo from c in wire order. Callers
// that expect an exact-length payload should call c.ExpectEnd()
// afterward; this decoder does not assert it itself.
func DecodeStorageInfo(c *Cursor) (StorageInfo, error) {
	var s StorageInfo
	var err error

	if s.StorageType, err = c.ReadU16(); err != nil {
		return s, err
	}
	if s.FilesystemType, err = c.ReadU16(); err != nil {
		return s, err
	}
	if s.AccessCapability, err = c.ReadU16(); err != nil {
		return s, err
	}
	if s.MaxCapacity, err = c.ReadU64(); err != nil {
		return s, err
	}
	if s.FreeSpaceInBytes, err = c.ReadU64(); err != nil {
		return s, err
	}
	if s.FreeSpaceInImages, err = c.ReadU32(); err != nil {
		return s, err
	}
	if s.StorageDescription, err = c.ReadPTPString(); err != nil {
		return s, err
	}
	if s.VolumeLabel, err = c.ReadPTPString(); err != nil {
		return s, err
	}
	return s, nil
}
