package ptp

// ObjectInfo is the GetObjectInfo response payload.
type ObjectInfo struct {
	StorageID            uint32
	ObjectFormat          uint16
	ProtectionStatus      uint16
	ObjectCompressedSize  uint32
	ThumbFormat           uint16
	ThumbCompressedSize   uint32
	ThumbPixWidth         uint32
	ThumbPixHeight        uint32
	ImagePixWidth         uint32
	ImagePixHeight        uint32
	ImageBitDepth         uint32
	ParentObject          uint32
	AssociationType       uint16
	AssociationDesc       uint32
	SequenceNumber        uint32
	Filename              string
	CaptureDate           string
	ModificationDate      string
	Keywords              string
}

// DecodeObjectInfo reads an ObjectInfo from buf in wire order.
func DecodeObjectInfo(buf []byte) (ObjectInfo, error) {
	c := NewCursor(buf)
	var o ObjectInfo
	var err error

	if o.StorageID, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.ObjectFormat, err = c.ReadU16(); err != nil {
		return o, err
	}
	if o.ProtectionStatus, err = c.ReadU16(); err != nil {
		return o, err
	}
	if o.ObjectCompressedSize, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.ThumbFormat, err = c.ReadU16(); err != nil {
		return o, err
	}
	if o.ThumbCompressedSize, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.ThumbPixWidth, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.ThumbPixHeight, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.ImagePixWidth, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.ImagePixHeight, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.ImageBitDepth, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.ParentObject, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.AssociationType, err = c.ReadU16(); err != nil {
		return o, err
	}
	if o.AssociationDesc, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.SequenceNumber, err = c.ReadU32(); err != nil {
		return o, err
	}
	if o.Filename, err = c.ReadPTPString(); err != nil {
		return o, err
	}
	if o.CaptureDate, err = c.ReadPTPString(); err != nil {
		return o, err
	}
	if o.ModificationDate, err = c.ReadPTPString(); err != nil {
		return o, err
	}
	if o.Keywords, err = c.ReadPTPString(); err != nil {
		return o, err
	}
	return o, nil
}
