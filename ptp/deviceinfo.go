package ptp

// DeviceInfo is the GetDeviceInfo response payload.
type DeviceInfo struct {
	Version                  uint16
	VendorExID                uint32
	VendorExVersion           uint16
	VendorExtensionDesc       string
	FunctionalMode            uint16
	OperationsSupported       []uint16
	EventsSupported           []uint16
	DevicePropertiesSupported []uint16
	CaptureFormats            []uint16
	ImageFormats              []uint16
	Manufacturer              string
	Model                     string
	DeviceVersion             string
	SerialNumber              string
}

// DecodeDeviceInfo reads a DeviceInfo from buf in wire order. It does
// not call ExpectEnd: some responders append vendor extension bytes
// after the standard fields.
func DecodeDeviceInfo(buf []byte) (DeviceInfo, error) {
	c := NewCursor(buf)
	var d DeviceInfo
	var err error

	if d.Version, err = c.ReadU16(); err != nil {
		return d, err
	}
	if d.VendorExID, err = c.ReadU32(); err != nil {
		return d, err
	}
	if d.VendorExVersion, err = c.ReadU16(); err != nil {
		return d, err
	}
	if d.VendorExtensionDesc, err = c.ReadPTPString(); err != nil {
		return d, err
	}
	if d.FunctionalMode, err = c.ReadU16(); err != nil {
		return d, err
	}
	if d.OperationsSupported, err = c.ReadU16Array(); err != nil {
		return d, err
	}
	if d.EventsSupported, err = c.ReadU16Array(); err != nil {
		return d, err
	}
	if d.DevicePropertiesSupported, err = c.ReadU16Array(); err != nil {
		return d, err
	}
	if d.CaptureFormats, err = c.ReadU16Array(); err != nil {
		return d, err
	}
	if d.ImageFormats, err = c.ReadU16Array(); err != nil {
		return d, err
	}
	if d.Manufacturer, err = c.ReadPTPString(); err != nil {
		return d, err
	}
	if d.Model, err = c.ReadPTPString(); err != nil {
		return d, err
	}
	if d.DeviceVersion, err = c.ReadPTPString(); err != nil {
		return d, err
	}
	if d.SerialNumber, err = c.ReadPTPString(); err != nil {
		return d, err
	}
	return d, nil
}
