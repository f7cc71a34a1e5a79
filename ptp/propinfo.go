package ptp

// FormFlag is PropInfo's FormFlag byte, selecting the shape of FormData.
type FormFlag byte

const (
	FormNone        FormFlag = 0x00
	FormRange       FormFlag = 0x01
	FormEnumeration FormFlag = 0x02
)

// FormData is PropInfo's optional value-domain descriptor: None, a
// Range{Min,Max,Step}, or an Enumeration of allowed values. Flag selects
// which of Range/Enum is populated; for FormNone neither is.
type FormData struct {
	Flag FormFlag
	Range
	Enum []DataType
}

// Range describes a property's allowed value range.
type Range struct {
	Min  DataType
	Max  DataType
	Step DataType
}

// PropInfo is the GetDevicePropDesc response payload. Its decode is
// two-phase: DataType is read first, then threaded explicitly into
// every subsequent tagged value read, rather than carrying the type tag
// on DataType itself.
type PropInfo struct {
	PropertyCode   uint16
	DataType       uint16
	GetSet         byte
	IsEnable       byte
	FactoryDefault DataType
	Current        DataType
	Form           FormData
}

// DecodePropInfo reads a PropInfo from c in wire order.
func DecodePropInfo(c *Cursor) (PropInfo, error) {
	var p PropInfo
	var err error

	if p.PropertyCode, err = c.ReadU16(); err != nil {
		return p, err
	}
	if p.DataType, err = c.ReadU16(); err != nil {
		return p, err
	}
	if p.GetSet, err = c.ReadU8(); err != nil {
		return p, err
	}
	if p.IsEnable, err = c.ReadU8(); err != nil {
		return p, err
	}
	if p.FactoryDefault, err = ReadTagged(p.DataType, c); err != nil {
		return p, err
	}
	if p.Current, err = ReadTagged(p.DataType, c); err != nil {
		return p, err
	}

	flagByte, err := c.ReadU8()
	if err != nil {
		return p, err
	}
	switch FormFlag(flagByte) {
	case FormRange:
		var r Range
		if r.Min, err = ReadTagged(p.DataType, c); err != nil {
			return p, err
		}
		if r.Max, err = ReadTagged(p.DataType, c); err != nil {
			return p, err
		}
		if r.Step, err = ReadTagged(p.DataType, c); err != nil {
			return p, err
		}
		p.Form = FormData{Flag: FormRange, Range: r}
	case FormEnumeration:
		count, err := c.ReadU16()
		if err != nil {
			return p, err
		}
		vals := make([]DataType, 0, count)
		for i := uint16(0); i < count; i++ {
			v, err := ReadTagged(p.DataType, c)
			if err != nil {
				return p, err
			}
			vals = append(vals, v)
		}
		p.Form = FormData{Flag: FormEnumeration, Enum: vals}
	default:
		p.Form = FormData{Flag: FormNone}
	}
	return p, nil
}
