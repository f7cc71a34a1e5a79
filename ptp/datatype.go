package ptp

// Kind tags for the PTP tagged data type.
const (
	DTUndef   uint16 = 0x0000
	DTInt8    uint16 = 0x0001
	DTUint8   uint16 = 0x0002
	DTInt16   uint16 = 0x0003
	DTUint16  uint16 = 0x0004
	DTInt32   uint16 = 0x0005
	DTUint32  uint16 = 0x0006
	DTInt64   uint16 = 0x0007
	DTUint64  uint16 = 0x0008
	DTInt128  uint16 = 0x0009
	DTUint128 uint16 = 0x000A

	DTAInt8    uint16 = 0x4001
	DTAUint8   uint16 = 0x4002
	DTAInt16   uint16 = 0x4003
	DTAUint16  uint16 = 0x4004
	DTAInt32   uint16 = 0x4005
	DTAUint32  uint16 = 0x4006
	DTAInt64   uint16 = 0x4007
	DTAUint64  uint16 = 0x4008
	DTAInt128  uint16 = 0x4009
	DTAUint128 uint16 = 0x400A

	DTStr uint16 = 0xFFFF
)

// DataType is the tagged sum over PTP primitive and array types used
// for property values. It is a closed discriminated union: Kind selects
// exactly one of the scalar, array, or string fields below. Implemented
// as a struct-with-tag rather than an interface hierarchy, since the set
// of kinds is closed and fixed by the PTP standard.
type DataType struct {
	Kind uint16

	// Scalar holds the numeric value for any non-array, non-string kind,
	// sign-extended/zero-extended into int64 for the 8..64-bit kinds.
	Scalar int64

	// Scalar128 holds the 128-bit value when Kind is DTInt128/DTUint128.
	Scalar128 Int128

	// Array holds the element values for any 0x4xxx array kind. 8..64-bit
	// elements are stored widened into int64; 128-bit elements use
	// Array128.
	Array []int64

	// Array128 holds the element values when Kind is DTAInt128/DTAUint128.
	Array128 []Int128

	// Str holds the value when Kind is DTStr.
	Str string
}

// Undef is the zero-value DataType (Kind == DTUndef), carrying no bytes
// on the wire.
var Undef = DataType{Kind: DTUndef}

// Int8Value/Uint8Value/... construct a scalar DataType of the given kind.
func Int8Value(v int8) DataType     { return DataType{Kind: DTInt8, Scalar: int64(v)} }
func Uint8Value(v uint8) DataType   { return DataType{Kind: DTUint8, Scalar: int64(v)} }
func Int16Value(v int16) DataType   { return DataType{Kind: DTInt16, Scalar: int64(v)} }
func Uint16Value(v uint16) DataType { return DataType{Kind: DTUint16, Scalar: int64(v)} }
func Int32Value(v int32) DataType   { return DataType{Kind: DTInt32, Scalar: int64(v)} }
func Uint32Value(v uint32) DataType { return DataType{Kind: DTUint32, Scalar: int64(v)} }
func Int64Value(v int64) DataType   { return DataType{Kind: DTInt64, Scalar: v} }
func Uint64Value(v uint64) DataType { return DataType{Kind: DTUint64, Scalar: int64(v)} }
func StrValue(v string) DataType    { return DataType{Kind: DTStr, Str: v} }

// encode appends the wire representation of v (its payload only, no
// type tag — the tag is carried out-of-band by PropInfo/callers).
func (v DataType) encode(c *Cursor) {
	switch v.Kind {
	case DTUndef:
		// no payload
	case DTInt8:
		c.WriteI8(int8(v.Scalar))
	case DTUint8:
		c.WriteU8(byte(v.Scalar))
	case DTInt16:
		c.WriteI16(int16(v.Scalar))
	case DTUint16:
		c.WriteU16(uint16(v.Scalar))
	case DTInt32:
		c.WriteI32(int32(v.Scalar))
	case DTUint32:
		c.WriteU32(uint32(v.Scalar))
	case DTInt64:
		c.WriteI64(v.Scalar)
	case DTUint64:
		c.WriteU64(uint64(v.Scalar))
	case DTInt128, DTUint128:
		c.WriteU128(v.Scalar128)
	case DTAInt8:
		WriteArray(c, v.Array, func(c *Cursor, e int64) { c.WriteI8(int8(e)) })
	case DTAUint8:
		WriteArray(c, v.Array, func(c *Cursor, e int64) { c.WriteU8(byte(e)) })
	case DTAInt16:
		WriteArray(c, v.Array, func(c *Cursor, e int64) { c.WriteI16(int16(e)) })
	case DTAUint16:
		WriteArray(c, v.Array, func(c *Cursor, e int64) { c.WriteU16(uint16(e)) })
	case DTAInt32:
		WriteArray(c, v.Array, func(c *Cursor, e int64) { c.WriteI32(int32(e)) })
	case DTAUint32:
		WriteArray(c, v.Array, func(c *Cursor, e int64) { c.WriteU32(uint32(e)) })
	case DTAInt64:
		WriteArray(c, v.Array, func(c *Cursor, e int64) { c.WriteI64(e) })
	case DTAUint64:
		WriteArray(c, v.Array, func(c *Cursor, e int64) { c.WriteU64(uint64(e)) })
	case DTAInt128, DTAUint128:
		WriteArray(c, v.Array128, func(c *Cursor, e Int128) { c.WriteU128(e) })
	case DTStr:
		c.WritePTPString(v.Str)
	}
}

// Encode returns the wire bytes for v.
func (v DataType) Encode() []byte {
	c := NewWriteCursor()
	v.encode(c)
	return c.Bytes()
}

// ReadTagged reads a value whose wire type is kind (one of the DT*
// constants) from c. An unrecognized kind fails Malformed rather than
// silently returning Undef and leaving the cursor desynchronized — see
// DESIGN.md.
func ReadTagged(kind uint16, c *Cursor) (DataType, error) {
	switch kind {
	case DTUndef:
		return Undef, nil
	case DTInt8:
		v, err := c.ReadI8()
		return DataType{Kind: kind, Scalar: int64(v)}, err
	case DTUint8:
		v, err := c.ReadU8()
		return DataType{Kind: kind, Scalar: int64(v)}, err
	case DTInt16:
		v, err := c.ReadI16()
		return DataType{Kind: kind, Scalar: int64(v)}, err
	case DTUint16:
		v, err := c.ReadU16()
		return DataType{Kind: kind, Scalar: int64(v)}, err
	case DTInt32:
		v, err := c.ReadI32()
		return DataType{Kind: kind, Scalar: int64(v)}, err
	case DTUint32:
		v, err := c.ReadU32()
		return DataType{Kind: kind, Scalar: int64(v)}, err
	case DTInt64:
		v, err := c.ReadI64()
		return DataType{Kind: kind, Scalar: v}, err
	case DTUint64:
		v, err := c.ReadU64()
		return DataType{Kind: kind, Scalar: int64(v)}, err
	case DTInt128, DTUint128:
		v, err := c.ReadU128()
		return DataType{Kind: kind, Scalar128: v}, err
	case DTAInt8:
		v, err := ReadArray(c, func(c *Cursor) (int64, error) { r, e := c.ReadI8(); return int64(r), e })
		return DataType{Kind: kind, Array: v}, err
	case DTAUint8:
		v, err := ReadArray(c, func(c *Cursor) (int64, error) { r, e := c.ReadU8(); return int64(r), e })
		return DataType{Kind: kind, Array: v}, err
	case DTAInt16:
		v, err := ReadArray(c, func(c *Cursor) (int64, error) { r, e := c.ReadI16(); return int64(r), e })
		return DataType{Kind: kind, Array: v}, err
	case DTAUint16:
		v, err := ReadArray(c, func(c *Cursor) (int64, error) { r, e := c.ReadU16(); return int64(r), e })
		return DataType{Kind: kind, Array: v}, err
	case DTAInt32:
		v, err := ReadArray(c, func(c *Cursor) (int64, error) { r, e := c.ReadI32(); return int64(r), e })
		return DataType{Kind: kind, Array: v}, err
	case DTAUint32:
		v, err := ReadArray(c, func(c *Cursor) (int64, error) { r, e := c.ReadU32(); return int64(r), e })
		return DataType{Kind: kind, Array: v}, err
	case DTAInt64:
		v, err := ReadArray(c, func(c *Cursor) (int64, error) { return c.ReadI64() })
		return DataType{Kind: kind, Array: v}, err
	case DTAUint64:
		v, err := ReadArray(c, func(c *Cursor) (int64, error) { r, e := c.ReadU64(); return int64(r), e })
		return DataType{Kind: kind, Array: v}, err
	case DTAInt128, DTAUint128:
		v, err := ReadArray(c, (*Cursor).ReadU128)
		return DataType{Kind: kind, Array128: v}, err
	case DTStr:
		v, err := c.ReadPTPString()
		return DataType{Kind: kind, Str: v}, err
	default:
		return Undef, errMalformed("unrecognized PTP data type code 0x%04x", kind)
	}
}
