package ptp

import (
	"encoding/binary"
	"unicode/utf16"
)

// Cursor is a byte-position walker over a PTP payload. All multi-byte
// reads and writes are little-endian, per the PTP/USB wire format.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for reading from position 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewWriteCursor returns a Cursor backed by an empty, growable buffer
// suitable for encoding.
func NewWriteCursor() *Cursor {
	return &Cursor{buf: make([]byte, 0, 64)}
}

// Bytes returns the cursor's underlying buffer (the full thing, not just
// what's left to read).
func (c *Cursor) Bytes() []byte {
	return c.buf
}

// Remaining returns the bytes not yet consumed.
func (c *Cursor) Remaining() []byte {
	if c.pos >= len(c.buf) {
		return nil
	}
	return c.buf[c.pos:]
}

// Len returns the number of unconsumed bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

func (c *Cursor) need(n int) ([]byte, error) {
	if c.Len() < n {
		return nil, errMalformed("unexpected end of message: need %d bytes, have %d", n, c.Len())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU8 reads a single byte.
func (c *Cursor) ReadU8() (byte, error) {
	b, err := c.need(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads a signed byte.
func (c *Cursor) ReadI8() (int8, error) {
	b, err := c.ReadU8()
	return int8(b), err
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.need(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads a little-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.need(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI32 reads a little-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.need(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI64 reads a little-endian int64.
func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

// Int128 is a 128-bit integer carried as a (lo, hi) pair of uint64s:
// lo is always read and written first.
type Int128 struct {
	Lo uint64
	Hi uint64
}

// ReadU128 reads lo then hi, returning an Int128.
func (c *Cursor) ReadU128() (Int128, error) {
	lo, err := c.ReadU64()
	if err != nil {
		return Int128{}, err
	}
	hi, err := c.ReadU64()
	if err != nil {
		return Int128{}, err
	}
	return Int128{Lo: lo, Hi: hi}, nil
}

// ReadPTPString reads a PTP string: a u8 character count n (including
// the trailing NUL code unit), then n-1 UTF-16LE code units, then the
// NUL. n==0 means an empty string with no further bytes consumed.
func (c *Cursor) ReadPTPString() (string, error) {
	n, err := c.ReadU8()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	units := make([]uint16, 0, int(n)-1)
	for i := 0; i < int(n)-1; i++ {
		u, err := c.ReadU16()
		if err != nil {
			return "", err
		}
		units = append(units, u)
	}
	if _, err := c.ReadU16(); err != nil { // trailing NUL
		return "", err
	}
	runes := utf16.Decode(units)
	prevHigh := false
	for i, u := range units {
		// utf16.Decode silently substitutes the replacement character
		// for ill-formed surrogate pairs; detect that explicitly so
		// malformed input is reported rather than silently mangled.
		switch {
		case u >= 0xD800 && u <= 0xDBFF: // high surrogate
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return "", errMalformed("invalid UTF-16 string data: %v", units)
			}
			prevHigh = true
			continue
		case u >= 0xDC00 && u <= 0xDFFF: // low surrogate
			if !prevHigh {
				return "", errMalformed("invalid UTF-16 string data: %v", units)
			}
		}
		prevHigh = false
	}
	return string(runes), nil
}

// ExpectEnd fails with KindMalformed if any bytes remain unconsumed.
func (c *Cursor) ExpectEnd() error {
	if c.Len() != 0 {
		return errMalformed("response %d bytes, expected %d bytes", len(c.buf), c.pos)
	}
	return nil
}

// --- writers ---

func (c *Cursor) WriteU8(v byte) {
	c.buf = append(c.buf, v)
}

func (c *Cursor) WriteI8(v int8) {
	c.WriteU8(byte(v))
}

func (c *Cursor) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	c.buf = append(c.buf, b[:]...)
}

func (c *Cursor) WriteI16(v int16) {
	c.WriteU16(uint16(v))
}

func (c *Cursor) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	c.buf = append(c.buf, b[:]...)
}

func (c *Cursor) WriteI32(v int32) {
	c.WriteU32(uint32(v))
}

func (c *Cursor) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	c.buf = append(c.buf, b[:]...)
}

func (c *Cursor) WriteI64(v int64) {
	c.WriteU64(uint64(v))
}

// WriteU128 writes lo then hi, mirroring ReadU128.
func (c *Cursor) WriteU128(v Int128) {
	c.WriteU64(v.Lo)
	c.WriteU64(v.Hi)
}

// WriteBytes appends raw bytes with no framing.
func (c *Cursor) WriteBytes(b []byte) {
	c.buf = append(c.buf, b...)
}

// WritePTPString emits the PTP string framing: if chars==0, a single
// 0x00 byte; otherwise a u8 count of chars+1 (the code units plus the
// trailing NUL, as ReadPTPString expects), each UTF-16 code unit, then
// two NUL bytes.
func (c *Cursor) WritePTPString(s string) {
	units := utf16.Encode([]rune(s))
	if len(units) == 0 {
		c.WriteU8(0)
		return
	}
	c.WriteU8(byte(len(units) + 1))
	for _, u := range units {
		c.WriteU16(u)
	}
	c.WriteU16(0)
}

// ReadArray reads a u32 count followed by exactly that many elements
// decoded with readElem. An early end of buffer is a decode failure.
func ReadArray[T any](c *Cursor, readElem func(*Cursor) (T, error)) ([]T, error) {
	n, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := readElem(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteArray writes a u32 count followed by each element encoded with
// writeElem.
func WriteArray[T any](c *Cursor, items []T, writeElem func(*Cursor, T)) {
	c.WriteU32(uint32(len(items)))
	for _, v := range items {
		writeElem(c, v)
	}
}

// ReadU16Array reads a u32-counted array of u16s, the shape used by
// DeviceInfo's OperationsSupported/EventsSupported/etc.
func (c *Cursor) ReadU16Array() ([]uint16, error) {
	return ReadArray(c, (*Cursor).ReadU16)
}

// WriteU16Array mirrors ReadU16Array.
func (c *Cursor) WriteU16Array(vs []uint16) {
	WriteArray(c, vs, (*Cursor).WriteU16)
}

// ReadU32Array reads a u32-counted array of u32s, the shape used by
// GetObjectHandles/GetStorageIDs results.
func (c *Cursor) ReadU32Array() ([]uint32, error) {
	return ReadArray(c, (*Cursor).ReadU32)
}

// WriteU32Array mirrors ReadU32Array.
func (c *Cursor) WriteU32Array(vs []uint32) {
	WriteArray(c, vs, (*Cursor).WriteU32)
}
