package ptp

import (
	"bytes"
	"errors"
	"testing"
)

func TestCursorScalarRoundTrip(t *testing.T) {
	w := NewWriteCursor()
	w.WriteU8(0xAB)
	w.WriteI8(-5)
	w.WriteU16(0xBEEF)
	w.WriteI16(-1000)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-70000)
	w.WriteU64(0x0102030405060708)
	w.WriteI64(-1)
	w.WriteU128(Int128{Lo: 1, Hi: 2})

	r := NewCursor(w.Bytes())
	if v, err := r.ReadU8(); err != nil || v != 0xAB {
		t.Fatalf("ReadU8 = %v, %v", v, err)
	}
	if v, err := r.ReadI8(); err != nil || v != -5 {
		t.Fatalf("ReadI8 = %v, %v", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0xBEEF {
		t.Fatalf("ReadU16 = %v, %v", v, err)
	}
	if v, err := r.ReadI16(); err != nil || v != -1000 {
		t.Fatalf("ReadI16 = %v, %v", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %v, %v", v, err)
	}
	if v, err := r.ReadI32(); err != nil || v != -70000 {
		t.Fatalf("ReadI32 = %v, %v", v, err)
	}
	if v, err := r.ReadU64(); err != nil || v != 0x0102030405060708 {
		t.Fatalf("ReadU64 = %v, %v", v, err)
	}
	if v, err := r.ReadI64(); err != nil || v != -1 {
		t.Fatalf("ReadI64 = %v, %v", v, err)
	}
	v128, err := r.ReadU128()
	if err != nil || v128.Lo != 1 || v128.Hi != 2 {
		t.Fatalf("ReadU128 = %+v, %v", v128, err)
	}
	if err := r.ExpectEnd(); err != nil {
		t.Fatalf("ExpectEnd: %v", err)
	}
}

func TestCursorPTPStringRoundTrip(t *testing.T) {
	cases := []string{"", "hello", "café", "\U0001F4F7"}
	for _, s := range cases {
		w := NewWriteCursor()
		w.WritePTPString(s)
		r := NewCursor(w.Bytes())
		got, err := r.ReadPTPString()
		if err != nil {
			t.Fatalf("ReadPTPString(%q): %v", s, err)
		}
		if got != s {
			t.Fatalf("round trip = %q, want %q", got, s)
		}
		if err := r.ExpectEnd(); err != nil {
			t.Fatalf("ExpectEnd after %q: %v", s, err)
		}
	}
}

func TestCursorPTPStringEmptyIsSingleZeroByte(t *testing.T) {
	w := NewWriteCursor()
	w.WritePTPString("")
	if !bytes.Equal(w.Bytes(), []byte{0x00}) {
		t.Fatalf("empty string encoding = % x, want [00]", w.Bytes())
	}
}

func TestCursorPTPStringInvalidSurrogateIsMalformed(t *testing.T) {
	w := NewWriteCursor()
	w.WriteU8(2) // 1 code unit + NUL
	w.WriteU16(0xD800)
	w.WriteU16(0x0000)
	_, err := NewCursor(w.Bytes()).ReadPTPString()
	if err == nil {
		t.Fatal("expected an error for an unpaired high surrogate")
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Kind != KindMalformed {
		t.Fatalf("error = %v, want KindMalformed", err)
	}
}

func TestCursorPTPStringLoneLowSurrogateIsMalformed(t *testing.T) {
	w := NewWriteCursor()
	w.WriteU8(2) // 1 code unit + NUL
	w.WriteU16(0xDC00)
	w.WriteU16(0x0000)
	_, err := NewCursor(w.Bytes()).ReadPTPString()
	if err == nil {
		t.Fatal("expected an error for a lone low surrogate")
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Kind != KindMalformed {
		t.Fatalf("error = %v, want KindMalformed", err)
	}
}

func TestCursorReadPastEndIsMalformed(t *testing.T) {
	r := NewCursor([]byte{0x01})
	_, err := r.ReadU32()
	if err == nil {
		t.Fatal("expected an error reading 4 bytes from a 1-byte buffer")
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Kind != KindMalformed {
		t.Fatalf("error = %v, want KindMalformed", err)
	}
}

func TestCursorExpectEndFailsOnTrailingBytes(t *testing.T) {
	r := NewCursor([]byte{0x01, 0x02})
	if _, err := r.ReadU8(); err != nil {
		t.Fatal(err)
	}
	if err := r.ExpectEnd(); err == nil {
		t.Fatal("expected ExpectEnd to fail with one trailing byte")
	}
}

func TestCursorU32ArrayRoundTrip(t *testing.T) {
	w := NewWriteCursor()
	want := []uint32{1, 2, 3, 0xFFFFFFFF}
	w.WriteU32Array(want)
	got, err := NewCursor(w.Bytes()).ReadU32Array()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCursorU32ArrayEmpty(t *testing.T) {
	w := NewWriteCursor()
	w.WriteU32Array(nil)
	got, err := NewCursor(w.Bytes()).ReadU32Array()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
