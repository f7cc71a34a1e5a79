package ptp

import "testing"

func TestDecodePropInfoFormNone(t *testing.T) {
	c := NewWriteCursor()
	c.WriteU16(0x5001) // BatteryLevel
	c.WriteU16(DTUint8)
	c.WriteU8(1) // GetSet
	c.WriteU8(1) // IsEnable
	c.WriteU8(100)
	c.WriteU8(87)
	c.WriteU8(byte(FormNone))

	got, err := DecodePropInfo(NewCursor(c.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Form.Flag != FormNone {
		t.Fatalf("Form.Flag = %v, want FormNone", got.Form.Flag)
	}
	if got.Current.Scalar != 87 {
		t.Fatalf("Current.Scalar = %d, want 87", got.Current.Scalar)
	}
}

func TestDecodePropInfoFormRange(t *testing.T) {
	c := NewWriteCursor()
	c.WriteU16(0x5003) // FNumber
	c.WriteU16(DTUint16)
	c.WriteU8(1)
	c.WriteU8(1)
	c.WriteU16(280)
	c.WriteU16(280)
	c.WriteU8(byte(FormRange))
	c.WriteU16(140) // min
	c.WriteU16(560) // max
	c.WriteU16(10)  // step

	got, err := DecodePropInfo(NewCursor(c.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Form.Flag != FormRange {
		t.Fatalf("Form.Flag = %v, want FormRange", got.Form.Flag)
	}
	if got.Form.Min.Scalar != 140 || got.Form.Max.Scalar != 560 || got.Form.Step.Scalar != 10 {
		t.Fatalf("Range = %+v", got.Form.Range)
	}
}

func TestDecodePropInfoFormEnumeration(t *testing.T) {
	c := NewWriteCursor()
	c.WriteU16(0x500E) // ExposureProgramMode
	c.WriteU16(DTUint16)
	c.WriteU8(1)
	c.WriteU8(1)
	c.WriteU16(1)
	c.WriteU16(1)
	c.WriteU8(byte(FormEnumeration))
	c.WriteU16(3) // 3 choices
	c.WriteU16(1)
	c.WriteU16(3)
	c.WriteU16(4)

	got, err := DecodePropInfo(NewCursor(c.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Form.Flag != FormEnumeration {
		t.Fatalf("Form.Flag = %v, want FormEnumeration", got.Form.Flag)
	}
	if len(got.Form.Enum) != 3 {
		t.Fatalf("len(Enum) = %d, want 3", len(got.Form.Enum))
	}
	if got.Form.Enum[1].Scalar != 3 {
		t.Fatalf("Enum[1] = %+v, want Scalar 3", got.Form.Enum[1])
	}
}

func TestDecodePropInfoUnrecognizedFormFlagIsNone(t *testing.T) {
	// 0x7F ("reserved") and any other unrecognized flag byte both fall
	// back to FormNone, rather than erroring.
	c := NewWriteCursor()
	c.WriteU16(0x5005)
	c.WriteU16(DTUint8)
	c.WriteU8(0)
	c.WriteU8(0)
	c.WriteU8(0)
	c.WriteU8(0)
	c.WriteU8(0x7F)

	got, err := DecodePropInfo(NewCursor(c.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Form.Flag != FormNone {
		t.Fatalf("Form.Flag = %v, want FormNone", got.Form.Flag)
	}
}
