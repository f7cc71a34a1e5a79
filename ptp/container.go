package ptp

// ContainerKind is the PTP/USB container type field.
type ContainerKind uint16

const (
	ContainerCommand  ContainerKind = 1
	ContainerData     ContainerKind = 2
	ContainerResponse ContainerKind = 3
	ContainerEvent    ContainerKind = 4
)

func (k ContainerKind) String() string {
	switch k {
	case ContainerCommand:
		return "Command"
	case ContainerData:
		return "Data"
	case ContainerResponse:
		return "Response"
	case ContainerEvent:
		return "Event"
	default:
		return "Unknown"
	}
}

// containerHeaderLen is the fixed 12-byte header: length(4) + type(2) +
// code(2) + transaction_id(4).
const containerHeaderLen = 12

// Container is a parsed PTP/USB frame: its type, operation/response
// code, transaction id, and payload (everything past the header).
type Container struct {
	Kind    ContainerKind
	Code    uint16
	TID     uint32
	Payload []byte
}

// EmitContainer encodes a single container: length, type, code, tid,
// then payload, as one contiguous byte slice.
func EmitContainer(kind ContainerKind, code uint16, tid uint32, payload []byte) []byte {
	c := NewWriteCursor()
	c.WriteU32(uint32(containerHeaderLen + len(payload)))
	c.WriteU16(uint16(kind))
	c.WriteU16(code)
	c.WriteU32(tid)
	c.WriteBytes(payload)
	return c.Bytes()
}

// EmitCommand packs params as a u32 payload and emits a Command
// container.
func EmitCommand(code uint16, tid uint32, params []uint32) []byte {
	p := NewWriteCursor()
	for _, v := range params {
		p.WriteU32(v)
	}
	return EmitContainer(ContainerCommand, code, tid, p.Bytes())
}

// ParseContainer reads the 12-byte header from buf and returns the
// parsed Container. It does not require len(buf) == the header's
// advertised length: payload is the bytes after the header, up to the
// advertised length or the end of buf, whichever comes first, so callers
// may pass a buffer that holds more (or less) than one container's worth
// of bytes; a length field under 12 is tolerated as an empty payload
// rather than an error.
func ParseContainer(buf []byte) (Container, error) {
	c := NewCursor(buf)
	length, err := c.ReadU32()
	if err != nil {
		return Container{}, err
	}
	typeWord, err := c.ReadU16()
	if err != nil {
		return Container{}, err
	}
	kind, err := parseKind(typeWord)
	if err != nil {
		return Container{}, err
	}
	code, err := c.ReadU16()
	if err != nil {
		return Container{}, err
	}
	tid, err := c.ReadU32()
	if err != nil {
		return Container{}, err
	}

	payloadLen := 0
	if length > containerHeaderLen {
		payloadLen = int(length) - containerHeaderLen
	}
	rest := c.Remaining()
	if payloadLen > len(rest) {
		payloadLen = len(rest)
	}
	return Container{Kind: kind, Code: code, TID: tid, Payload: rest[:payloadLen]}, nil
}

func parseKind(typeWord uint16) (ContainerKind, error) {
	switch ContainerKind(typeWord) {
	case ContainerCommand, ContainerData, ContainerResponse, ContainerEvent:
		return ContainerKind(typeWord), nil
	default:
		return 0, errMalformed("invalid container type 0x%04x", typeWord)
	}
}
