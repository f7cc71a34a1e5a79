package ptp

import "time"

// DefaultSessionID is the session id this core opens with by default.
// PTP requires a session id != 0; 3 is a conventional, harmless choice.
const DefaultSessionID uint32 = 3

// Session is the facade over the transaction engine: a thin set of
// operation wrappers that issue commands through the engine and decode
// their results through the structured payload decoders.
//
// A Session owns its Transport exclusively for its lifetime and is not
// safe for concurrent use — at most one operation may be in flight at a
// time.
type Session struct {
	transport Transport
	ep        Endpoints
	iface     int
	nextTID   uint32
	scratch   []byte
	timeout   time.Duration
	logger    Logger
}

// NewSession wraps an already-opened Transport whose interface has
// already been claimed and whose endpoints have already been resolved
// (that resolution is the USB collaborator's job — see ptp/usbtransport
// for a concrete gousb-backed implementation). The next tid starts at
// 0: OpenSession must be the first transaction issued on a fresh
// Session.
func NewSession(transport Transport, iface int, ep Endpoints, logger Logger) *Session {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Session{
		transport: transport,
		ep:        ep,
		iface:     iface,
		nextTID:   0,
		scratch:   make([]byte, 0, chunkSize*4),
		timeout:   defaultTimeout,
		logger:    logger,
	}
}

// SetTimeout overrides the default 2-second bulk I/O timeout.
func (s *Session) SetTimeout(d time.Duration) {
	s.timeout = d
}

// NextTID returns the transaction id that will be used by the next
// command issued on this session. Exposed for tests asserting tid
// monotonicity.
func (s *Session) NextTID() uint32 {
	return s.nextTID
}

// GetDeviceInfo issues GetDeviceInfo and decodes the result.
func (s *Session) GetDeviceInfo() (DeviceInfo, error) {
	data, err := s.command(OC_GetDeviceInfo, []uint32{0, 0, 0}, nil)
	if err != nil {
		return DeviceInfo{}, err
	}
	return DecodeDeviceInfo(data)
}

// OpenSession opens a PTP session using DefaultSessionID.
func (s *Session) OpenSession() error {
	_, err := s.command(OC_OpenSession, []uint32{DefaultSessionID, 0, 0}, nil)
	return err
}

// CloseSession closes the currently open PTP session.
func (s *Session) CloseSession() error {
	_, err := s.command(OC_CloseSession, nil, nil)
	return err
}

// GetStorageIDs returns the storage IDs available on the device.
func (s *Session) GetStorageIDs() ([]uint32, error) {
	data, err := s.command(OC_GetStorageIDs, nil, nil)
	if err != nil {
		return nil, err
	}
	c := NewCursor(data)
	ids, err := c.ReadU32Array()
	if err != nil {
		return nil, err
	}
	if err := c.ExpectEnd(); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetStorageInfo fetches StorageInfo for storageID.
func (s *Session) GetStorageInfo(storageID uint32) (StorageInfo, error) {
	data, err := s.command(OC_GetStorageInfo, []uint32{storageID}, nil)
	if err != nil {
		return StorageInfo{}, err
	}
	c := NewCursor(data)
	info, err := DecodeStorageInfo(c)
	if err != nil {
		return StorageInfo{}, err
	}
	if err := c.ExpectEnd(); err != nil {
		return StorageInfo{}, err
	}
	return info, nil
}

// handleParams packs the parameter triple shared by GetNumObjects and
// GetObjectHandles, in wire order: storageID, filter (0 if nil), handleID.
func handleParams(storageID, handleID uint32, filter *uint32) []uint32 {
	f := uint32(0)
	if filter != nil {
		f = *filter
	}
	return []uint32{storageID, f, handleID}
}

// GetNumObjects returns the object count under handleID on storageID.
// handleID == 0xFFFFFFFF means "root only"; 0x00000000 means "all".
func (s *Session) GetNumObjects(storageID, handleID uint32, filter *uint32) (uint32, error) {
	data, err := s.command(OC_GetNumObjects, handleParams(storageID, handleID, filter), nil)
	if err != nil {
		return 0, err
	}
	c := NewCursor(data)
	n, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	if err := c.ExpectEnd(); err != nil {
		return 0, err
	}
	return n, nil
}

// GetObjectHandles returns the object handles under handleID on
// storageID. handleID == 0xFFFFFFFF means "root only"; 0x00000000 means
// "all".
func (s *Session) GetObjectHandles(storageID, handleID uint32, filter *uint32) ([]uint32, error) {
	data, err := s.command(OC_GetObjectHandles, handleParams(storageID, handleID, filter), nil)
	if err != nil {
		return nil, err
	}
	c := NewCursor(data)
	handles, err := c.ReadU32Array()
	if err != nil {
		return nil, err
	}
	if err := c.ExpectEnd(); err != nil {
		return nil, err
	}
	return handles, nil
}

// GetObjectInfo fetches ObjectInfo for handle.
func (s *Session) GetObjectInfo(handle uint32) (ObjectInfo, error) {
	data, err := s.command(OC_GetObjectInfo, []uint32{handle}, nil)
	if err != nil {
		return ObjectInfo{}, err
	}
	return DecodeObjectInfo(data)
}

// GetObject fetches the raw object payload for handle. No further
// decoding is performed; object content (JPEG, RAW, etc.) is the
// caller's concern, not this package's.
func (s *Session) GetObject(handle uint32) ([]byte, error) {
	return s.command(OC_GetObject, []uint32{handle}, nil)
}

// GetDevicePropDesc fetches the PropInfo for propCode.
func (s *Session) GetDevicePropDesc(propCode uint16) (PropInfo, error) {
	data, err := s.command(OC_GetDevicePropDesc, []uint32{uint32(propCode)}, nil)
	if err != nil {
		return PropInfo{}, err
	}
	c := NewCursor(data)
	info, err := DecodePropInfo(c)
	if err != nil {
		return PropInfo{}, err
	}
	if err := c.ExpectEnd(); err != nil {
		return PropInfo{}, err
	}
	return info, nil
}

// Disconnect closes the PTP session (best effort — an error closing the
// session does not prevent interface release) and releases the
// interface. After Disconnect, the Session must not be used again.
func (s *Session) Disconnect() error {
	closeErr := s.CloseSession()
	if releaser, ok := s.transport.(interface{ ReleaseInterface(int) error }); ok {
		if err := releaser.ReleaseInterface(s.iface); err != nil {
			if closeErr == nil {
				return err
			}
		}
	}
	return closeErr
}
