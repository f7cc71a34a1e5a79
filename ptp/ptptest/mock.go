// Package ptptest provides a scripted ptp.Transport double for exercising
// the transaction engine and session facade without real USB hardware.
package ptptest

import (
	"fmt"
	"time"

	"github.com/nasa-jpl/go-ptp/ptp"
)

// MockTransport is a ptp.Transport backed by a queue of raw bulk-IN
// reads and a recording of every bulk-OUT write. It is scripted, not
// simulated: the test arranges the exact bytes a real device's bulk-IN
// endpoint would have produced (including chunk boundaries), and
// MockTransport hands them back to the engine one ReadBulk call at a
// time.
type MockTransport struct {
	// Reads is the queue of byte slices returned in order, one per
	// ReadBulk call. Each entry is copied into the caller's buffer (an
	// entry longer than the caller's buffer is an authoring error and
	// panics, since no real endpoint ever does a partial read into a
	// too-small caller buffer in this test harness).
	Reads [][]byte

	// Writes records every WriteBulk call's payload, in order.
	Writes [][]byte

	// ReadErr, if set, is returned by the next ReadBulk call instead of
	// consuming Reads.
	ReadErr error

	readPos int
}

// WriteBulk records b and returns len(b), nil.
func (m *MockTransport) WriteBulk(ep int, b []byte, timeout time.Duration) (int, error) {
	cp := make([]byte, len(b))
	copy(cp, b)
	m.Writes = append(m.Writes, cp)
	return len(b), nil
}

// ReadBulk copies the next queued read into b and returns its length.
func (m *MockTransport) ReadBulk(ep int, b []byte, timeout time.Duration) (int, error) {
	if m.ReadErr != nil {
		err := m.ReadErr
		m.ReadErr = nil
		return 0, err
	}
	if m.readPos >= len(m.Reads) {
		panic("ptptest: ReadBulk called with no queued reads remaining")
	}
	chunk := m.Reads[m.readPos]
	m.readPos++
	if len(chunk) > len(b) {
		panic(fmt.Sprintf("ptptest: queued read of %d bytes exceeds caller buffer of %d bytes", len(chunk), len(b)))
	}
	n := copy(b, chunk)
	return n, nil
}

// ReleaseInterface satisfies the optional interface ptp.Session.Disconnect
// probes for, so tests can assert Disconnect releases cleanly.
func (m *MockTransport) ReleaseInterface(iface int) error {
	return nil
}

// QueueContainer appends one or more bulk-IN chunks carrying the
// encoding of a single container, splitting it at chunkSize boundaries
// the way a real bulk endpoint would, so that a buffer whose length is
// an exact multiple of chunkSize is followed by one final empty (short)
// read.
func (m *MockTransport) QueueContainer(raw []byte, chunkSize int) {
	for len(raw) >= chunkSize {
		m.Reads = append(m.Reads, raw[:chunkSize])
		raw = raw[chunkSize:]
	}
	m.Reads = append(m.Reads, raw)
}

// NewSession builds a ptp.Session over this mock, with endpoint numbers
// that are never interpreted (a mock has no notion of real addresses),
// for use by tests of the facade layer.
func NewSession(m *MockTransport, logger ptp.Logger) *ptp.Session {
	return ptp.NewSession(m, 0, ptp.Endpoints{BulkIn: 0x81, BulkOut: 0x01, InterruptIn: 0x82}, logger)
}
