package ptp

import "time"

// Transport is the USB collaborator the transaction engine depends on.
// It is deliberately minimal: bulk writes and reads with a timeout,
// returning the number of bytes actually transferred. Device
// enumeration, interface claim, and endpoint discovery happen before a
// Transport is handed to a Session.
type Transport interface {
	// WriteBulk writes b to endpoint ep, returning the number of bytes
	// written before timeout elapses.
	WriteBulk(ep int, b []byte, timeout time.Duration) (int, error)

	// ReadBulk reads into b from endpoint ep, returning the number of
	// bytes read before timeout elapses. A return of n < len(b) signals
	// a short packet (transfer end), per the USB bulk transfer protocol.
	ReadBulk(ep int, b []byte, timeout time.Duration) (int, error)
}

// Endpoints names the three endpoint addresses a still-image-class USB
// interface exposes, as discovered by the transport's collaborator
// during session construction.
type Endpoints struct {
	BulkIn      int
	BulkOut     int
	InterruptIn int
}

// Logger is the structured logger interface the core accepts from its
// host: logging goes to a logger the host provides, never straight to
// stdlib log. A nil Logger is replaced with a no-op implementation.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{}) {}
