package ptp

import "time"

// chunkSize is the bulk-IN read granularity used while reassembling a
// container.
const chunkSize = 256 * 1024

// defaultTimeout is the default bulk I/O timeout.
const defaultTimeout = 2 * time.Second

// command drives one Command -> (optional Data-out) -> [Data-in] ->
// Response exchange. It returns the Data-in payload (or nil if the
// operation carried none) on a Response(Ok), or an error otherwise.
//
// tid is allocated before any I/O and the session's next tid counter is
// advanced immediately after the write phase, even if the read phase
// later fails — transaction ids are never reused.
func (s *Session) command(code uint16, params []uint32, dataOut []byte) ([]byte, error) {
	tid := s.nextTID

	s.logger.Debugf("write Command 0x%04x (%s) tid=%d params=%v", code, StandardCommandCode.Name(code), tid, params)
	cmd := EmitCommand(code, tid, params)
	if _, err := s.writeBulk(s.ep.BulkOut, cmd); err != nil {
		s.nextTID++
		return nil, err
	}

	if dataOut != nil {
		s.logger.Debugf("write Data tid=%d len=%d", tid, len(dataOut))
		data := EmitContainer(ContainerData, code, tid, dataOut)
		if _, err := s.writeBulk(s.ep.BulkOut, data); err != nil {
			s.nextTID++
			return nil, err
		}
	}

	s.nextTID++

	var dataIn, pending []byte
	for {
		// One bulk transfer may carry more than one container (a Data
		// container followed by its Response); the bytes after the
		// container just parsed are parsed before reading again.
		var container Container
		var err error
		if len(pending) > 0 {
			container, err = ParseContainer(pending)
		} else {
			container, err = s.readContainer()
			pending = s.scratch
		}
		if err != nil {
			return nil, err
		}
		pending = pending[containerHeaderLen+len(container.Payload):]
		if container.TID != tid {
			// Defensive: ignore containers belonging to another
			// transaction. In practice the bus is serialized and this
			// never triggers.
			continue
		}
		switch container.Kind {
		case ContainerData:
			// Copied: the scratch buffer is reused by the next read.
			dataIn = append([]byte(nil), container.Payload...)
			continue
		case ContainerResponse:
			s.logger.Debugf("read Response 0x%04x (%s) tid=%d", container.Code, StandardResponseCode.Name(container.Code), tid)
			if container.Code != RC_Ok {
				return nil, errResponse(container.Code)
			}
			return dataIn, nil
		default:
			return nil, errMalformed("unexpected container type %s while awaiting response", container.Kind)
		}
	}
}

// readContainer clears the scratch buffer, reads bulk-IN chunks until a
// short packet terminates the transfer, and parses the accumulated
// bytes as one container.
func (s *Session) readContainer() (Container, error) {
	s.scratch = s.scratch[:0]
	for {
		if cap(s.scratch)-len(s.scratch) < chunkSize {
			grown := make([]byte, len(s.scratch), len(s.scratch)+chunkSize)
			copy(grown, s.scratch)
			s.scratch = grown
		}
		headroom := s.scratch[len(s.scratch):cap(s.scratch)][:chunkSize]
		n, err := s.readBulk(s.ep.BulkIn, headroom)
		if err != nil {
			return Container{}, err
		}
		s.scratch = s.scratch[:len(s.scratch)+n]
		if n < chunkSize {
			break
		}
	}
	return ParseContainer(s.scratch)
}

func (s *Session) writeBulk(ep int, b []byte) (int, error) {
	n, err := s.transport.WriteBulk(ep, b, s.timeout)
	if err != nil {
		return n, errUSB(err)
	}
	return n, nil
}

func (s *Session) readBulk(ep int, b []byte) (int, error) {
	n, err := s.transport.ReadBulk(ep, b, s.timeout)
	if err != nil {
		return n, errUSB(err)
	}
	return n, nil
}
