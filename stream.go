package transcode

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// Stream decodes scalars from bytes that arrive in chunks of any size. A
// sequence split across chunks is held back until the rest of it is appended.
//
// The first invalid sequence faults the stream: no further scalars are
// produced until Clear is called. A Stream is not safe for concurrent use.
type Stream struct {
	codec    Codec
	pending  pendingBuffer
	status   Status
	consumed int64 // bytes consumed since creation or the last Clear
	err      error
}

// NewStream returns a stream decoding with c, primed with the given chunks.
func NewStream(c Codec, chunks ...[]byte) *Stream {
	s := &Stream{codec: c}
	for _, chunk := range chunks {
		s.Append(chunk)
	}
	return s
}

// Codec returns the codec the stream decodes with.
func (s *Stream) Codec() Codec {
	return s.codec
}

// Append adds chunk after the unconsumed bytes. The consumed prefix is
// discarded first.
func (s *Stream) Append(chunk []byte) {
	s.pending.write(chunk)
	s.refresh()
}

// readFrom reads once from r straight into the pending buffer.
func (s *Stream) readFrom(r io.Reader, size int) (int, error) {
	n, err := s.pending.readMore(r, size)
	s.refresh()
	return n, err
}

func (s *Stream) refresh() {
	if s.status == StatusFaulted {
		return
	}
	if s.pending.len() == 0 {
		s.status = StatusExhausted
	} else {
		s.status = StatusOK
	}
}

// Pull decodes and consumes the next scalar. It returns false when the stream
// is not OK, when the remaining bytes are an incomplete sequence (the stream
// stays OK and waits for more), or when they are invalid (the stream faults).
func (s *Stream) Pull() (Scalar, bool) {
	v, n, ok := s.next()
	if !ok {
		return 0, false
	}
	s.pending.advance(n)
	s.consumed += int64(n)
	if s.pending.len() == 0 {
		s.status = StatusExhausted
	}
	return v, true
}

// Peek is Pull without consuming the scalar. It never changes the status.
func (s *Stream) Peek() (Scalar, bool) {
	if s.status != StatusOK {
		return 0, false
	}
	v, _, err := s.codec.DecodeOne(s.pending.window())
	if err != nil {
		return 0, false
	}
	return v, true
}

func (s *Stream) next() (Scalar, int, bool) {
	if s.status != StatusOK {
		return 0, 0, false
	}
	v, n, err := s.codec.DecodeOne(s.pending.window())
	if err == nil {
		return v, n, true
	}
	if !errors.Is(err, ErrIncomplete) {
		s.status = StatusFaulted
		s.err = newError(OpDecode, s.codec, int(s.consumed), err)
		Logger().Debug("stream faulted",
			zap.String("encoding", s.codec.Name()),
			zap.Int64("offset", s.consumed),
			zap.Error(err))
	}
	return 0, 0, false
}

// Drain pulls every scalar currently available and appends them to dst.
func (s *Stream) Drain(dst Text) Text {
	for {
		v, ok := s.Pull()
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}

// Clear drops all pending bytes and returns the stream to StatusOK.
func (s *Stream) Clear() {
	s.pending.reset()
	s.status = StatusOK
	s.consumed = 0
	s.err = nil
}

func (s *Stream) Status() Status {
	return s.status
}

func (s *Stream) IsOK() bool {
	return s.status == StatusOK
}

func (s *Stream) IsExhausted() bool {
	return s.status == StatusExhausted
}

func (s *Stream) IsFaulted() bool {
	return s.status == StatusFaulted
}

// Available returns the number of buffered bytes not yet consumed.
func (s *Stream) Available() int {
	return s.pending.len()
}

// Err returns the cause of the fault, or nil if the stream is not faulted.
func (s *Stream) Err() error {
	return s.err
}
