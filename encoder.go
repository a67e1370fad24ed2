package transcode

import (
	"errors"
	"io"
)

const defaultWriteBufSize = 32 * 1024

var errWriterNil = errors.New("[transcode] writer is nil")

// Encoder writes scalars to an io.Writer in one encoding. Output is buffered
// until Flush or Close.
//
// Encoder also implements io.Writer for UTF-8 input: bytes written are decoded
// as UTF-8 and re-encoded, and a sequence split across Write calls is held
// until its remaining bytes arrive.
type Encoder struct {
	w       io.Writer
	codec   Codec
	buf     []byte
	written int // scalars accepted
	utf8    *Stream
}

// NewEncoder returns an Encoder writing c-encoded bytes to w.
//
// It is the caller's responsibility to call Close on the Encoder when done.
func NewEncoder(w io.Writer, c Codec) *Encoder {
	e := &Encoder{
		codec: c,
		buf:   make([]byte, 0, defaultWriteBufSize),
		utf8:  NewStream(UTF8),
	}
	e.Reset(w)
	return e
}

// Reset discards the Encoder's state, including unflushed output, and makes
// it write to w.
func (e *Encoder) Reset(w io.Writer) {
	e.w = w
	e.buf = e.buf[:0]
	e.written = 0
	e.utf8.Clear()
}

// WriteScalar encodes s. A scalar the encoding cannot represent is rejected
// with an *Error and nothing is written for it.
func (e *Encoder) WriteScalar(s Scalar) error {
	if e.w == nil {
		return errWriterNil
	}
	if cap(e.buf)-len(e.buf) < e.codec.MaxLen() {
		if err := e.Flush(); err != nil {
			return err
		}
	}
	n, err := e.codec.EncodeOne(e.buf[len(e.buf):cap(e.buf)], s)
	if err != nil {
		return newError(OpEncode, e.codec, e.written, err)
	}
	e.buf = e.buf[:len(e.buf)+n]
	e.written++
	return nil
}

// WriteText encodes text and returns the number of scalars accepted.
func (e *Encoder) WriteText(text Text) (int, error) {
	for i, s := range text {
		if err := e.WriteScalar(s); err != nil {
			return i, err
		}
	}
	return len(text), nil
}

// Write decodes p as UTF-8 and encodes the scalars. It reports len(p) as
// written when every complete sequence in p was encoded; a trailing partial
// sequence is held until the next Write. Write stops at an invalid sequence
// or a scalar the encoding cannot represent: n counts the bytes of p before
// it, and the rest of p is dropped. Scalars already accepted stay buffered.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.w == nil {
		return 0, errWriterNil
	}
	held := e.utf8.Available()
	e.utf8.Append(p)
	total := held + len(p)

	// consumed returns how many bytes of p were used, given the number of
	// bytes of the stream still unconsumed.
	consumed := func(left int) int {
		return max(total-left-held, 0)
	}

	for {
		before := e.utf8.Available()
		v, ok := e.utf8.Pull()
		if !ok {
			break
		}
		if err := e.WriteScalar(v); err != nil {
			e.utf8.Clear()
			return consumed(before), err
		}
	}
	if e.utf8.IsFaulted() {
		err := e.utf8.Err()
		n := consumed(e.utf8.Available())
		e.utf8.Clear()
		return n, err
	}
	return len(p), nil
}

// WriteString is Write for a string.
func (e *Encoder) WriteString(s string) (int, error) {
	return e.Write([]byte(s))
}

// Flush writes buffered output to the underlying writer.
func (e *Encoder) Flush() error {
	if e.w == nil {
		return errWriterNil
	}
	if len(e.buf) == 0 {
		return nil
	}
	_, err := e.w.Write(e.buf)
	e.buf = e.buf[:0]
	return err
}

// Close flushes pending output. It returns io.ErrUnexpectedEOF if a UTF-8
// sequence passed to Write was left incomplete. It is an error to write after
// calling Close.
func (e *Encoder) Close() error {
	if e.w == nil {
		return errWriterNil
	}
	defer func() { e.w = nil }()

	if err := e.Flush(); err != nil {
		return err
	}
	if e.utf8.Available() > 0 {
		return io.ErrUnexpectedEOF
	}
	return nil
}
