package transcode

import (
	"errors"
	"io"
)

// Decoder reads scalars from an io.Reader holding bytes in one encoding.
type Decoder struct {
	r       io.Reader
	stream  *Stream
	bufSize int
	err     error // sticky read error
	empty   int   // consecutive reads returning no data and no error
}

// maxConsecutiveEmptyReads matches bufio's limit on (0, nil) reads.
const maxConsecutiveEmptyReads = 100

type DecoderOption func(d *Decoder)

// NewDecoder returns a Decoder reading c-encoded bytes from r.
func NewDecoder(r io.Reader, c Codec, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		r:       r,
		stream:  NewStream(c),
		bufSize: defaultReadBufSize,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithBufferSize sets how many bytes are requested from the reader at a time.
func WithBufferSize(size int) DecoderOption {
	return func(d *Decoder) {
		if size > 0 {
			d.bufSize = size
		}
	}
}

// Reset discards the Decoder's state and makes it read from r.
func (d *Decoder) Reset(r io.Reader) {
	d.r = r
	d.err = nil
	d.empty = 0
	d.stream.Clear()
}

// ReadScalar returns the next scalar. At the end of input it returns io.EOF,
// or io.ErrUnexpectedEOF if the input ends inside a sequence. Invalid input
// returns an *Error and every later call returns the same error. A reader that
// keeps returning no data and no error yields io.ErrNoProgress.
func (d *Decoder) ReadScalar() (Scalar, error) {
	for {
		if v, ok := d.stream.Pull(); ok {
			return v, nil
		}
		if d.stream.IsFaulted() {
			return 0, d.stream.Err()
		}
		if d.err != nil {
			if errors.Is(d.err, io.EOF) && d.stream.Available() > 0 {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, d.err
		}
		n, err := d.stream.readFrom(d.r, d.bufSize)
		if err != nil {
			d.err = err
			continue
		}
		if n > 0 {
			d.empty = 0
			continue
		}
		d.empty++
		if d.empty >= maxConsecutiveEmptyReads {
			d.err = io.ErrNoProgress
		}
	}
}

// ReadAll reads scalars until the end of input. A clean end is not an error.
func (d *Decoder) ReadAll() (Text, error) {
	var text Text
	for {
		v, err := d.ReadScalar()
		if err != nil {
			if err == io.EOF {
				return text, nil
			}
			return text, err
		}
		text = append(text, v)
	}
}
