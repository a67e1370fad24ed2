package transcode

import (
	"errors"
	"io"

	"golang.org/x/text/transform"
)

// Transformer converts bytes from one encoding to another as a
// golang.org/x/text/transform.Transformer. An incomplete trailing sequence is
// reported as transform.ErrShortSrc until atEOF.
type Transformer struct {
	from, to Codec
	consumed int // source bytes consumed since the last Reset
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer returns a Transformer converting from one codec to another.
func NewTransformer(from, to Codec) *Transformer {
	return &Transformer{from: from, to: to}
}

func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nSrc, nDst, err = convert(dst, src, t.from, t.to)
	offset := t.consumed
	t.consumed += nSrc
	if err == nil {
		return nDst, nSrc, nil
	}

	switch {
	case errors.Is(err, ErrShortBuffer):
		return nDst, nSrc, transform.ErrShortDst
	case errors.Is(err, ErrIncomplete) && !atEOF:
		return nDst, nSrc, transform.ErrShortSrc
	}

	var e *Error
	if errors.As(err, &e) {
		e.Offset += offset
	}
	return nDst, nSrc, err
}

func (t *Transformer) Reset() {
	t.consumed = 0
}

// NewReader returns a reader yielding the bytes of r converted between the
// two encodings.
func NewReader(r io.Reader, from, to Codec) io.Reader {
	return transform.NewReader(r, NewTransformer(from, to))
}

// NewWriter returns a writer that converts bytes between the two encodings
// before writing them to w. Close must be called to flush the final bytes.
func NewWriter(w io.Writer, from, to Codec) io.WriteCloser {
	return transform.NewWriter(w, NewTransformer(from, to))
}
