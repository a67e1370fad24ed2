package transcode

import (
	"errors"
	"strconv"
	"strings"
)

// Errors returned by the codecs. The Err field of an *Error is always one of
// these values.
var (
	// ErrInvalid is matched by every error meaning the input can never be
	// decoded or encoded, however many more bytes arrive.
	ErrInvalid = errors.New("invalid input")

	// ErrIncomplete indicates a valid but truncated encoded scalar.
	ErrIncomplete error = &kindError{msg: "incomplete sequence"}

	// ErrMalformed indicates a bad lead byte or continuation byte.
	ErrMalformed error = &kindError{msg: "malformed sequence", invalid: true}

	// ErrUnpairedSurrogate indicates a lone UTF-16 low surrogate, or a high
	// surrogate not followed by a low surrogate.
	ErrUnpairedSurrogate error = &kindError{msg: "unpaired surrogate", invalid: true}

	// ErrOutOfRange indicates a value above 0x10FFFF, a surrogate used as a
	// scalar, or a scalar the target encoding cannot represent.
	ErrOutOfRange error = &kindError{msg: "scalar out of range", invalid: true}

	// ErrShortBuffer indicates the destination cannot hold the encoded scalar.
	ErrShortBuffer error = &kindError{msg: "short destination buffer"}

	// ErrUnknownEncoding is returned by ParseEncoding.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

type kindError struct {
	msg     string
	invalid bool
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool {
	return e.invalid && target == ErrInvalid
}

// Op names the operation that failed.
type Op string

const (
	OpEncode  Op = "encode"
	OpDecode  Op = "decode"
	OpConvert Op = "convert"
)

// Error reports where a batch or streaming operation stopped.
type Error struct {
	Op       Op
	Encoding string
	// Offset is the position of the failing unit in the input: a byte offset
	// for decode and convert, a scalar index for encode.
	Offset int
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("[transcode] ")
	b.WriteString(string(e.Op))
	if e.Encoding != "" {
		b.WriteByte(' ')
		b.WriteString(e.Encoding)
	}
	b.WriteString(" at offset ")
	b.WriteString(strconv.Itoa(e.Offset))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op Op, c Codec, offset int, err error) *Error {
	return &Error{Op: op, Encoding: c.Name(), Offset: offset, Err: err}
}
