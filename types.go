package transcode

import (
	"fmt"
	"strings"
)

// Encoding identifies one of the supported byte encodings. It implements Codec
// by dispatching on its value.
type Encoding int

const (
	ASCII   Encoding = iota
	UTF8
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

// Encodings lists every supported encoding.
var Encodings = []Encoding{ASCII, UTF8, UTF16LE, UTF16BE, UTF32LE, UTF32BE}

var encodingNames = [...]string{
	ASCII:   "ascii",
	UTF8:    "utf8",
	UTF16LE: "utf16le",
	UTF16BE: "utf16be",
	UTF32LE: "utf32le",
	UTF32BE: "utf32be",
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
	return encodingNames[e]
}

// ParseEncoding accepts the names returned by Encoding.String, case-insensitive
// and with an optional '-' after "utf" ("UTF-16LE").
func ParseEncoding(name string) (Encoding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.Replace(n, "utf-", "utf", 1)
	if n == "us-ascii" {
		n = "ascii"
	}
	for i, s := range encodingNames {
		if s == n {
			return Encoding(i), nil
		}
	}
	return 0, fmt.Errorf("[transcode] %q: %w", name, ErrUnknownEncoding)
}

// Status is the state of a Stream.
//
// A stream starts in StatusOK. It becomes StatusExhausted when every buffered
// byte has been consumed and returns to StatusOK on the next non-empty Append.
// StatusFaulted is entered on the first invalid sequence and is left only
// through Clear.
type Status int

const (
	StatusOK        Status = 0 // default
	StatusExhausted Status = 1
	StatusFaulted   Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusExhausted:
		return "exhausted"
	case StatusFaulted:
		return "faulted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}
