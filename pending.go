package transcode

import "io"

const defaultReadBufSize = 32 * 1024

// pendingBuffer holds bytes that have been received but not yet decoded.
// buf[start:end] is the unconsumed window.
type pendingBuffer struct {
	buf        []byte
	start, end int
}

func (pb *pendingBuffer) window() []byte {
	return pb.buf[pb.start:pb.end]
}

func (pb *pendingBuffer) len() int {
	return pb.end - pb.start
}

func (pb *pendingBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	pb.start += consumed
	if pb.start >= pb.end {
		pb.start, pb.end = 0, 0
	}
}

// compact moves the unconsumed window to the front of buf, discarding the
// consumed prefix.
func (pb *pendingBuffer) compact() {
	if pb.start == 0 {
		return
	}
	if pb.start == pb.end {
		pb.start, pb.end = 0, 0
		return
	}
	copy(pb.buf, pb.buf[pb.start:pb.end])
	pb.end -= pb.start
	pb.start = 0
}

// grow makes room for at least n more bytes after end.
func (pb *pendingBuffer) grow(n int) {
	pb.compact()
	if len(pb.buf)-pb.end >= n {
		return
	}
	newLen := max(2*len(pb.buf), pb.end+n)
	nb := make([]byte, newLen)
	copy(nb, pb.window())
	pb.buf = nb
}

func (pb *pendingBuffer) write(p []byte) {
	if len(p) == 0 {
		pb.compact()
		return
	}
	pb.grow(len(p))
	pb.end += copy(pb.buf[pb.end:], p)
}

// readMore reads once from r into the free space after the window, making
// room for at least size bytes first.
func (pb *pendingBuffer) readMore(r io.Reader, size int) (int, error) {
	if size <= 0 {
		size = defaultReadBufSize
	}
	pb.grow(size)
	n, err := r.Read(pb.buf[pb.end:])
	if n > 0 {
		pb.end += n
	}
	return n, err
}

func (pb *pendingBuffer) reset() {
	pb.start, pb.end = 0, 0
}
