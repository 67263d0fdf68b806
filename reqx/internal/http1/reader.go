package http1

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads newline-terminated lines and reports how many raw bytes
// each line consumed, terminator included, so callers can enforce byte
// budgets on the wire representation rather than the trimmed text.
type LineReader struct {
	BR *bufio.Reader
}

// ReadLine returns the next line with the trailing CR/LF stripped and the
// number of raw bytes consumed.
//
// A stream that ends exactly at a line boundary yields ("", 0, io.EOF),
// the zero-length read that terminates header and chunk loops. A stream
// that ends mid-line yields the partial line with a nil error; the next
// call reports io.EOF.
func (r *LineReader) ReadLine() (string, int, error) {
	var sb strings.Builder
	n := 0
	for {
		b, err := r.BR.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				return sb.String(), n, nil
			}
			return "", n, err
		}
		n++
		if b == '\n' {
			return sb.String(), n, nil
		}
		if b != '\r' {
			sb.WriteByte(b)
		}
	}
}
