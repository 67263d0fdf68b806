package http1

import (
	"io"
	"strconv"
	"strings"
)

// Decoder states for Transfer-Encoding: chunked.
type chunkState int

const (
	stateReadSize chunkState = iota
	stateReadData
	stateReadChunkCRLF
	stateReadTrailers
	stateDone
)

// ChunkedDecoder accumulates a chunked body into memory. Chunks that would
// push the total past MaxBodyBytes are read off the wire and discarded,
// and decoding continues with the next chunk header, so the result may be
// shorter than what the peer sent.
type ChunkedDecoder struct {
	LR           *LineReader
	MaxBodyBytes int

	// OnDrop is invoked once per chunk discarded over the budget. May be nil.
	OnDrop func(chunkSize int)
}

// Decode runs the chunk state machine until the terminal zero chunk, a bad
// size line, or end of stream. Bad sizes and EOF terminate decoding early
// and are not errors; the bytes accumulated so far are returned. Read
// failures other than EOF abort with the error.
func (d *ChunkedDecoder) Decode() (string, error) {
	var body strings.Builder
	total := 0
	size := 0
	state := stateReadSize
	for state != stateDone {
		switch state {
		case stateReadSize:
			line, _, err := d.LR.ReadLine()
			if err == io.EOF {
				state = stateDone
				continue
			}
			if err != nil {
				return body.String(), err
			}
			sizeField := strings.TrimSpace(line)
			if sizeField == "" {
				continue
			}
			// Strip chunk extensions: "<hex>;<ext>"
			if i := strings.IndexByte(sizeField, ';'); i >= 0 {
				sizeField = sizeField[:i]
			}
			n, perr := strconv.ParseInt(strings.TrimSpace(sizeField), 16, 64)
			if perr != nil || n < 0 {
				state = stateDone
				continue
			}
			size = int(n)
			if size == 0 {
				state = stateReadTrailers
				continue
			}
			state = stateReadData
		case stateReadData:
			if total+size > d.MaxBodyBytes {
				if err := d.discardChunk(size); err != nil {
					return body.String(), err
				}
				if d.OnDrop != nil {
					d.OnDrop(size)
				}
				state = stateReadSize
				continue
			}
			buf := make([]byte, size)
			if _, err := io.ReadFull(d.LR.BR, buf); err != nil {
				return body.String(), err
			}
			body.Write(buf)
			total += size
			state = stateReadChunkCRLF
		case stateReadChunkCRLF:
			if _, err := d.LR.BR.Discard(2); err != nil {
				return body.String(), err
			}
			state = stateReadSize
		case stateReadTrailers:
			line, _, err := d.LR.ReadLine()
			if err == io.EOF || (err == nil && strings.TrimSpace(line) == "") {
				state = stateDone
				continue
			}
			if err != nil {
				return body.String(), err
			}
		}
	}
	return body.String(), nil
}

// discardChunk drains an over-budget chunk and its trailing CRLF so the
// stream stays aligned on the next chunk header.
func (d *ChunkedDecoder) discardChunk(size int) error {
	if _, err := d.LR.BR.Discard(size + 2); err != nil && err != io.EOF {
		return err
	}
	return nil
}
