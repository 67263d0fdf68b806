package reqx

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"dqx0.com/go/reqwire/internal/obs"
	"dqx0.com/go/reqwire/reqx/internal/http1"
)

// Header reader states.
type parseState int

const (
	stateReadingHeaders parseState = iota
	stateComplete
)

// Parse reads one HTTP/1.1 request from r using default limits and no
// observability hooks.
func Parse(r io.Reader) (*Request, error) {
	return ParseWith(r, Options{})
}

// ParseWith reads one HTTP/1.1 request from r.
//
// The parse is synchronous and owns the buffered view of r until it
// returns; pass a *bufio.Reader to keep any bytes beyond this request
// readable afterwards. Limit overruns never fail the parse: the header
// budget stops header collection, a Content-Length overflow truncates the
// body once and drains the declared remainder to keep the stream aligned,
// and a chunked overflow drops whole chunks while decoding continues.
// Each is reported through opts.Logger and opts.Meter. Only stream read
// failures produce an error, wrapped with ErrStreamRead; a stream that
// simply ends yields a Request built from whatever arrived.
func ParseWith(r io.Reader, opts Options) (*Request, error) {
	limits := opts.Limits.withDefaults()
	log := opts.logger()
	meter := opts.meter()

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	lr := &http1.LineReader{BR: br}

	line, _, err := lr.ReadLine()
	if err != nil && err != io.EOF {
		return nil, streamErr("request line", err)
	}

	req := &Request{
		headers:       make(map[string][]string),
		decodePercent: opts.DecodePercent,
	}
	req.method, req.path, req.query, req.version = splitRequestLine(line, opts.DecodePercent)

	headerBytes := 0
	state := stateReadingHeaders
	for state == stateReadingHeaders {
		hline, n, err := lr.ReadLine()
		if err == io.EOF {
			// Stream closed before the blank line; keep what was collected.
			state = stateComplete
			continue
		}
		if err != nil {
			return nil, streamErr("header line", err)
		}
		headerBytes += n
		if headerBytes > limits.MaxHeaderBytes {
			log.Logf(obs.Warn, "header block exceeds limit of %d bytes, truncating", limits.MaxHeaderBytes)
			meter.Counter("reqx_header_truncated_total", 1)
			state = stateComplete
			continue
		}
		if strings.TrimSpace(hline) == "" {
			// End of the header block; the body framing is now known.
			body, err := readBody(lr, req.headers, limits, log, meter)
			if err != nil {
				return nil, err
			}
			req.body = body
			state = stateComplete
			continue
		}
		i := strings.IndexByte(hline, ':')
		if i < 0 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(hline[:i]))
		value := strings.TrimSpace(hline[i+1:])
		req.headers[name] = append(req.headers[name], value)
	}
	return req, nil
}

// splitRequestLine cuts the first line into method, target and version,
// then the target into path and query. Missing tokens default to empty
// strings and version 1.1; the path is kept verbatim.
func splitRequestLine(line string, decodePercent bool) (method, path string, query map[string]string, version Version) {
	fields := strings.Fields(strings.TrimSpace(line))
	target := ""
	if len(fields) > 0 {
		method = fields[0]
	}
	if len(fields) > 1 {
		target = fields[1]
	}
	version = Version{Major: 1, Minor: 1}
	if len(fields) > 2 {
		if v, ok := ParseVersion(fields[2]); ok {
			version = v
		}
	}
	path = target
	query = map[string]string{}
	if i := strings.IndexByte(target, '?'); i >= 0 {
		path = target[:i]
		query = parsePairs(target[i+1:], decodePercent, false)
	}
	return method, path, query, version
}

// readBody picks the framing from the collected headers: a chunked
// transfer-encoding wins over content-length, absence of both means no
// body.
func readBody(lr *http1.LineReader, headers map[string][]string, limits Limits, log obs.Logger, meter obs.Meter) (string, error) {
	if hasChunkedTE(headers) {
		dec := &http1.ChunkedDecoder{
			LR:           lr,
			MaxBodyBytes: limits.MaxBodyBytes,
			OnDrop: func(chunkSize int) {
				log.Logf(obs.Warn, "chunked body exceeds limit of %d bytes, dropping %d byte chunk", limits.MaxBodyBytes, chunkSize)
				meter.Counter("reqx_chunk_dropped_total", 1)
			},
		}
		body, err := dec.Decode()
		if err != nil {
			return "", streamErr("chunked body", err)
		}
		return body, nil
	}

	length, ok := contentLength(headers)
	if !ok {
		return "", nil
	}
	keep := length
	if length > limits.MaxBodyBytes {
		log.Logf(obs.Warn, "body size %d exceeds limit of %d bytes, truncating", length, limits.MaxBodyBytes)
		meter.Counter("reqx_body_truncated_total", 1)
		keep = limits.MaxBodyBytes
	}
	buf := make([]byte, keep)
	if _, err := io.ReadFull(lr.BR, buf); err != nil {
		return "", streamErr("body", err)
	}
	if length > keep {
		// Best-effort drain keeps the stream aligned for later reads.
		if _, err := lr.BR.Discard(length - keep); err != nil && err != io.EOF {
			return "", streamErr("body drain", err)
		}
	}
	return string(buf), nil
}

func contentLength(h map[string][]string) (int, bool) {
	vv := h["content-length"]
	if len(vv) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(vv[0]))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func hasChunkedTE(h map[string][]string) bool {
	vv := h["transfer-encoding"]
	return len(vv) > 0 && strings.Contains(strings.ToLower(vv[0]), "chunked")
}
