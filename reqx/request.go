package reqx

import (
	"encoding/json"
	"strings"
)

// Request is the parse result for one HTTP/1.1 request. It is immutable
// after construction and owned by whoever ran the parse; accessors are
// read-only and the derived views (content type, cookies, form fields,
// JSON) recompute from the stored headers and body on every call.
type Request struct {
	method  string
	path    string
	query   map[string]string
	version Version
	headers map[string][]string
	body    string

	decodePercent bool
}

// Method returns the request method, empty when the request line had none.
func (r *Request) Method() string { return r.method }

// Path returns the request target up to the first '?', stored verbatim.
func (r *Request) Path() string { return r.path }

// Query returns a copy of the decoded query parameters. Duplicate keys in
// the query string resolved last-write-wins at parse time.
func (r *Request) Query() map[string]string {
	q := make(map[string]string, len(r.query))
	for k, v := range r.query {
		q[k] = v
	}
	return q
}

// QueryParam looks up one query parameter.
func (r *Request) QueryParam(key string) (string, bool) {
	v, ok := r.query[key]
	return v, ok
}

// Version returns the protocol version, 1.1 when the token was missing or
// unparsable.
func (r *Request) Version() Version { return r.version }

// VersionString renders the version as "HTTP/<major>.<minor>".
func (r *Request) VersionString() string { return r.version.String() }

// Headers returns a copy of the full header map. Names are lowercase;
// values keep their arrival order per name.
func (r *Request) Headers() map[string][]string {
	h := make(map[string][]string, len(r.headers))
	for k, vv := range r.headers {
		h[k] = append([]string(nil), vv...)
	}
	return h
}

// Header returns every value recorded for name, matched case-insensitively.
func (r *Request) Header(name string) []string {
	vv := r.headers[strings.ToLower(name)]
	if len(vv) == 0 {
		return nil
	}
	return append([]string(nil), vv...)
}

// HeaderValue returns the first value recorded for name.
func (r *Request) HeaderValue(name string) (string, bool) {
	vv := r.headers[strings.ToLower(name)]
	if len(vv) == 0 {
		return "", false
	}
	return vv[0], true
}

// Body returns the body bytes as text. Chunked bodies are returned
// de-chunked; truncated bodies contain only the bytes kept under the
// budget.
func (r *Request) Body() string { return r.body }

// ContentType returns the media type from the content-type header,
// trimmed, lowercased and stripped of parameters.
func (r *Request) ContentType() (string, bool) {
	v, ok := r.HeaderValue("content-type")
	if !ok {
		return "", false
	}
	mediaType, _, _ := strings.Cut(v, ";")
	return strings.ToLower(strings.TrimSpace(mediaType)), true
}

// ContentTypeParams returns the ";"-separated parameters after the media
// type. Keys are trimmed and lowercased, values trimmed with surrounding
// double quotes stripped.
func (r *Request) ContentTypeParams() map[string]string {
	params := make(map[string]string)
	v, ok := r.HeaderValue("content-type")
	if !ok {
		return params
	}
	parts := strings.Split(v, ";")
	for _, part := range parts[1:] {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.Trim(strings.TrimSpace(value), `"`)
		params[key] = value
	}
	return params
}

// Charset returns the charset content-type parameter.
func (r *Request) Charset() (string, bool) {
	cs, ok := r.ContentTypeParams()["charset"]
	return cs, ok
}

// Cookies merges every cookie header into one name/value map. Later
// duplicates overwrite earlier ones, across separate header lines too.
func (r *Request) Cookies() map[string]string {
	cookies := make(map[string]string)
	for _, header := range r.headers["cookie"] {
		for _, pair := range strings.Split(header, ";") {
			pair = strings.TrimSpace(pair)
			name, value, found := strings.Cut(pair, "=")
			if !found {
				continue
			}
			cookies[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
	}
	return cookies
}

// Cookie looks up one cookie by name.
func (r *Request) Cookie(name string) (string, bool) {
	v, ok := r.Cookies()[name]
	return v, ok
}

// IsFormData reports whether the media type is exactly
// application/x-www-form-urlencoded. Content-type parameters are ignored
// for the check.
func (r *Request) IsFormData() bool {
	ct, ok := r.ContentType()
	return ok && ct == "application/x-www-form-urlencoded"
}

// FormData decodes the body through the query decoder when IsFormData,
// empty otherwise.
func (r *Request) FormData() map[string]string {
	if !r.IsFormData() {
		return map[string]string{}
	}
	return parsePairs(r.body, r.decodePercent, r.decodePercent)
}

// FormField looks up one decoded form field.
func (r *Request) FormField(name string) (string, bool) {
	v, ok := r.FormData()[name]
	return v, ok
}

// IsJSON reports whether the media type is exactly application/json.
func (r *Request) IsJSON() bool {
	ct, ok := r.ContentType()
	return ok && ct == "application/json"
}

// JSON decodes the body when IsJSON. Malformed JSON yields ok=false,
// never an error.
func (r *Request) JSON() (interface{}, bool) {
	if !r.IsJSON() {
		return nil, false
	}
	var v interface{}
	if err := json.Unmarshal([]byte(r.body), &v); err != nil {
		return nil, false
	}
	return v, true
}

// JSONField returns one top-level field of a JSON object body.
func (r *Request) JSONField(name string) (interface{}, bool) {
	v, ok := r.JSON()
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	f, ok := obj[name]
	return f, ok
}

// IsChunked reports whether the first transfer-encoding value names
// chunked, consistently with the framing decision made at parse time.
func (r *Request) IsChunked() bool {
	vv := r.headers["transfer-encoding"]
	return len(vv) > 0 && strings.Contains(strings.ToLower(vv[0]), "chunked")
}
