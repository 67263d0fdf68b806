package reqx

import "bytes"

// ResponseRecorder is a ResponseWriter that buffers the response. The
// server uses it to collect a handler's output before writing the wire
// bytes in one shot; tests use it to inspect handler behavior directly.
type ResponseRecorder struct {
	Code      int
	HeaderMap Header
	Body      bytes.Buffer

	wroteHeader bool
}

func (w *ResponseRecorder) Header() Header {
	if w.HeaderMap == nil {
		w.HeaderMap = Header{}
	}
	return w.HeaderMap
}

func (w *ResponseRecorder) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	if status == 0 {
		status = 200
	}
	w.Code = status
	w.wroteHeader = true
}

func (w *ResponseRecorder) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(200)
	}
	return w.Body.Write(p)
}
