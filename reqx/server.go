package reqx

import (
	"bufio"
	"net"
	"time"

	"dqx0.com/go/reqwire/internal/obs"
	"dqx0.com/go/reqwire/reqx/internal/http1"
)

type Handler interface {
	ServeHTTP(ResponseWriter, *Request)
}

type HandlerFunc func(ResponseWriter, *Request)

func (f HandlerFunc) ServeHTTP(w ResponseWriter, r *Request) {
	f(w, r)
}

type ResponseWriter interface {
	Header() Header
	Write([]byte) (int, error)
	WriteHeader(status int)
}

// Server hosts handlers that consume parsed Requests. Each accepted
// connection carries exactly one request and is closed once the response
// is written; persistent connections are out of scope.
type Server struct {
	Addr         string
	Handler      Handler
	ParseOptions Options
	ReadTimeout  time.Duration
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = ":8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

func (s *Server) Serve(l net.Listener) error {
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			return err
		}
		go s.serveConn(c)
	}
}

func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	if s.ReadTimeout > 0 {
		_ = c.SetReadDeadline(time.Now().Add(s.ReadTimeout))
	}
	bw := bufio.NewWriter(c)

	req, err := ParseWith(c, s.ParseOptions)
	if err != nil {
		s.ParseOptions.logger().Logf(obs.Error, "parse failed: %v", err)
		_ = http1.WriteResponse(bw, 400, "", nil, nil)
		_ = bw.Flush()
		return
	}

	h := s.Handler
	if h == nil {
		h = HandlerFunc(func(w ResponseWriter, r *Request) {
			w.WriteHeader(404)
			_, _ = w.Write([]byte("not found"))
		})
	}
	rec := &ResponseRecorder{}
	h.ServeHTTP(rec, req)
	if !rec.wroteHeader {
		rec.WriteHeader(200)
	}
	if err := http1.WriteResponse(bw, rec.Code, "", rec.HeaderMap, rec.Body.Bytes()); err != nil {
		return
	}
	_ = bw.Flush()
}
