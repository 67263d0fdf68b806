package reqx

import (
	"io"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, h Handler) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	s := &Server{Handler: h}
	go func() { _ = s.Serve(ln) }()
	return ln.Addr().String()
}

func roundTrip(t *testing.T, addr, raw string) string {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)
	b, err := io.ReadAll(conn)
	require.NoError(t, err)
	return string(b)
}

func TestServer_EchoesParsedRequest(t *testing.T) {
	addr := startServer(t, HandlerFunc(func(w ResponseWriter, r *Request) {
		q, _ := r.QueryParam("q")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte(r.Method() + " " + r.Path() + " " + q))
	}))

	res := roundTrip(t, addr, "GET /search?q=rust HTTP/1.1\r\nHost: t\r\n\r\n")
	require.True(t, strings.HasPrefix(res, "HTTP/1.1 200 OK\r\n"), "got %q", res)
	require.Contains(t, res, "Connection: close\r\n")
	require.True(t, strings.HasSuffix(res, "\r\n\r\nGET /search rust"), "got %q", res)
}

func TestServer_NilHandlerAnswers404(t *testing.T) {
	addr := startServer(t, nil)
	res := roundTrip(t, addr, "GET / HTTP/1.1\r\nHost: t\r\n\r\n")
	require.True(t, strings.HasPrefix(res, "HTTP/1.1 404 Not Found\r\n"), "got %q", res)
	require.True(t, strings.HasSuffix(res, "not found"), "got %q", res)
}

func TestServer_FormBody(t *testing.T) {
	addr := startServer(t, HandlerFunc(func(w ResponseWriter, r *Request) {
		name, _ := r.FormField("name")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("hello " + name))
	}))

	raw := "POST /greet HTTP/1.1\r\nHost: t\r\n" +
		"Content-Type: application/x-www-form-urlencoded\r\n" +
		"Content-Length: 8\r\n\r\nname=bob"
	res := roundTrip(t, addr, raw)
	require.True(t, strings.HasSuffix(res, "hello bob"), "got %q", res)
}
