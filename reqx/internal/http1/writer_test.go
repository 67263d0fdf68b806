package http1

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestWriteResponse(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	hdr := map[string][]string{
		"Content-Type": {"text/plain"},
		"X-Multi":      {"a", "b"},
		"Bad(Name":     {"x"},
		"Connection":   {"keep-alive"},
	}
	if err := WriteResponse(bw, 200, "", hdr, []byte("hello")); err != nil {
		t.Fatalf("WriteResponse error: %v", err)
	}
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n") {
		t.Fatalf("status line, got %q", out)
	}
	if !strings.Contains(out, "Content-Length: 5\r\n") {
		t.Fatalf("missing Content-Length: %q", out)
	}
	if !strings.Contains(out, "X-Multi: a\r\n") || !strings.Contains(out, "X-Multi: b\r\n") {
		t.Fatalf("multi-value header lost: %q", out)
	}
	if strings.Contains(out, "Bad(Name") {
		t.Fatalf("invalid header name written: %q", out)
	}
	if strings.Contains(out, "keep-alive") {
		t.Fatalf("caller Connection header not overridden: %q", out)
	}
	if !strings.HasSuffix(out, "Connection: close\r\n\r\nhello") {
		t.Fatalf("framing, got %q", out)
	}
}

func TestWriteResponse_SanitizesValues(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	hdr := map[string][]string{"X-H": {"a\r\nInjected: x"}}
	if err := WriteResponse(bw, 204, "", hdr, nil); err != nil {
		t.Fatalf("WriteResponse error: %v", err)
	}
	_ = bw.Flush()
	out := buf.String()
	if !strings.Contains(out, "X-H: aInjected: x\r\n") {
		t.Fatalf("value not sanitized: %q", out)
	}
	if strings.Contains(out, "\r\nInjected:") {
		t.Fatalf("header injection possible: %q", out)
	}
}
