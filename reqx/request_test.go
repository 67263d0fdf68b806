package reqx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequest_ContentTypeViews(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Type: Text/HTML; Charset=UTF-8; boundary=\"abc\"\r\n\r\n"
	req := parseString(t, raw, Options{})

	ct, ok := req.ContentType()
	require.True(t, ok)
	require.Equal(t, "text/html", ct)

	params := req.ContentTypeParams()
	require.Equal(t, map[string]string{"charset": "UTF-8", "boundary": "abc"}, params)

	cs, ok := req.Charset()
	require.True(t, ok)
	require.Equal(t, "UTF-8", cs)
}

func TestRequest_NoContentType(t *testing.T) {
	req := parseString(t, "GET / HTTP/1.1\r\n\r\n", Options{})
	_, ok := req.ContentType()
	require.False(t, ok)
	require.Empty(t, req.ContentTypeParams())
	_, ok = req.Charset()
	require.False(t, ok)
}

func TestRequest_Cookies(t *testing.T) {
	req := parseString(t, "GET / HTTP/1.1\r\nCookie: a=1; b=2\r\n\r\n", Options{})
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, req.Cookies())

	// A later Cookie line overwrites same-named cookies from earlier ones.
	raw := "GET / HTTP/1.1\r\nCookie: a=1; b=2\r\nCookie: b=3; c=4\r\n\r\n"
	req = parseString(t, raw, Options{})
	require.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, req.Cookies())

	v, ok := req.Cookie("b")
	require.True(t, ok)
	require.Equal(t, "3", v)
	_, ok = req.Cookie("z")
	require.False(t, ok)
}

func TestRequest_FormData(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Type: application/x-www-form-urlencoded\r\nContent-Length: 7\r\n\r\nx=1&y=2"
	req := parseString(t, raw, Options{})
	require.True(t, req.IsFormData())
	require.Equal(t, map[string]string{"x": "1", "y": "2"}, req.FormData())

	v, ok := req.FormField("x")
	require.True(t, ok)
	require.Equal(t, "1", v)

	// Content-type parameters do not affect the check.
	raw = "POST / HTTP/1.1\r\nContent-Type: application/x-www-form-urlencoded; charset=utf-8\r\nContent-Length: 3\r\n\r\nx=1"
	req = parseString(t, raw, Options{})
	require.True(t, req.IsFormData())

	// Other media types never produce form data.
	raw = "POST / HTTP/1.1\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nx=1"
	req = parseString(t, raw, Options{})
	require.False(t, req.IsFormData())
	require.Empty(t, req.FormData())
	_, ok = req.FormField("x")
	require.False(t, ok)
}

func TestRequest_JSON(t *testing.T) {
	raw := "POST / HTTP/1.1\r\nContent-Type: application/json\r\nContent-Length: 20\r\n\r\n{\"name\":\"go\",\"n\":1}\n"
	req := parseString(t, raw, Options{})
	require.True(t, req.IsJSON())

	v, ok := req.JSON()
	require.True(t, ok)
	obj, isObj := v.(map[string]interface{})
	require.True(t, isObj)
	require.Equal(t, "go", obj["name"])

	f, ok := req.JSONField("name")
	require.True(t, ok)
	require.Equal(t, "go", f)
	_, ok = req.JSONField("missing")
	require.False(t, ok)

	// A charset parameter does not affect the check.
	raw = "POST / HTTP/1.1\r\nContent-Type: application/json; charset=utf-8\r\nContent-Length: 2\r\n\r\n{}"
	req = parseString(t, raw, Options{})
	require.True(t, req.IsJSON())

	// Malformed JSON yields no value, not an error.
	raw = "POST / HTTP/1.1\r\nContent-Type: application/json\r\nContent-Length: 5\r\n\r\n{oops"
	req = parseString(t, raw, Options{})
	require.True(t, req.IsJSON())
	_, ok = req.JSON()
	require.False(t, ok)
	_, ok = req.JSONField("name")
	require.False(t, ok)

	// Non-JSON media types never decode.
	raw = "POST / HTTP/1.1\r\nContent-Type: text/plain\r\nContent-Length: 2\r\n\r\n{}"
	req = parseString(t, raw, Options{})
	require.False(t, req.IsJSON())
	_, ok = req.JSON()
	require.False(t, ok)
}

func TestRequest_AccessorCopiesAreIsolated(t *testing.T) {
	req := parseString(t, "GET /?a=1 HTTP/1.1\r\nHost: x\r\n\r\n", Options{})

	req.Headers()["host"] = []string{"mutated"}
	v, _ := req.HeaderValue("host")
	require.Equal(t, "x", v)

	req.Query()["a"] = "mutated"
	q, _ := req.QueryParam("a")
	require.Equal(t, "1", q)
}
