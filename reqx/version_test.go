package reqx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, ok := ParseVersion("HTTP/1.1")
	require.True(t, ok)
	require.Equal(t, Version{Major: 1, Minor: 1}, v)

	v, ok = ParseVersion("HTTP/2.0")
	require.True(t, ok)
	require.Equal(t, Version{Major: 2, Minor: 0}, v)

	// Only the part after the last slash matters.
	v, ok = ParseVersion("ICY/1.0")
	require.True(t, ok)
	require.Equal(t, Version{Major: 1, Minor: 0}, v)

	for _, token := range []string{"", "HTTP1.1", "HTTP/11", "HTTP/a.1", "HTTP/1.b", "HTTP/1.2.3", "/.", "HTTP/-1.1"} {
		_, ok := ParseVersion(token)
		require.False(t, ok, "token %q", token)
	}
}

func TestVersionRoundTrip(t *testing.T) {
	for _, token := range []string{"HTTP/1.0", "HTTP/1.1", "HTTP/2.0", "HTTP/10.3"} {
		v, ok := ParseVersion(token)
		require.True(t, ok, "token %q", token)
		require.Equal(t, token, v.String())
	}
}
