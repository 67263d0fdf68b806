package reqx

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an HTTP protocol version. It is a plain value; construct it
// directly or with ParseVersion.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses a version token of the form "<scheme>/<major>.<minor>".
// ok is false when the token has no slash, the part after the last slash has
// no dot, or either side of the dot is not an unsigned integer. Callers
// substitute Version{1, 1} for unparsable tokens.
func ParseVersion(token string) (Version, bool) {
	slash := strings.LastIndexByte(token, '/')
	if slash < 0 {
		return Version{}, false
	}
	rest := token[slash+1:]
	dot := strings.IndexByte(rest, '.')
	if dot < 0 {
		return Version{}, false
	}
	major, err := strconv.ParseUint(rest[:dot], 10, 16)
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.ParseUint(rest[dot+1:], 10, 16)
	if err != nil {
		return Version{}, false
	}
	return Version{Major: int(major), Minor: int(minor)}, true
}

// String renders the canonical form "HTTP/<major>.<minor>" regardless of the
// scheme the version was parsed from.
func (v Version) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}
