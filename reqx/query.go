package reqx

import (
	"net/url"
	"strings"
)

// parsePairs decodes an "&"-separated key/value string into a map with
// last-write-wins on duplicate keys. The same algorithm serves URL query
// strings and application/x-www-form-urlencoded bodies.
//
// In legacy mode a pair containing '%' is cut at the first '%': the prefix
// becomes the key and the bytes after the '%' become the value, with no
// octet decoding. With decodePercent set, keys and values are
// percent-decoded instead; plusSpace additionally turns '+' into a space
// (form bodies only). Undecodable escapes are kept as raw text.
func parsePairs(s string, decodePercent, plusSpace bool) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		if decodePercent {
			k, v := cutPair(pair)
			params[unescape(k, plusSpace)] = unescape(v, plusSpace)
			continue
		}
		if i := strings.IndexByte(pair, '%'); i >= 0 {
			value := ""
			if i+1 < len(pair) {
				value = pair[i+1:]
			}
			params[pair[:i]] = value
			continue
		}
		k, v := cutPair(pair)
		params[k] = v
	}
	return params
}

func cutPair(pair string) (string, string) {
	if i := strings.IndexByte(pair, '='); i >= 0 {
		return pair[:i], pair[i+1:]
	}
	return pair, ""
}

func unescape(s string, plusSpace bool) string {
	if plusSpace {
		s = strings.ReplaceAll(s, "+", " ")
	}
	out, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return out
}
