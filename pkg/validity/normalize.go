package validity

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// NormalizeURL returns the canonical form used to compare a probe's final URL
// with the sentinel URLs. Two URLs that differ only in the following respects
// normalize to the same string:
//   - case of the scheme and host
//   - an empty path versus "/"
//   - dot-segments, duplicate slashes and a trailing slash in the path
//   - default ports (http:80, https:443)
//   - order of query parameters and of their values
//   - fragment and user info
//
// If the input cannot be parsed as an absolute URL, an error is returned.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("not an absolute URL: %q", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.User = nil
	u.Fragment = ""
	u.RawFragment = ""

	cleaned := "/"
	if u.Path != "" {
		cleaned = path.Clean("/" + u.Path)
	}
	// path.Clean already drops trailing slashes except for the root
	u.Path = cleaned
	u.RawPath = ""

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		// url.Values.Encode() sorts keys lexicographically
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
