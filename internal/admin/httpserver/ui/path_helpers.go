package ui

import (
	"net/url"
	"strings"
)

// pathFromURL extracts the path of an absolute or relative URL such as the
// value of HX-Current-URL.
func pathFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
