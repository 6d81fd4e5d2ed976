package url

import (
	"fmt"
	"net/url"
	"strings"
)

var Parse = url.Parse

// IsIRI returns if s is an absolute IRI that survives a parse/print cycle
// unchanged.
func IsIRI(s string) bool {
	u, err := Parse(s)
	if err != nil {
		return false
	}

	ns := u.String()
	if strings.HasSuffix(s, "#") {
		// preserve the empty fragment
		ns = ns + "#"
	}

	return u.IsAbs() && s == ns
}

// IsReference returns if s can be used as an IRI reference. Relative
// references are allowed, including the empty same-document reference.
func IsReference(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Join appends elem as a new path segment to base.
func Join(base string, elem string) (string, error) {
	u, err := Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	if !u.IsAbs() {
		return "", fmt.Errorf("base URL %q is not absolute", base)
	}

	u.RawQuery = ""
	u.Fragment = ""
	return u.JoinPath(elem).String(), nil
}
