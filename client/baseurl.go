package client

import (
	"regexp"
	"strings"
)

var schemeAuthority = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://[^/?#\s]+`)

// BaseURLFor returns the longest common leading path shared by urls,
// cut back to just after its last '/'. Characters are compared ASCII
// case-insensitively and the result keeps the spelling of the first URL.
//
// When the URLs share only their scheme and authority, the result is that
// origin followed by a single '/'. When they share no more than the scheme,
// BaseURLFor returns "".
//
// Every URL must start with scheme://authority; the first one that does
// not is reported as an [InvalidURLError].
func BaseURLFor(urls ...string) (string, error) {
	if len(urls) == 0 {
		return "", ErrNoURLs
	}

	for _, u := range urls {
		if !schemeAuthority.MatchString(u) {
			return "", &InvalidURLError{URL: u}
		}
	}

	prefix := urls[0]
	for _, u := range urls[1:] {
		prefix = prefix[:commonPrefixLen(prefix, u)]
	}

	origin := schemeAuthority.FindString(urls[0])
	if len(prefix) == len(origin) && endsComponent(urls, len(prefix)) {
		return prefix + "/", nil
	}

	i := strings.LastIndexByte(prefix, '/')
	if i < 0 {
		return "", nil
	}

	base := prefix[:i+1]
	if strings.Index(base, "://") == len(base)-len("://") {
		return "", nil
	}

	return base, nil
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return i
		}
	}
	return n
}

// endsComponent reports whether every url ends, or starts a path, query
// or fragment, at offset n.
func endsComponent(urls []string, n int) bool {
	for _, u := range urls {
		if len(u) == n {
			continue
		}
		if len(u) < n || !strings.ContainsRune("/?#", rune(u[n])) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
