package client

import (
	"maps"
	"net/http"
	"slices"
)

// headerSet is an ordered mapping of header names to values. Setting a
// name again overrides its value and keeps its position. Names are
// compared exactly.
type headerSet struct {
	names  []string
	values map[string]string
}

func newHeaderSet() *headerSet {
	return &headerSet{values: make(map[string]string)}
}

func (h *headerSet) set(name, value string) {
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = value
}

// merge sets every entry of m, in name order.
func (h *headerSet) merge(m map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		h.set(name, m[name])
	}
}

// header converts the set to an http.Header without canonicalizing names.
func (h *headerSet) header() http.Header {
	out := make(http.Header, len(h.names))
	for _, name := range h.names {
		out[name] = []string{h.values[name]}
	}
	return out
}

// mergeHeaders combines client headers, the user agent and call headers,
// later sources overriding earlier ones.
func mergeHeaders(base map[string]string, userAgent string, call map[string]string) *headerSet {
	h := newHeaderSet()
	h.merge(base)
	h.set("User-Agent", userAgent)
	h.merge(call)
	return h
}
