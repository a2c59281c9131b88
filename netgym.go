// Package netgym exposes the client builder and the base URL helper.
package netgym

import (
	"github.com/braginxv/netgym/client"
)

// NewClient instantiates a new *client.Client for baseURL with the provided
// options. If not specified, a closable connection over the default
// transport is used.
func NewClient(baseURL string, opts ...client.Option) (*client.Client, error) {
	return client.Build(baseURL, opts...)
}

// BaseURL returns the longest common base of urls. See [client.BaseURLFor].
func BaseURL(urls ...string) (string, error) {
	return client.BaseURLFor(urls...)
}
