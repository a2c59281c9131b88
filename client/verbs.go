package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/braginxv/netgym/form"
)

// Get sends a GET request for path and returns the decoded body.
func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodGet, c.target(path), payload{}, opts)
}

// GetBytes sends a GET request for path and returns the raw body.
func (c *Client) GetBytes(ctx context.Context, path string, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodGet, c.target(path), payload{}, opts)
}

// Head sends a HEAD request for path and returns the response headers.
func (c *Client) Head(ctx context.Context, path string, opts ...CallOption) (http.Header, error) {
	resp, _, err := c.do(ctx, http.MethodHead, c.target(path), payload{}, opts)
	if err != nil {
		return nil, err
	}

	return resp.Header, nil
}

func (c *Client) Trace(ctx context.Context, path string, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodTrace, c.target(path), payload{}, opts)
}

func (c *Client) TraceBytes(ctx context.Context, path string, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodTrace, c.target(path), payload{}, opts)
}

func (c *Client) Connect(ctx context.Context, path string, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodConnect, c.target(path), payload{}, opts)
}

func (c *Client) ConnectBytes(ctx context.Context, path string, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodConnect, c.target(path), payload{}, opts)
}

func (c *Client) Options(ctx context.Context, path string, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodOptions, c.target(path), payload{}, opts)
}

func (c *Client) OptionsBytes(ctx context.Context, path string, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodOptions, c.target(path), payload{}, opts)
}

// ServerOptions sends OPTIONS * to ask about the server as a whole.
// The base path is not used.
func (c *Client) ServerOptions(ctx context.Context, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodOptions, "*", payload{}, opts)
}

func (c *Client) ServerOptionsBytes(ctx context.Context, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodOptions, "*", payload{}, opts)
}

// Patch sends body with the given content type.
func (c *Client) Patch(ctx context.Context, path, contentType string, body []byte, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodPatch, c.target(path), bodyOf(contentType, body), opts)
}

func (c *Client) PatchBytes(ctx context.Context, path, contentType string, body []byte, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodPatch, c.target(path), bodyOf(contentType, body), opts)
}

// Put sends body with the given content type.
func (c *Client) Put(ctx context.Context, path, contentType string, body []byte, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodPut, c.target(path), bodyOf(contentType, body), opts)
}

func (c *Client) PutBytes(ctx context.Context, path, contentType string, body []byte, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodPut, c.target(path), bodyOf(contentType, body), opts)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodDelete, c.target(path), payload{}, opts)
}

func (c *Client) DeleteBytes(ctx context.Context, path string, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodDelete, c.target(path), payload{}, opts)
}

// Post sends body with the given content type.
func (c *Client) Post(ctx context.Context, path, contentType string, body []byte, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodPost, c.target(path), bodyOf(contentType, body), opts)
}

func (c *Client) PostBytes(ctx context.Context, path, contentType string, body []byte, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodPost, c.target(path), bodyOf(contentType, body), opts)
}

// PostForm sends params as an application/x-www-form-urlencoded body.
func (c *Client) PostForm(ctx context.Context, path string, params url.Values, opts ...CallOption) (string, error) {
	return c.text(ctx, http.MethodPost, c.target(path), formOf(params), opts)
}

func (c *Client) PostFormBytes(ctx context.Context, path string, params url.Values, opts ...CallOption) ([]byte, error) {
	return c.raw(ctx, http.MethodPost, c.target(path), formOf(params), opts)
}

// PostMultipart sends entries as one multipart/form-data body. Repeated
// entries are sent once.
func (c *Client) PostMultipart(ctx context.Context, path string, entries []form.Entry, opts ...CallOption) (string, error) {
	fields, err := fieldsOf(entries)
	if err != nil {
		return "", err
	}

	return c.text(ctx, http.MethodPost, c.target(path), payload{fields: fields}, opts)
}

func (c *Client) PostMultipartBytes(ctx context.Context, path string, entries []form.Entry, opts ...CallOption) ([]byte, error) {
	fields, err := fieldsOf(entries)
	if err != nil {
		return nil, err
	}

	return c.raw(ctx, http.MethodPost, c.target(path), payload{fields: fields}, opts)
}

func bodyOf(contentType string, body []byte) payload {
	if body == nil {
		body = []byte{}
	}
	return payload{contentType: contentType, body: body}
}

func formOf(params url.Values) payload {
	if params == nil {
		params = url.Values{}
	}
	return payload{params: params}
}
