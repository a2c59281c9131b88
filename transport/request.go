package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

const contentTypeURLEncoded = "application/x-www-form-urlencoded"

// build instantiates the *http.Request for r against addr.
func (r *Request) build(ctx context.Context, addr Address) (*http.Request, error) {
	u, err := r.url(addr)
	if err != nil {
		return nil, err
	}

	body, contentType, err := r.payload()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, addr.Origin(), body)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}
	req.URL = u

	for k, v := range r.Header {
		req.Header[k] = append([]string(nil), v...)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// url joins the origin of addr with the request path and query.
// A path of "*" addresses the server as a whole.
func (r *Request) url(addr Address) (*url.URL, error) {
	var u *url.URL
	if r.Path == "*" {
		u = &url.URL{Scheme: "http", Host: addr.HostPort(), Opaque: "*"}
		if addr.TLS != nil {
			u.Scheme = "https"
		}
	} else {
		var err error
		u, err = url.Parse(addr.Origin() + r.Path)
		if err != nil {
			return nil, fmt.Errorf("parsing request url: %w", err)
		}
	}

	if len(r.Query) > 0 {
		q := u.Query()
		for k, vs := range r.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u, nil
}

// payload encodes the request body and reports its Content-Type.
func (r *Request) payload() (io.Reader, string, error) {
	switch {
	case r.Fields != nil:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for _, f := range r.Fields {
			if err := writeField(w, f); err != nil {
				return nil, "", fmt.Errorf("writing field %q: %w", f.Name, err)
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", fmt.Errorf("closing multipart writer: %w", err)
		}
		return &buf, w.FormDataContentType(), nil

	case r.Params != nil:
		return strings.NewReader(r.Params.Encode()), withCharset(contentTypeURLEncoded, r.Charset), nil

	case r.Body != nil:
		return bytes.NewReader(r.Body), withCharset(r.ContentType, r.Charset), nil

	default:
		return nil, "", nil
	}
}

func writeField(w *multipart.Writer, f Field) error {
	h := make(textproto.MIMEHeader)

	disposition := fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(f.Name))
	if f.FileName != "" {
		disposition += fmt.Sprintf(`; filename="%s"`, escapeQuotes(f.FileName))
	}
	h.Set("Content-Disposition", disposition)

	if ct := withCharset(f.ContentType, f.Charset); ct != "" {
		h.Set("Content-Type", ct)
	}

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}

	_, err = part.Write(f.Content)
	return err
}

func withCharset(contentType, charset string) string {
	if contentType == "" || charset == "" {
		return contentType
	}
	return contentType + "; charset=" + charset
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
