// Package client provides blocking, single-result HTTP calls on top of the
// callback-driven [github.com/braginxv/netgym/transport].
//
// # Building a Client
//
// Use [Build] with a base URL and functional options:
//
//	c, err := client.Build("https://api.example.com/v1",
//		client.WithLifetime(client.Sequential),
//		client.WithUserAgent("myapp/1.0"),
//		client.WithHeaders(map[string]string{"Accept": "application/json"}),
//	)
//	defer c.Close()
//
// The connection is opened on the first request and reused according to
// the client's [Lifetime].
//
// # Making Requests
//
// Every HTTP verb has a method returning the decoded body and, where it
// makes sense, a Bytes variant returning the raw body:
//
//	s, err := c.Get(ctx, "/users", client.WithQuery(url.Values{"page": {"2"}}))
//	b, err := c.PostBytes(ctx, "/blobs", client.ContentTypeOctet, data)
//
// The resource path is appended to the base URL path as is. Per-call
// headers given with [WithCallHeaders] override client headers of the
// same name.
//
// # Multipart Forms
//
// Form parts are form.String, form.Raw and form.File values:
//
//	_, err = c.PostMultipart(ctx, "/upload", []form.Entry{
//		form.String{Name: "title", ContentType: "text/plain", Content: "report"},
//		form.File{Name: "doc", FileName: "r.pdf", ContentType: "application/pdf", Body: form.NewBytes(pdf)},
//	})
//
// # Errors
//
// Failures reported by the transport are returned as [*NetworkError].
// Calls do not time out on their own; bound them with the context.
package client
