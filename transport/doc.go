// Package transport defines the callback-driven transport consumed by
// [github.com/braginxv/netgym/client] and provides a default
// implementation on top of [net/http].
//
// # Connections
//
// A [Transport] creates a [Conn] for an [Address] with one of three
// reuse strategies:
//
//   - [Transport.Closable] opens a fresh connection per request.
//   - [Transport.Sequential] reuses one connection and dispatches the next
//     request only after the previous request's listener returned.
//   - [Transport.Pipelining] dispatches in call order, at least a minimum
//     interval apart, without waiting for earlier requests to complete.
//
// # Listeners
//
// [Conn.Send] never blocks on I/O. The outcome is reported to the
// [Listener] passed with the request, through exactly one call to
// Succeeded or Failed:
//
//	t := transport.NewHTTP(8, func() *slog.Logger { return slog.Default() })
//	conn, err := t.Sequential(transport.Address{Host: "example.com", Port: 80})
//	conn.Send(ctx, &transport.Request{Method: http.MethodGet, Path: "/"}, listener)
package transport
