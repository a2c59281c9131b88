package client

import (
	"crypto/tls"
	"fmt"

	"github.com/braginxv/netgym/transport"
)

// Lifetime is the reuse strategy for a client's connection.
type Lifetime int

const (
	// Closable opens a fresh connection per request and closes it when the
	// request completes.
	Closable Lifetime = iota
	// Sequential reuses one connection. A request is dispatched only after
	// the previous one has completed.
	Sequential
	// Pipelining reuses one connection and dispatches requests without
	// waiting for earlier ones, at least the pipelining interval apart.
	Pipelining
)

func (l Lifetime) String() string {
	switch l {
	case Closable:
		return "closable"
	case Sequential:
		return "sequential"
	case Pipelining:
		return "pipelining"
	default:
		return fmt.Sprintf("Lifetime(%d)", int(l))
	}
}

// connect builds the single connection of a client from its configuration.
func connect(tr transport.Transport, cfg *config) (transport.Conn, error) {
	addr, err := cfg.address()
	if err != nil {
		return nil, err
	}

	switch cfg.Lifetime {
	case Closable:
		return tr.Closable(addr)
	case Sequential:
		return tr.Sequential(addr)
	case Pipelining:
		return tr.Pipelining(addr, cfg.Interval)
	default:
		return nil, fmt.Errorf("unknown lifetime %s", cfg.Lifetime)
	}
}

// address resolves the endpoint of the base URL. The port defaults to the
// scheme's conventional port.
func (cfg *config) address() (transport.Address, error) {
	addr := transport.Address{
		Host: cfg.host,
		Port: cfg.port,
	}

	switch cfg.scheme {
	case "http":
		if addr.Port <= 0 {
			addr.Port = 80
		}
	case "https":
		if addr.Port <= 0 {
			addr.Port = 443
		}
		addr.TLS = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			ServerName:   cfg.host,
			Certificates: cfg.certificates,
			RootCAs:      cfg.rootCAs,
		}
	default:
		return transport.Address{}, &UnsupportedSchemeError{Scheme: cfg.scheme}
	}

	return addr, nil
}
