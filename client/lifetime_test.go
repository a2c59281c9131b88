package client

import (
	"context"
	"crypto/x509"
	"errors"
	"testing"
	"time"

	"github.com/braginxv/netgym/transport"
)

// variantTransport records which connection variant was requested.
type variantTransport struct {
	variant  string
	addr     transport.Address
	interval time.Duration
}

func (v *variantTransport) Closable(addr transport.Address) (transport.Conn, error) {
	v.variant, v.addr = "closable", addr
	return nopConn{}, nil
}

func (v *variantTransport) Sequential(addr transport.Address) (transport.Conn, error) {
	v.variant, v.addr = "sequential", addr
	return nopConn{}, nil
}

func (v *variantTransport) Pipelining(addr transport.Address, interval time.Duration) (transport.Conn, error) {
	v.variant, v.addr, v.interval = "pipelining", addr, interval
	return nopConn{}, nil
}

type nopConn struct{}

func (nopConn) ID() transport.ChannelID { return transport.ChannelID{} }
func (nopConn) Send(_ context.Context, _ *transport.Request, l transport.Listener) {
	l.Succeeded(&transport.Response{StatusCode: 200})
}
func (nopConn) Close() error { return nil }

func TestConnect_Variants(t *testing.T) {
	testCases := []struct {
		name        string
		baseURL     string
		opts        []Option
		expVariant  string
		expPort     int
		expTLS      bool
		expInterval time.Duration
	}{
		{
			name:       "Closable plaintext default port",
			baseURL:    "http://example.com/api",
			expVariant: "closable",
			expPort:    80,
		},
		{
			name:       "Sequential TLS default port",
			baseURL:    "https://example.com",
			opts:       []Option{WithLifetime(Sequential)},
			expVariant: "sequential",
			expPort:    443,
			expTLS:     true,
		},
		{
			name:        "Pipelining explicit port",
			baseURL:     "HTTP://example.com:8080/",
			opts:        []Option{WithLifetime(Pipelining), WithPipeliningInterval(25 * time.Millisecond)},
			expVariant:  "pipelining",
			expPort:     8080,
			expInterval: 25 * time.Millisecond,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var opts options
			for _, opt := range tc.opts {
				if err := opt(&opts); err != nil {
					t.Fatal(err)
				}
			}
			cfg, err := newConfig(tc.baseURL, opts)
			if err != nil {
				t.Fatalf("exp no error, got: %v", err)
			}

			tr := &variantTransport{}
			if _, err := connect(tr, cfg); err != nil {
				t.Fatalf("exp no error, got: %v", err)
			}

			if tr.variant != tc.expVariant {
				t.Errorf("exp variant %q, got %q", tc.expVariant, tr.variant)
			}
			if tr.addr.Host != "example.com" {
				t.Errorf("exp host example.com, got %q", tr.addr.Host)
			}
			if tr.addr.Port != tc.expPort {
				t.Errorf("exp port %d, got %d", tc.expPort, tr.addr.Port)
			}
			if (tr.addr.TLS != nil) != tc.expTLS {
				t.Errorf("exp tls %v, got %v", tc.expTLS, tr.addr.TLS != nil)
			}
			if tr.interval != tc.expInterval {
				t.Errorf("exp interval %v, got %v", tc.expInterval, tr.interval)
			}
		})
	}
}

func TestConnect_TLSMaterial(t *testing.T) {
	pool := x509.NewCertPool()

	var opts options
	if err := WithRootCAs(pool)(&opts); err != nil {
		t.Fatal(err)
	}
	cfg, err := newConfig("https://secure.example.com:9443/v1", opts)
	if err != nil {
		t.Fatal(err)
	}

	addr, err := cfg.address()
	if err != nil {
		t.Fatalf("exp no error, got: %v", err)
	}
	if addr.TLS == nil {
		t.Fatal("exp tls config")
	}
	if addr.TLS.RootCAs != pool {
		t.Errorf("exp root pool to be used")
	}
	if addr.TLS.ServerName != "secure.example.com" {
		t.Errorf("exp server name secure.example.com, got %q", addr.TLS.ServerName)
	}
}

func TestConnect_UnsupportedScheme(t *testing.T) {
	cfg, err := newConfig("ftp://files.example.com/pub", options{})
	if err != nil {
		t.Fatalf("exp no error, got: %v", err)
	}

	tr := &variantTransport{}
	_, err = connect(tr, cfg)

	var schemeErr *UnsupportedSchemeError
	if !errors.As(err, &schemeErr) {
		t.Fatalf("exp UnsupportedSchemeError, got: %v", err)
	}
	if schemeErr.Scheme != "ftp" {
		t.Errorf("exp scheme ftp, got %q", schemeErr.Scheme)
	}
	if tr.variant != "" {
		t.Errorf("exp no connection to be requested, got %q", tr.variant)
	}
}

func TestLifetime_String(t *testing.T) {
	for l, exp := range map[Lifetime]string{
		Closable:     "closable",
		Sequential:   "sequential",
		Pipelining:   "pipelining",
		Lifetime(42): "Lifetime(42)",
	} {
		if got := l.String(); got != exp {
			t.Errorf("exp %q, got %q", exp, got)
		}
	}
}
