package client

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name        string
		baseURL     string
		opts        options
		expErrField string
		expPath     string
		expPort     int
		expUA       string
	}{
		{
			name:    "Defaults",
			baseURL: "http://example.com",
			expPath: "",
			expUA:   DefaultUserAgent,
		},
		{
			name:    "Path and port",
			baseURL: "https://example.com:8443/api/v1/",
			opts:    options{userAgent: "custom/1.0"},
			expPath: "/api/v1/",
			expPort: 8443,
			expUA:   "custom/1.0",
		},
		{
			name:    "Escaped path is kept escaped",
			baseURL: "http://example.com/a%20b",
			expPath: "/a%20b",
			expUA:   DefaultUserAgent,
		},
		{
			name:        "Empty base url",
			baseURL:     "",
			expErrField: "baseURL",
		},
		{
			name:        "Relative base url",
			baseURL:     "/just/a/path",
			expErrField: "baseURL",
		},
		{
			name:        "Unknown lifetime",
			baseURL:     "http://example.com",
			opts:        options{lifetime: Lifetime(7)},
			expErrField: "lifetime",
		},
		{
			name:        "Negative interval",
			baseURL:     "http://example.com",
			opts:        options{interval: -time.Second},
			expErrField: "pipeliningInterval",
		},
		{
			name:        "Empty header name",
			baseURL:     "http://example.com",
			opts:        options{headers: map[string]string{"": "value"}},
			expErrField: "headers",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := newConfig(tc.baseURL, tc.opts)

			if tc.expErrField != "" {
				var fields FieldErrors
				if !errors.As(err, &fields) {
					t.Fatalf("exp FieldErrors, got: %v", err)
				}
				if !strings.Contains(fields.Error(), tc.expErrField) {
					t.Errorf("exp error on %q, got: %v", tc.expErrField, fields)
				}
				return
			}

			if err != nil {
				t.Fatalf("exp no error, got: %v", err)
			}
			if cfg.basePath != tc.expPath {
				t.Errorf("exp base path %q, got %q", tc.expPath, cfg.basePath)
			}
			if cfg.port != tc.expPort {
				t.Errorf("exp port %d, got %d", tc.expPort, cfg.port)
			}
			if cfg.UserAgent != tc.expUA {
				t.Errorf("exp user agent %q, got %q", tc.expUA, cfg.UserAgent)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name    string
		body    []byte
		charset string
		exp     string
		expErr  bool
	}{
		{name: "Default utf-8", body: []byte("héllo"), exp: "héllo"},
		{name: "Latin-1", body: []byte{'h', 0xe9, 'l', 'l', 'o'}, charset: "ISO-8859-1", exp: "héllo"},
		{name: "Windows-1251", body: []byte{0xcf, 0xf0, 0xe8, 0xe2, 0xe5, 0xf2}, charset: "windows-1251", exp: "Привет"},
		{name: "Unknown charset", body: []byte("x"), charset: "no-such-charset", expErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decode(tc.body, tc.charset)
			if tc.expErr {
				if err == nil {
					t.Error("exp error")
				}
				return
			}
			if err != nil {
				t.Fatalf("exp no error, got: %v", err)
			}
			if got != tc.exp {
				t.Errorf("exp %q, got %q", tc.exp, got)
			}
		})
	}
}
