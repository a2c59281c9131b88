package client

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// config is the immutable configuration of one Client.
type config struct {
	BaseURL   string            `json:"baseURL" validate:"required,url"`
	Lifetime  Lifetime          `json:"lifetime" validate:"gte=0,lte=2"`
	UserAgent string            `json:"userAgent" validate:"required"`
	Headers   map[string]string `json:"headers" validate:"dive,keys,required,endkeys"`
	Interval  time.Duration     `json:"pipeliningInterval" validate:"gte=0"`

	scheme       string
	host         string
	port         int
	basePath     string
	certificates []tls.Certificate
	rootCAs      *x509.CertPool
}

func newConfig(baseURL string, opts options) (*config, error) {
	cfg := config{
		BaseURL:      baseURL,
		Lifetime:     opts.lifetime,
		UserAgent:    opts.userAgent,
		Headers:      opts.headers,
		Interval:     opts.interval,
		certificates: opts.certificates,
		rootCAs:      opts.rootCAs,
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	if err := check(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	cfg.scheme = strings.ToLower(u.Scheme)
	cfg.host = u.Hostname()
	cfg.basePath = u.EscapedPath()
	if p := u.Port(); p != "" {
		cfg.port, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("parsing base url port: %w", err)
		}
	}

	return &cfg, nil
}
