// Package dnsdialer provides an outbound dialer backed by an in-process DNS cache,
// used by the Graph API client so every forwarded event does not pay a lookup.
package dnsdialer

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/dnscache"

	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

const defaultRefreshInterval = 5 * time.Minute

// Dialer resolves hosts through a refreshed cache before dialing
type Dialer struct {
	resolver        *dnscache.Resolver
	dialer          *net.Dialer
	refreshInterval time.Duration
	logger          logger.Logger
}

// New creates a Dialer. refreshInterval <= 0 falls back to 5 minutes.
func New(refreshInterval time.Duration, log logger.Logger) *Dialer {
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	return &Dialer{
		resolver: &dnscache.Resolver{},
		dialer: &net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		},
		refreshInterval: refreshInterval,
		logger:          log,
	}
}

// DialContext has the signature of net.Dialer.DialContext
func (d *Dialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return nil, err
	}

	ips, err := d.resolver.LookupHost(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, &net.DNSError{Err: "no IP addresses found", Name: host}
	}

	// try each address once, returning the last error
	var lastErr error
	for _, ip := range ips {
		conn, err := d.dialer.DialContext(ctx, network, net.JoinHostPort(ip, port))
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// Run refreshes the cache until ctx is done. Entries not used since the
// previous refresh are dropped.
func (d *Dialer) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.resolver.Refresh(true)
			if d.logger != nil {
				d.logger.WithField("interval", d.refreshInterval.String()).Debug("DNS cache refreshed")
			}
		}
	}
}

// NewHTTPClient returns a client whose transport dials through d
func (d *Dialer) NewHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = d.DialContext
	transport.MaxIdleConnsPerHost = 20

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
