package service

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const (
	defaultNameserver = "1.1.1.1:53"
	resolvConfPath    = "/etc/resolv.conf"
)

// DNSCnameResolver asks a nameserver for the CNAME record of a name and returns its
// first hop. Chains behind the target are not followed, so a proxy host that is
// itself a CNAME still matches.
type DNSCnameResolver struct {
	client     *dns.Client
	nameserver string
}

// NewDNSCnameResolver queries nameserver ("host" or "host:port"). An empty value
// uses the first server of /etc/resolv.conf.
func NewDNSCnameResolver(nameserver string) *DNSCnameResolver {
	if nameserver == "" {
		nameserver = systemNameserver()
	}
	if _, _, err := net.SplitHostPort(nameserver); err != nil {
		nameserver = net.JoinHostPort(nameserver, "53")
	}
	return &DNSCnameResolver{
		client:     &dns.Client{Timeout: 5 * time.Second},
		nameserver: nameserver,
	}
}

func systemNameserver() string {
	cfg, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(cfg.Servers) == 0 {
		return defaultNameserver
	}
	return net.JoinHostPort(cfg.Servers[0], cfg.Port)
}

// ResolveCname returns the CNAME target of name without its trailing dot.
// NXDOMAIN and answers without a CNAME for name are reported as not found.
func (r *DNSCnameResolver) ResolveCname(ctx context.Context, name string) (string, bool, error) {
	name = strings.TrimSuffix(name, ".")
	fqdn := dns.Fqdn(name)

	msg := new(dns.Msg)
	msg.SetQuestion(fqdn, dns.TypeCNAME)
	msg.RecursionDesired = true

	in, _, err := r.client.ExchangeContext(ctx, msg, r.nameserver)
	if err != nil {
		return "", false, fmt.Errorf("CNAME lookup failed for %s: %w", name, err)
	}

	switch in.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("CNAME lookup failed for %s: %s", name, dns.RcodeToString[in.Rcode])
	}

	for _, rr := range in.Answer {
		cname, ok := rr.(*dns.CNAME)
		if ok && strings.EqualFold(cname.Hdr.Name, fqdn) {
			return strings.TrimSuffix(cname.Target, "."), true, nil
		}
	}
	return "", false, nil
}
