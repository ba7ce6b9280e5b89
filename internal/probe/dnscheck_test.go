package probe

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	ips   []net.IP
	ipErr error
	cname string
	ns    []*net.NS
	nsErr error
}

func (s stubResolver) LookupIP(context.Context, string, string) ([]net.IP, error) {
	return s.ips, s.ipErr
}
func (s stubResolver) LookupCNAME(context.Context, string) (string, error) {
	if s.cname == "" {
		return "", errors.New("no cname")
	}
	return s.cname, nil
}
func (s stubResolver) LookupNS(context.Context, string) ([]*net.NS, error) { return s.ns, s.nsErr }

func TestDiagnoseDNS(t *testing.T) {
	notFound := &net.DNSError{Err: "no such host", IsNotFound: true}
	timeout := &net.DNSError{Err: "i/o timeout", IsTimeout: true}

	cases := []struct {
		name  string
		host  string
		r     stubResolver
		class string
	}{
		{"empty", "", stubResolver{}, "INVALID_NAME"},
		{"url instead of host", "https://x", stubResolver{}, "INVALID_NAME"},
		{"resolves", "example.com", stubResolver{ips: []net.IP{net.IPv4(93, 184, 216, 34)}}, "RESOLVES"},
		{"nxdomain", "nope.invalid", stubResolver{ipErr: notFound, nsErr: notFound}, "NXDOMAIN"},
		{"zone without A", "example.com", stubResolver{ipErr: notFound, ns: []*net.NS{{Host: "ns1.example.com."}}}, "NO_A_RECORD"},
		{"timeout", "example.com", stubResolver{ipErr: timeout, nsErr: timeout}, "SERVFAIL_or_TIMEOUT"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DiagnoseDNS(context.Background(), c.r, c.host)
			assert.Equal(t, c.class, got.Class)
		})
	}
}

func TestDiagnoseDNS_RecordsCNAME(t *testing.T) {
	r := stubResolver{ips: []net.IP{net.IPv4(1, 2, 3, 4)}, cname: "edge.cdn.example."}
	got := DiagnoseDNS(context.Background(), r, "www.example.com")
	assert.Equal(t, "edge.cdn.example", got.CNAME)
	assert.True(t, got.HasAOrAAAA)
}

func TestExtractHost(t *testing.T) {
	assert.Equal(t, "example.com", extractHost("https://example.com:8443/login"))
	assert.Equal(t, "", extractHost(""))
}
