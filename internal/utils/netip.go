package utils

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ParseHostNoPort returns the host part (no port) from strings like "ip:port", "[v6]:port", or "ip".
func ParseHostNoPort(s string) string {
	if s == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(s); err == nil {
		return h
	}
	return strings.Trim(s, "[]")
}

// FirstForwardedFor returns the left-most address of an X-Forwarded-For header.
func FirstForwardedFor(xff string) string {
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}

// ClientIP resolves the client address.
// With trustProxy it prefers X-Forwarded-For (first) then X-Real-IP,
// otherwise only RemoteAddr is used.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, v := range []string{
			FirstForwardedFor(r.Header.Get("X-Forwarded-For")),
			strings.TrimSpace(r.Header.Get("X-Real-IP")),
		} {
			if ip := ParseHostNoPort(v); ip != "" {
				return ip
			}
		}
	}
	return ParseHostNoPort(r.RemoteAddr)
}

// IPMatcher matches addresses against exact IPs and CIDR prefixes.
type IPMatcher struct {
	prefixes []netip.Prefix
}

// NewIPMatcher parses list; invalid entries are ignored.
// A bare IP is stored as a single-address prefix.
func NewIPMatcher(list []string) *IPMatcher {
	m := &IPMatcher{}
	for _, raw := range list {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if p, err := netip.ParsePrefix(s); err == nil {
			m.prefixes = append(m.prefixes, p.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(s); err == nil {
			addr = addr.Unmap()
			m.prefixes = append(m.prefixes, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return m
}

func (m *IPMatcher) IsEmpty() bool {
	return len(m.prefixes) == 0
}

func (m *IPMatcher) Allow(ipStr string) bool {
	addr, err := netip.ParseAddr(ipStr)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range m.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
