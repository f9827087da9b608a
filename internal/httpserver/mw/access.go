package mw

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/sharelink/internal/logger"
	"github.com/MrSnakeDoc/sharelink/internal/utils"
)

func passthrough(next http.Handler) http.Handler { return next }

// AllowOnlyCIDRS allows only specific IPs/CIDRs. An empty list disables the check.
// trustProxy should be true only behind a trusted reverse proxy.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		return passthrough
	}

	log.Debugf("AllowOnlyCIDRS: %d rules, trustProxy=%v", len(allowed), trustProxy)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if !m.Allow(ip) {
				log.Debug("request rejected by cidr filter", logger.String("ip", ip))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EnforceHost allows requests only if r.Host matches one of the allowed hosts.
// Patterns like "*.example.com" match any subdomain. An empty list disables the check.
func EnforceHost(allowedHosts []string, log logger.Logger) func(http.Handler) http.Handler {
	if len(allowedHosts) == 0 {
		return passthrough
	}

	log.Debugf("EnforceHost: hosts=%v", allowedHosts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, pattern := range allowedHosts {
				if matchHost(r.Host, pattern) {
					next.ServeHTTP(w, r)
					return
				}
			}
			log.Debug("request rejected by host filter", logger.String("host", r.Host))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
}

func matchHost(host, pattern string) bool {
	if strings.EqualFold(host, pattern) {
		return true
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok && strings.HasPrefix(suffix, ".") {
		return strings.HasSuffix(strings.ToLower(host), strings.ToLower(suffix))
	}
	return false
}
