// Package validator provides syntactic checks for batch input items.
// The checks are intentionally permissive filters, not full RFC
// validation: the remote service is the authoritative check.
package validator

import (
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var (
	// One or more dot-separated labels of 1-63 alphanumeric/hyphen
	// characters not starting with a hyphen, final label 2-6 alpha.
	domainRegex = regexp.MustCompile(`^(?:[A-Za-z0-9][A-Za-z0-9\-]{0,62}\.)+[A-Za-z]{2,6}$`)

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// IsDomain reports whether s looks like a domain name.
func IsDomain(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	return domainRegex.MatchString(s)
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	if len(s) == 0 || len(s) > 254 {
		return false
	}
	return emailRegex.MatchString(s)
}

// NormalizeDomain normalizes a domain to its canonical form.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimSuffix(domain, ".")
	domain = strings.TrimPrefix(domain, "www.")
	return domain
}

// NormalizeEmail normalizes an email to its canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegistrableDomain returns the eTLD+1 for a host, falling back to the
// normalized input when the public suffix list cannot resolve it.
func RegistrableDomain(host string) string {
	host = NormalizeDomain(host)
	if host == "" {
		return ""
	}
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return etld1
}

// EmailDomain extracts the host part of an email address.
// Returns empty string when the input has no "@".
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return NormalizeDomain(email[at+1:])
}
