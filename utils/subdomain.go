package utils

import (
	"strings"
)

// NormalizeSubdomain lowercases and trims a requested subdomain.
func NormalizeSubdomain(subdomain string) string {
	return strings.ToLower(strings.TrimSpace(subdomain))
}

// IsValidSubdomain checks that a string can be used as a DNS label:
// 1-63 characters, lowercase alphanumeric and hyphens, must start and end
// with an alphanumeric.
func IsValidSubdomain(subdomain string) bool {
	if len(subdomain) == 0 || len(subdomain) > 63 {
		return false
	}

	if !isAlphanumeric(subdomain[0]) || !isAlphanumeric(subdomain[len(subdomain)-1]) {
		return false
	}

	for i := 0; i < len(subdomain); i++ {
		if !isAlphanumeric(subdomain[i]) && subdomain[i] != '-' {
			return false
		}
	}

	return true
}

// isAlphanumeric checks if a byte is lowercase alphanumeric
func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
