package validation

import (
	"net/url"
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Accepted email-domain suffix, e.g. "@nitw.ac.in"
	EmailDomainPattern = `^@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

	// Mobile number, exactly 10 digits
	MobilePattern = `^\d{10}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email       *regexp.Regexp
	EmailDomain *regexp.Regexp
	Mobile      *regexp.Regexp
}{
	Email:       regexp.MustCompile(EmailPattern),
	EmailDomain: regexp.MustCompile(EmailDomainPattern),
	Mobile:      regexp.MustCompile(MobilePattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidEmailDomain reports whether the value is a valid email-domain suffix
func IsValidEmailDomain(domain string) bool {
	return CompiledPatterns.EmailDomain.MatchString(domain)
}

// IsValidMobile reports whether the value is a 10-digit mobile number
func IsValidMobile(mobile string) bool {
	return CompiledPatterns.Mobile.MatchString(mobile)
}

// IsValidURL reports whether the value is an absolute http(s) URL
func IsValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
