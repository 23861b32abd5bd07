package usecase

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail reports whether the address has a plausible mailbox@domain
// shape. Full RFC validation is deliberately out of reach of a regexp.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ClampPage normalizes limit/offset pagination values.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
