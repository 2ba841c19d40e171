package utils

import "regexp"

// emailPattern: non-empty local part, an @, and a domain containing a dot.
// No whitespace anywhere. Deliberately loose; the store's unique index is
// the real gatekeeper against junk re-submission.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
