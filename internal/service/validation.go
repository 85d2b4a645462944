package service

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// ValidEmail reports whether s is acceptable as a User or Author identifier.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
