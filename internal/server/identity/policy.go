package identity

import (
	"fmt"
	"strings"
	"unicode"
)

const allowedUserNameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._@+"

// Policy is the set of rules new credentials must satisfy.
type Policy struct {
	MinPasswordLength int
}

// DefaultPolicy accepts short passwords as long as they mix character classes.
var DefaultPolicy = Policy{MinPasswordLength: 4}

// CheckPassword returns every rule password breaks, in a fixed order.
func (p Policy) CheckPassword(password string) []string {
	var reasons []string

	if len([]rune(password)) < p.MinPasswordLength {
		reasons = append(reasons, fmt.Sprintf("Passwords must be at least %d characters.", p.MinPasswordLength))
	}

	var digit, lower, upper, other bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			other = true
		}
	}

	if !other {
		reasons = append(reasons, "Passwords must have at least one non alphanumeric character.")
	}
	if !digit {
		reasons = append(reasons, "Passwords must have at least one digit ('0'-'9').")
	}
	if !lower {
		reasons = append(reasons, "Passwords must have at least one lowercase ('a'-'z').")
	}
	if !upper {
		reasons = append(reasons, "Passwords must have at least one uppercase ('A'-'Z').")
	}

	return reasons
}

// CheckAccount validates the user name and email of a new account.
func (p Policy) CheckAccount(userName, email string) []string {
	var reasons []string

	if userName == "" || strings.Trim(userName, allowedUserNameChars) != "" {
		reasons = append(reasons, fmt.Sprintf("Username '%s' is invalid, can only contain letters or digits.", userName))
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		reasons = append(reasons, fmt.Sprintf("Email '%s' is invalid.", email))
	}

	return reasons
}
