// Package validation holds the input rules for usernames, passwords, and
// post content. All checks are pure, accumulate their violations in a fixed
// order, and never panic on arbitrary input; the returned messages are shown
// to the user as-is by the rendering layer.
package validation

import (
	"regexp"
	"strings"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 10
	PasswordMinLen = 8
	PasswordMaxLen = 20

	// Symbols the password policy accepts (and requires one of).
	PasswordSymbols = "@$!%*?&"
)

var (
	usernameRe        = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	passwordCharsetRe = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]+$`)
)

// Username checks a (pre-trimmed) username and returns the violated rules
// as user-facing messages, in rule order.
func Username(s string) []string {
	var errs []string

	if len(s) < UsernameMinLen {
		errs = append(errs, "Username must be at least 3 characters long")
	}
	if len(s) > UsernameMaxLen {
		errs = append(errs, "Username must be at most 10 characters long")
	}
	if !usernameRe.MatchString(s) {
		errs = append(errs, "Username must not contain special characters")
	}

	return errs
}

// Password checks a password against the length and composition policy.
// Length is reported separately; a missing character class or a character
// outside the allowed set yields the composite policy message.
func Password(s string) []string {
	var errs []string

	if len(s) < PasswordMinLen {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if len(s) > PasswordMaxLen {
		errs = append(errs, "Password must be at most 20 characters long")
	}
	if !passwordComposition(s) {
		errs = append(errs, "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character")
	}

	return errs
}

func passwordComposition(s string) bool {
	if !passwordCharsetRe.MatchString(s) {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// PostTitle checks a (pre-trimmed) post title.
func PostTitle(s string) []string {
	var errs []string

	if s == "" {
		errs = append(errs, "You must provide a title")
	}
	if len(s) > 100 {
		errs = append(errs, "Title must be at most 100 characters long")
	}

	return errs
}

// PostBody checks a (pre-trimmed) post body.
func PostBody(s string) []string {
	if s == "" {
		return []string{"You must provide content"}
	}
	return nil
}
