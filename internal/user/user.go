// Package user identifies the person running chores so interactive
// prompts can preselect them.
package user

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is returned when no username can be determined
const Unknown = "unknown"

// current is swapped in tests
var current = user.Current

// GetCurrentUsername returns the current system username.
// It falls back to $USER, then to Unknown.
func GetCurrentUsername() string {
	if u, err := current(); err == nil && u.Username != "" {
		return shortName(u.Username)
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return Unknown
}

// shortName drops a Windows domain prefix (DOMAIN\name)
func shortName(username string) string {
	if i := strings.LastIndex(username, `\`); i >= 0 {
		return username[i+1:]
	}
	return username
}

// Matches reports whether a stored person name refers to username
func Matches(personName, username string) bool {
	return strings.EqualFold(strings.TrimSpace(personName), username)
}
