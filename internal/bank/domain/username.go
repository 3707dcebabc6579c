package domain

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MaxUsernameLength = 64

	reservedUsernameChars = ".*>"
)

// ValidateUsername accepts names that fit in one NATS subject token: no
// whitespace, control characters, dots or wildcards.
func ValidateUsername(username string) error {
	if username == "" {
		return &InvalidArgumentsError{Msg: "username must not be empty"}
	}

	if len(username) > MaxUsernameLength {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("username is longer than %d bytes", MaxUsernameLength)}
	}

	if strings.ContainsAny(username, reservedUsernameChars) {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("username %q contains one of %q", username, reservedUsernameChars)}
	}

	for _, r := range username {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == unicode.ReplacementChar {
			return &InvalidArgumentsError{Msg: fmt.Sprintf("username %q contains whitespace or control characters", username)}
		}
	}

	return nil
}
