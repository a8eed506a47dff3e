package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Validation errors
var (
	ErrInvalidName   = errors.New("invalid hot search name")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidVotes  = errors.New("invalid votes")
)

// Validation constants
const (
	MinNameLength     = 1
	DefaultMaxNameLen = 64
)

// ValidateEntryName trims name and checks it can identify a hot search.
func ValidateEntryName(name string, maxLen int) (string, error) {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return "", fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if maxLen <= 0 {
		maxLen = DefaultMaxNameLen
	}
	if len([]rune(name)) > maxLen {
		return "", fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: contains control characters", ErrInvalidName)
		}
	}

	return name, nil
}

// ValidateAmount validates a purchase amount.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}
	return nil
}

// ValidateVotes validates a vote count.
func ValidateVotes(votes int64) error {
	if votes <= 0 {
		return fmt.Errorf("%w: must be positive", ErrInvalidVotes)
	}
	return nil
}
