package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	BattingSideLeft  = "Left"
	BattingSideRight = "Right"

	HittingSideLeft   = "left"
	HittingSideRight  = "right"
	HittingSideSwitch = "switch"
)

var ErrInvalidBattingSide = errors.New("invalid batting side")

// NormalizeBattingSide canonicalizes a free-form batting side to exactly
// "Left" or "Right". The datastore stores nothing else. The normalizer does
// not trust its callers to have validated first.
func NormalizeBattingSide(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return BattingSideLeft, nil
	case "right":
		return BattingSideRight, nil
	default:
		return "", fmt.Errorf("%w: %q must be \"left\" or \"right\" (case insensitive)", ErrInvalidBattingSide, value)
	}
}

// IsValidBattingSide reports whether a value is already in canonical form.
func IsValidBattingSide(value string) bool {
	return value == BattingSideLeft || value == BattingSideRight
}

// IsValidHittingSide reports whether a profile hitting preference is known.
func IsValidHittingSide(value string) bool {
	return value == HittingSideLeft || value == HittingSideRight || value == HittingSideSwitch
}
