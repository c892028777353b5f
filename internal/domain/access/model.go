package access

import (
	"errors"
	"strings"
)

// Policy decide qué se exige para operar sobre un gato por id.
type Policy string

const (
	// PolicyOwner: el gato debe existir y pertenecer al usuario.
	PolicyOwner Policy = "owner"
	// PolicyOpen: solo se exige que el gato exista (comportamiento histórico).
	PolicyOpen Policy = "open"
)

var (
	ErrNotFound     = errors.New("cat not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(PolicyOwner):
		return PolicyOwner, nil
	case string(PolicyOpen):
		return PolicyOpen, nil
	default:
		return "", ErrInvalidInput
	}
}
