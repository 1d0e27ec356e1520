package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrComplaintNotFound is returned when no complaint has the requested id
	ErrComplaintNotFound = errors.New("complaint not found")
	// ErrIncompleteInput is matched by IncompleteInputError
	ErrIncompleteInput = errors.New("incomplete input")
	// ErrInvalidCredentials is returned for an unknown username or a wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionInvalid is returned for unknown or expired admin sessions
	ErrSessionInvalid = errors.New("invalid or expired session")
)

// IncompleteInputError lists the required form fields that were empty
type IncompleteInputError struct {
	Missing []string
}

func (e *IncompleteInputError) Error() string {
	return fmt.Sprintf("incomplete input: missing %s", strings.Join(e.Missing, ", "))
}

// Is lets errors.Is(err, ErrIncompleteInput) match
func (e *IncompleteInputError) Is(target error) bool {
	return target == ErrIncompleteInput
}
