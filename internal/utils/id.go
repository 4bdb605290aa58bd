package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewTaskID generates a 32 character hex task identifier from a random
// UUID. IDs are globally unique in practice, which keeps them unique
// within any project.
func NewTaskID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
