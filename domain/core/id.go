package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// SnapshotID identifies one memoized load of the source spreadsheet.
type SnapshotID ID

func (id SnapshotID) String() string { return ID(id).String() }

// ParseSnapshotID parses a string into SnapshotID
func ParseSnapshotID(s string) (SnapshotID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("snapshot ID cannot be empty")
	}
	return SnapshotID(s), nil
}
