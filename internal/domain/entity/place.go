// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Place is a named address record owned by either a user or a group.
type Place struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for the place.
	Nickname   string     // Display name chosen by the owner, e.g., "Mom's house".
	Address    Address    // Postal address of the place.
	Notes      string     // Free-form notes such as gate codes.
	IsPrimary  bool       // Default address of a user. Always false for group places.
	OwnerID    uuid.UUID  // The ID of the user or group that owns this place.
	OwnerType  OwnerType  // USER or GROUP.
	CreatedBy  uuid.UUID  // The user who created the place.
	CreatedAt  time.Time  // Timestamp of when this place was created.
	UpdatedAt  time.Time  // Timestamp of the last modification.
	ArchivedAt *time.Time // Set when the place has been deleted.
}

// Owner returns the owner reference of the place.
func (p *Place) Owner() OwnerRef {
	return OwnerRef{ID: p.OwnerID, Type: p.OwnerType}
}

// IsArchived reports whether the place has been deleted.
func (p *Place) IsArchived() bool {
	return p.ArchivedAt != nil
}
