// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// OwnerType represents the type of entity that can own a place.
type OwnerType string

const (
	// OwnerTypeUser indicates the place belongs to a single user.
	OwnerTypeUser OwnerType = "USER"
	// OwnerTypeGroup indicates the place is shared by a group.
	OwnerTypeGroup OwnerType = "GROUP"
)

// String returns the string representation of the OwnerType.
func (o OwnerType) String() string {
	return string(o)
}

// IsValid checks if the OwnerType is a valid value.
func (o OwnerType) IsValid() bool {
	switch o {
	case OwnerTypeUser, OwnerTypeGroup:
		return true
	default:
		return false
	}
}

// OwnerRef identifies who owns a place.
type OwnerRef struct {
	ID   uuid.UUID
	Type OwnerType
}

// IsGroup reports whether the owner is a group.
func (o OwnerRef) IsGroup() bool {
	return o.Type == OwnerTypeGroup
}
