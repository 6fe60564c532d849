// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"places/internal/domain/entity"
	"places/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for place persistence.
var (
	// ErrPlaceNotFound is returned when a place is not found.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrPrimaryPlaceConflict is returned when a second primary place would be stored for the same user.
	ErrPrimaryPlaceConflict = errors.New("owner already has a primary place")
)

// PlaceRepository defines the interface for place-related database operations.
// Places belong polymorphically to either a user or a group.
type PlaceRepository interface {
	// CreatePlace persists a new place.
	CreatePlace(ctx context.Context, place *entity.Place) error

	// FindPlaceByID retrieves a place by its ID, archived places included.
	// Reads are routed to the primary database so that they observe preceding writes.
	FindPlaceByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// FindPlacesByOwner retrieves all non-archived places of an owner, primary first, then oldest first.
	FindPlacesByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Place, error)

	// CountPlacesByOwner returns the number of non-archived places of an owner.
	CountPlacesByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error)

	// UpdatePlace saves all mutable fields of an existing place.
	UpdatePlace(ctx context.Context, place *entity.Place) error

	// ArchivePlace marks a place as deleted. Archiving an archived place is a no-op.
	ArchivePlace(ctx context.Context, id uuid.UUID) error

	// ClearPrimaryPlace unsets the primary flag on every place of the owner.
	ClearPrimaryPlace(ctx context.Context, owner entity.OwnerRef) error
}
