package usecase

import (
	"context"

	"places/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlaceInput represents the input for creating a new place
type CreatePlaceInput struct {
	Owner     entity.OwnerRef
	Nickname  string
	Address   entity.Address
	Notes     string
	IsPrimary bool
}

// AddressInput carries a partial address update. Nil fields are left unchanged.
type AddressInput struct {
	Label      *string
	Street     *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// UpdatePlaceInput represents the input for updating an existing place.
// Nil fields keep their stored values.
type UpdatePlaceInput struct {
	Nickname  *string
	Address   *AddressInput
	Notes     *string
	IsPrimary *bool
}

// PlacesResult groups the places visible to a caller by owner type.
// Both slices are non-nil.
type PlacesResult struct {
	UserPlaces  []*entity.Place
	GroupPlaces []*entity.Place
}

// PlaceUsecase defines the interface for place management use cases
type PlaceUsecase interface {
	// ListPlaces returns the places of the target user and/or group as seen by the caller.
	// With no target the caller's own places are returned.
	ListPlaces(ctx context.Context, targetUserID, targetGroupID *uuid.UUID, callerID uuid.UUID) (*PlacesResult, error)

	// CreatePlace stores a new place owned by input.Owner.
	CreatePlace(ctx context.Context, callerID uuid.UUID, input *CreatePlaceInput) (*entity.Place, error)

	// UpdatePlace applies a partial update. groupID, when set, scopes the lookup to that group.
	UpdatePlace(ctx context.Context, placeID, callerID uuid.UUID, groupID *uuid.UUID, input *UpdatePlaceInput) (*entity.Place, error)

	// DeletePlace archives a place. Deleting an archived place succeeds.
	DeletePlace(ctx context.Context, placeID, callerID uuid.UUID, groupID *uuid.UUID) error
}
