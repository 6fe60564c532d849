package impl

import (
	"context"
	"log/slog"
	"time"

	"places/config"
	deliverycontext "places/internal/delivery/context"
	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/repository"
	"places/internal/domain/service"
	"places/internal/errors"
	"places/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// PlaceServiceParams holds dependencies for the place service, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	PlaceRepo       repository.PlaceRepository
	GroupMemberRepo repository.GroupMemberRepository
	TxManager       repository.TransactionManager
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

type placeService struct {
	placeRepo       repository.PlaceRepository
	groupMemberRepo repository.GroupMemberRepository
	txManager       repository.TransactionManager
	publisher       service.EventPublisher
	limits          *config.PlacesConfig
	logger          *slog.Logger
	now             func() time.Time
}

// NewPlaceService creates a new place service instance
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	limits := config.DefaultPlacesConfig()
	if params.Config != nil && params.Config.Places != nil {
		limits = params.Config.Places
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &placeService{
		placeRepo:       params.PlaceRepo,
		groupMemberRepo: params.GroupMemberRepo,
		txManager:       params.TxManager,
		publisher:       params.Publisher,
		limits:          limits,
		logger:          logger,
		now:             time.Now,
	}
}

// ListPlaces retrieves the user and group places visible to the caller
func (s *placeService) ListPlaces(ctx context.Context, targetUserID, targetGroupID *uuid.UUID, callerID uuid.UUID) (*usecase.PlacesResult, error) {
	result := &usecase.PlacesResult{
		UserPlaces:  []*entity.Place{},
		GroupPlaces: []*entity.Place{},
	}

	userID := targetUserID
	if userID == nil && targetGroupID == nil {
		userID = &callerID
	}

	if userID != nil {
		if *userID != callerID {
			return nil, domainerrors.ErrUnauthorized.WithDetails("cannot list places of another user")
		}

		places, err := s.placeRepo.FindPlacesByOwner(ctx, entity.OwnerRef{ID: *userID, Type: entity.OwnerTypeUser})
		if err != nil {
			return nil, errors.Wrap(err, "failed to find user places")
		}
		result.UserPlaces = append(result.UserPlaces, places...)
	}

	if targetGroupID != nil {
		if err := s.requireGroupMember(ctx, *targetGroupID, callerID); err != nil {
			return nil, err
		}

		places, err := s.placeRepo.FindPlacesByOwner(ctx, entity.OwnerRef{ID: *targetGroupID, Type: entity.OwnerTypeGroup})
		if err != nil {
			return nil, errors.Wrap(err, "failed to find group places")
		}
		result.GroupPlaces = append(result.GroupPlaces, places...)
	}

	return result, nil
}

// CreatePlace creates a new place for a user or a group
func (s *placeService) CreatePlace(ctx context.Context, callerID uuid.UUID, input *usecase.CreatePlaceInput) (*entity.Place, error) {
	if !input.Owner.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("owner.type must be USER or GROUP")
	}

	if input.Owner.IsGroup() && input.IsPrimary {
		return nil, domainerrors.ErrInvalidPlaceOwner
	}

	if err := s.authorizeOwner(ctx, input.Owner, callerID); err != nil {
		return nil, err
	}

	// Check place limit
	count, err := s.placeRepo.CountPlacesByOwner(ctx, input.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count places by owner")
	}
	if count >= int64(s.maxPlaces(input.Owner.Type)) {
		return nil, domainerrors.ErrPlaceLimitReached
	}

	now := s.now()
	place := &entity.Place{
		ID:        uuid.New(),
		Nickname:  input.Nickname,
		Address:   input.Address,
		Notes:     input.Notes,
		IsPrimary: input.IsPrimary,
		OwnerID:   input.Owner.ID,
		OwnerType: input.Owner.Type,
		CreatedBy: callerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if place.IsPrimary {
		err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			txRepo := factory.NewPlaceRepository()
			if err := txRepo.ClearPrimaryPlace(ctx, place.Owner()); err != nil {
				return errors.Wrap(err, "failed to clear primary place")
			}

			return txRepo.CreatePlace(ctx, place)
		})
	} else {
		err = s.placeRepo.CreatePlace(ctx, place)
	}
	if err != nil {
		return nil, mapRepositoryError(err, "failed to create place")
	}

	s.publish(ctx, service.PlaceEventCreated, place, callerID)

	return place, nil
}

// UpdatePlace applies a partial update to an existing place
func (s *placeService) UpdatePlace(ctx context.Context, placeID, callerID uuid.UUID, groupID *uuid.UUID, input *usecase.UpdatePlaceInput) (*entity.Place, error) {
	place, err := s.findAccessiblePlace(ctx, placeID, callerID, groupID)
	if err != nil {
		return nil, err
	}
	if place.IsArchived() {
		return nil, domainerrors.ErrPlaceNotFound
	}

	if input.IsPrimary != nil && *input.IsPrimary && place.OwnerType == entity.OwnerTypeGroup {
		return nil, domainerrors.ErrInvalidPlaceOwner
	}

	becomesPrimary := input.IsPrimary != nil && *input.IsPrimary && !place.IsPrimary

	// Apply updates
	s.applyPlaceUpdates(place, input)

	if becomesPrimary {
		err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			txRepo := factory.NewPlaceRepository()
			if err := txRepo.ClearPrimaryPlace(ctx, place.Owner()); err != nil {
				return errors.Wrap(err, "failed to clear primary place")
			}

			return txRepo.UpdatePlace(ctx, place)
		})
	} else {
		err = s.placeRepo.UpdatePlace(ctx, place)
	}
	if err != nil {
		return nil, mapRepositoryError(err, "failed to update place")
	}

	s.publish(ctx, service.PlaceEventUpdated, place, callerID)

	return place, nil
}

// applyPlaceUpdates applies the update input to a place
func (s *placeService) applyPlaceUpdates(place *entity.Place, input *usecase.UpdatePlaceInput) {
	if input.Nickname != nil {
		place.Nickname = *input.Nickname
	}
	if input.Address != nil {
		applyAddressUpdates(&place.Address, input.Address)
	}
	if input.Notes != nil {
		place.Notes = *input.Notes
	}
	if input.IsPrimary != nil {
		place.IsPrimary = *input.IsPrimary
	}
	place.UpdatedAt = s.now()
}

func applyAddressUpdates(address *entity.Address, input *usecase.AddressInput) {
	if input.Label != nil {
		address.Label = *input.Label
	}
	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.PostalCode != nil {
		address.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		address.Country = *input.Country
	}
}

// DeletePlace archives a place; repeated deletes succeed without further writes
func (s *placeService) DeletePlace(ctx context.Context, placeID, callerID uuid.UUID, groupID *uuid.UUID) error {
	place, err := s.findAccessiblePlace(ctx, placeID, callerID, groupID)
	if err != nil {
		return err
	}

	if place.IsArchived() {
		return nil
	}

	if err := s.placeRepo.ArchivePlace(ctx, placeID); err != nil {
		return mapRepositoryError(err, "failed to archive place")
	}

	s.publish(ctx, service.PlaceEventArchived, place, callerID)

	return nil
}

// findAccessiblePlace loads a place and verifies the caller may modify it
func (s *placeService) findAccessiblePlace(ctx context.Context, placeID, callerID uuid.UUID, groupID *uuid.UUID) (*entity.Place, error) {
	place, err := s.placeRepo.FindPlaceByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, domainerrors.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by ID")
	}

	// A group scope only matches places of that group
	if groupID != nil && (place.OwnerType != entity.OwnerTypeGroup || place.OwnerID != *groupID) {
		return nil, domainerrors.ErrPlaceNotFound
	}

	if err := s.authorizeOwner(ctx, place.Owner(), callerID); err != nil {
		return nil, err
	}

	return place, nil
}

// authorizeOwner verifies that the caller acts for the owner
func (s *placeService) authorizeOwner(ctx context.Context, owner entity.OwnerRef, callerID uuid.UUID) error {
	switch owner.Type {
	case entity.OwnerTypeUser:
		if owner.ID != callerID {
			return domainerrors.ErrUnauthorized
		}

		return nil
	case entity.OwnerTypeGroup:
		return s.requireGroupMember(ctx, owner.ID, callerID)
	default:
		return domainerrors.ErrValidationFailed.WithDetails("owner.type must be USER or GROUP")
	}
}

func (s *placeService) requireGroupMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if _, err := s.groupMemberRepo.FindMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, repository.ErrGroupMemberNotFound) {
			return domainerrors.ErrUnauthorized.WithDetails("caller is not a member of the group")
		}

		return errors.Wrap(err, "failed to find group member")
	}

	return nil
}

func (s *placeService) maxPlaces(ownerType entity.OwnerType) int {
	if ownerType == entity.OwnerTypeGroup {
		return s.limits.GroupMaxPlaces
	}

	return s.limits.UserMaxPlaces
}

// publish emits a place event. Failures are logged and never fail the request.
func (s *placeService) publish(ctx context.Context, eventType string, place *entity.Place, actorID uuid.UUID) {
	if s.publisher == nil {
		return
	}

	event := &service.PlaceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		PlaceID:    place.ID.String(),
		OwnerID:    place.OwnerID.String(),
		OwnerType:  place.OwnerType.String(),
		ActorID:    actorID.String(),
		OccurredAt: s.now().UTC(),
	}

	if err := s.publisher.PublishPlaceEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to publish place event",
			slog.String("type", eventType),
			slog.String("place_id", event.PlaceID),
			slog.Any("error", err),
		)
	}
}

// mapRepositoryError converts persistence sentinels into application errors
func mapRepositoryError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrPlaceNotFound):
		return domainerrors.ErrPlaceNotFound
	case errors.Is(err, repository.ErrPrimaryPlaceConflict):
		return domainerrors.ErrPrimaryPlaceConflict
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, message)
}
