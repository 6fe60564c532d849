package postgres

import (
	"context"
	"time"

	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/repository"
	"places/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const activePlaceCondition = "archived_at IS NULL"

// placeRepository implements the domain.PlaceRepository interface.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

// CreatePlace persists a new place.
func (repo *placeRepository) CreatePlace(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		return translatePlaceWriteError(err, "failed to create place")
	}

	place.CreatedAt = placeM.CreatedAt
	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// FindPlaceByID retrieves a place by its ID from the primary database.
func (repo *placeRepository) FindPlaceByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	var placeM model.PlaceModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&placeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by ID")
	}

	return toPlaceDomain(&placeM), nil
}

// FindPlacesByOwner retrieves the active places of an owner, primary first.
func (repo *placeRepository) FindPlacesByOwner(ctx context.Context, owner entity.OwnerRef) ([]*entity.Place, error) {
	var placeModels []*model.PlaceModel

	err := repo.ownerScope(ctx, owner).
		Order("is_primary DESC").
		Order("created_at ASC").
		Find(&placeModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find places by owner")
	}

	places := make([]*entity.Place, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

// CountPlacesByOwner returns how many active places an owner keeps.
func (repo *placeRepository) CountPlacesByOwner(ctx context.Context, owner entity.OwnerRef) (int64, error) {
	var count int64

	if err := repo.ownerScope(ctx, owner).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count places by owner")
	}

	return count, nil
}

// UpdatePlace writes the mutable fields of an active place.
func (repo *placeRepository) UpdatePlace(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)
	if placeM.UpdatedAt.IsZero() {
		placeM.UpdatedAt = time.Now().UTC()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("id = ?", place.ID).
		Where(activePlaceCondition).
		Updates(map[string]any{
			"nickname":            placeM.Nickname,
			"address_label":       placeM.AddressLabel,
			"address_street":      placeM.AddressStreet,
			"address_city":        placeM.AddressCity,
			"address_state":       placeM.AddressState,
			"address_postal_code": placeM.AddressPostalCode,
			"address_country":     placeM.AddressCountry,
			"notes":               placeM.Notes,
			"is_primary":          placeM.IsPrimary,
			"updated_at":          placeM.UpdatedAt,
		})
	if result.Error != nil {
		return translatePlaceWriteError(result.Error, "failed to update place")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaceNotFound
	}

	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// ArchivePlace soft-deletes a place.
func (repo *placeRepository) ArchivePlace(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("id = ?", id).
		Where(activePlaceCondition).
		Updates(map[string]any{
			"archived_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to archive place")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	// Nothing changed: either already archived or missing.
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PlaceModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check archived place")
	}
	if count == 0 {
		return repository.ErrPlaceNotFound
	}

	return nil
}

// ClearPrimaryPlace unsets the primary flag on the owner's places.
func (repo *placeRepository) ClearPrimaryPlace(ctx context.Context, owner entity.OwnerRef) error {
	err := repo.ownerScope(ctx, owner).
		Where("is_primary = ?", true).
		Updates(map[string]any{
			"is_primary": false,
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear primary place")
	}

	return nil
}

func (repo *placeRepository) ownerScope(ctx context.Context, owner entity.OwnerRef) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("owner_id = ? AND owner_type = ?", owner.ID, owner.Type.String()).
		Where(activePlaceCondition)
}

func translatePlaceWriteError(err error, message string) error {
	// Convert PostgreSQL errors to domain errors
	if isUniqueConstraintViolation(err) {
		return repository.ErrPrimaryPlaceConflict
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing or invalid place information")
	}

	return domainerrors.NewDatabaseExecuteError(err, message)
}

// --- Mapper Functions ---

// toPlaceDomain converts a GORM PlaceModel to a domain Place entity.
func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:       data.ID,
		Nickname: data.Nickname,
		Address: entity.Address{
			Label:      data.AddressLabel,
			Street:     data.AddressStreet,
			City:       data.AddressCity,
			State:      data.AddressState,
			PostalCode: data.AddressPostalCode,
			Country:    data.AddressCountry,
		},
		Notes:      data.Notes,
		IsPrimary:  data.IsPrimary,
		OwnerID:    data.OwnerID,
		OwnerType:  entity.OwnerType(data.OwnerType),
		CreatedBy:  data.CreatedBy,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		ArchivedAt: data.ArchivedAt,
	}
}

// fromPlaceDomain converts a domain Place entity to a GORM PlaceModel.
func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	return &model.PlaceModel{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		OwnerType:         data.OwnerType.String(),
		Nickname:          data.Nickname,
		AddressLabel:      data.Address.Label,
		AddressStreet:     data.Address.Street,
		AddressCity:       data.Address.City,
		AddressState:      data.Address.State,
		AddressPostalCode: data.Address.PostalCode,
		AddressCountry:    data.Address.Country,
		Notes:             data.Notes,
		IsPrimary:         data.IsPrimary,
		CreatedBy:         data.CreatedBy,
		ArchivedAt:        data.ArchivedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
