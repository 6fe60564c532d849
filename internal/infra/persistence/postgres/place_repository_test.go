package postgres

import (
	"context"
	"testing"
	"time"

	"places/internal/domain/entity"
	domainerrors "places/internal/domain/errors"
	"places/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placeColumns = []string{
	"id", "owner_id", "owner_type", "nickname",
	"address_label", "address_street", "address_city", "address_state", "address_postal_code", "address_country",
	"notes", "is_primary", "created_by", "archived_at", "created_at", "updated_at",
}

func addPlaceRow(rows *sqlmock.Rows, place *entity.Place) *sqlmock.Rows {
	var archivedAt any
	if place.ArchivedAt != nil {
		archivedAt = *place.ArchivedAt
	}

	return rows.AddRow(
		place.ID.String(), place.OwnerID.String(), place.OwnerType.String(), place.Nickname,
		place.Address.Label, place.Address.Street, place.Address.City, place.Address.State,
		place.Address.PostalCode, place.Address.Country,
		place.Notes, place.IsPrimary, place.CreatedBy.String(), archivedAt, place.CreatedAt, place.UpdatedAt,
	)
}

func newTestPlace() *entity.Place {
	ownerID := uuid.New()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Place{
		ID:        uuid.New(),
		Nickname:  "Home",
		Address:   entity.Address{Label: "Front door", Street: "1 Main St", City: "Springfield", Country: "US"},
		Notes:     "Ring twice",
		IsPrimary: true,
		OwnerID:   ownerID,
		OwnerType: entity.OwnerTypeUser,
		CreatedBy: ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPlaceRepository_CreatePlace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`INSERT INTO "places"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	place := newTestPlace()
	require.NoError(t, repo.CreatePlace(context.Background(), place))
}

func TestPlaceRepository_CreatePlace_UniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`INSERT INTO "places"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, Message: "duplicate key value"})

	err := repo.CreatePlace(context.Background(), newTestPlace())
	assert.ErrorIs(t, err, repository.ErrPrimaryPlaceConflict)
}

func TestPlaceRepository_CreatePlace_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`INSERT INTO "places"`).
		WillReturnError(errors.New("connection reset by peer"))

	err := repo.CreatePlace(context.Background(), newTestPlace())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestPlaceRepository_FindPlaceByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	expected := newTestPlace()
	mock.ExpectQuery(`SELECT \* FROM "places" WHERE id = \$1`).
		WillReturnRows(addPlaceRow(sqlmock.NewRows(placeColumns), expected))

	place, err := repo.FindPlaceByID(context.Background(), expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected.ID, place.ID)
	assert.Equal(t, expected.Nickname, place.Nickname)
	assert.Equal(t, expected.Address, place.Address)
	assert.Equal(t, entity.OwnerTypeUser, place.OwnerType)
	assert.True(t, place.IsPrimary)
	assert.False(t, place.IsArchived())
}

func TestPlaceRepository_FindPlaceByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "places" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(placeColumns))

	place, err := repo.FindPlaceByID(context.Background(), uuid.New())
	assert.Nil(t, place)
	assert.ErrorIs(t, err, repository.ErrPlaceNotFound)
}

func TestPlaceRepository_FindPlacesByOwner_PreservesOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	primary := newTestPlace()
	second := newTestPlace()
	second.OwnerID = primary.OwnerID
	second.IsPrimary = false
	second.Nickname = "Work"

	rows := sqlmock.NewRows(placeColumns)
	addPlaceRow(rows, primary)
	addPlaceRow(rows, second)

	mock.ExpectQuery(`SELECT \* FROM "places" WHERE .*owner_id = \$1 AND owner_type = \$2.*archived_at IS NULL.*ORDER BY is_primary DESC.*created_at ASC`).
		WillReturnRows(rows)

	places, err := repo.FindPlacesByOwner(context.Background(), primary.Owner())
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Home", places[0].Nickname)
	assert.Equal(t, "Work", places[1].Nickname)
}

func TestPlaceRepository_FindPlacesByOwner_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "places"`).
		WillReturnRows(sqlmock.NewRows(placeColumns))

	places, err := repo.FindPlacesByOwner(context.Background(), entity.OwnerRef{ID: uuid.New(), Type: entity.OwnerTypeGroup})
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestPlaceRepository_CountPlacesByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "places" WHERE .*archived_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountPlacesByOwner(context.Background(), entity.OwnerRef{ID: uuid.New(), Type: entity.OwnerTypeUser})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestPlaceRepository_UpdatePlace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`UPDATE "places" SET .* WHERE id = \$\d+ AND archived_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePlace(context.Background(), newTestPlace()))
}

func TestPlaceRepository_UpdatePlace_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`UPDATE "places" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePlace(context.Background(), newTestPlace())
	assert.ErrorIs(t, err, repository.ErrPlaceNotFound)
}

func TestPlaceRepository_UpdatePlace_SecondPrimaryConflicts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`UPDATE "places" SET`).
		WillReturnError(&pgconn.PgError{
			Code:           pgUniqueViolation,
			ConstraintName: "idx_places_one_primary_per_owner",
			Message:        "duplicate key value violates unique constraint",
		})

	err := repo.UpdatePlace(context.Background(), newTestPlace())
	assert.ErrorIs(t, err, repository.ErrPrimaryPlaceConflict)
}

func TestPlaceRepository_CreatePlace_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name     string
		sqlState string
		wantCode string
	}{
		{name: "not null", sqlState: pgNotNullViolation, wantCode: "VALIDATION_ERROR"},
		{name: "check", sqlState: pgCheckViolation, wantCode: "VALIDATION_ERROR"},
		{name: "foreign key", sqlState: "23503", wantCode: "DATABASE_EXECUTE_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPlaceRepository(db)

			mock.ExpectExec(`INSERT INTO "places"`).
				WillReturnError(&pgconn.PgError{Code: tt.sqlState})

			err := repo.CreatePlace(context.Background(), newTestPlace())

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestPlaceRepository_ArchivePlace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`UPDATE "places" SET .*"archived_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ArchivePlace(context.Background(), uuid.New()))
}

func TestPlaceRepository_ArchivePlace_AlreadyArchived(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`UPDATE "places" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "places" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	require.NoError(t, repo.ArchivePlace(context.Background(), uuid.New()))
}

func TestPlaceRepository_ArchivePlace_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`UPDATE "places" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "places"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.ArchivePlace(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPlaceNotFound)
}

func TestPlaceRepository_ClearPrimaryPlace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPlaceRepository(db)

	mock.ExpectExec(`UPDATE "places" SET .*"is_primary"=\$1.* WHERE .*owner_id = .*is_primary = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ClearPrimaryPlace(context.Background(), entity.OwnerRef{ID: uuid.New(), Type: entity.OwnerTypeUser}))
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "places" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "places"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	place := newTestPlace()
	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		repo := factory.NewPlaceRepository()
		if err := repo.ClearPrimaryPlace(context.Background(), place.Owner()); err != nil {
			return err
		}

		return repo.CreatePlace(context.Background(), place)
	})
	require.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	businessErr := errors.New("business rule failed")
	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return businessErr
	})
	assert.ErrorIs(t, err, businessErr)
}
