package postgres

import (
	"context"

	"places/internal/domain/entity"
	"places/internal/domain/repository"
	"places/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// groupMemberRepository implements the domain.GroupMemberRepository interface.
type groupMemberRepository struct {
	db *gorm.DB
}

// NewGroupMemberRepository is the constructor for groupMemberRepository.
func NewGroupMemberRepository(db *gorm.DB) repository.GroupMemberRepository {
	return &groupMemberRepository{db: db}
}

// FindMember retrieves the membership of a user in a group.
func (repo *groupMemberRepository) FindMember(ctx context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error) {
	var memberM model.GroupMemberModel

	err := repo.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find group member")
	}

	return &entity.GroupMember{
		GroupID:  memberM.GroupID,
		UserID:   memberM.UserID,
		Role:     entity.GroupRole(memberM.Role),
		JoinedAt: memberM.JoinedAt,
	}, nil
}
