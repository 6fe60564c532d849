package repository

import (
	"context"

	"places/internal/domain/entity"
	"places/internal/errors"

	"github.com/google/uuid"
)

// ErrGroupMemberNotFound is returned when the user does not belong to the group.
var ErrGroupMemberNotFound = errors.New("group member not found")

// GroupMemberRepository gives read access to group memberships.
type GroupMemberRepository interface {
	// FindMember returns the membership of userID in groupID, or ErrGroupMemberNotFound.
	FindMember(ctx context.Context, groupID, userID uuid.UUID) (*entity.GroupMember, error)
}
