package entity

import (
	"time"

	"github.com/google/uuid"
)

// GroupRole is the role of a user inside a group.
type GroupRole string

const (
	GroupRoleAdmin  GroupRole = "ADMIN"
	GroupRoleMember GroupRole = "MEMBER"
)

// GroupMember links a user to a group whose places they may see and edit.
type GroupMember struct {
	GroupID  uuid.UUID
	UserID   uuid.UUID
	Role     GroupRole
	JoinedAt time.Time
}
