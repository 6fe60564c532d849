package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupMemberModel is the GORM-specific struct for the 'group_members' table.
type GroupMemberModel struct {
	GroupID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Role     string    `gorm:"type:varchar(16);not null;default:'MEMBER'"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (GroupMemberModel) TableName() string {
	return "group_members"
}
