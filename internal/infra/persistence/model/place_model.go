package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaceModel is the GORM-specific struct for the 'places' table.
// idx_places_one_primary_per_owner allows one active primary place per owner.
type PlaceModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_places_on_owner,priority:1;uniqueIndex:idx_places_one_primary_per_owner,priority:1,where:is_primary AND archived_at IS NULL"`
	OwnerType         string     `gorm:"type:varchar(16);not null;index:idx_places_on_owner,priority:2;uniqueIndex:idx_places_one_primary_per_owner,priority:2,where:is_primary AND archived_at IS NULL"`
	Nickname          string     `gorm:"type:varchar(100);not null"`
	AddressLabel      string     `gorm:"type:varchar(100)"`
	AddressStreet     string     `gorm:"type:text"`
	AddressCity       string     `gorm:"type:varchar(100)"`
	AddressState      string     `gorm:"type:varchar(100)"`
	AddressPostalCode string     `gorm:"type:varchar(32)"`
	AddressCountry    string     `gorm:"type:varchar(100)"`
	Notes             string     `gorm:"type:text"`
	IsPrimary         bool       `gorm:"not null;default:false"`
	CreatedBy         uuid.UUID  `gorm:"type:uuid;not null"`
	ArchivedAt        *time.Time `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
