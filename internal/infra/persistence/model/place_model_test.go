package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestPlaceModel_OnePrimaryPerOwnerIndex(t *testing.T) {
	placeSchema, err := schema.Parse(&PlaceModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx := placeSchema.LookIndex("idx_places_one_primary_per_owner")
	require.NotNil(t, idx)

	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "is_primary AND archived_at IS NULL", idx.Where)
	require.Len(t, idx.Fields, 2)
	assert.Equal(t, "owner_id", idx.Fields[0].DBName)
	assert.Equal(t, "owner_type", idx.Fields[1].DBName)
}

func TestPlaceModel_OwnerLookupIndexIsNotUnique(t *testing.T) {
	placeSchema, err := schema.Parse(&PlaceModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx := placeSchema.LookIndex("idx_places_on_owner")
	require.NotNil(t, idx)

	assert.Empty(t, idx.Class)
	assert.Empty(t, idx.Where)
	require.Len(t, idx.Fields, 2)
}
