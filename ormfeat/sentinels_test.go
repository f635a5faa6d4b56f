package ormfeat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderLevel_Sentinel(t *testing.T) {
	assert.False(t, ReorderLevelUnset.Configured())
	assert.Equal(t, "not configured", ReorderLevelUnset.String())

	assert.True(t, ReorderLevel(0).Configured())
	assert.Equal(t, "0", ReorderLevel(0).String())
	assert.Equal(t, "25", ReorderLevel(25).String())
}

func TestReorderLevel_ColumnDefault(t *testing.T) {
	db := openTestDB(t)

	prod, err := NewProduct("SKU-30", "Steel bolt", 2.50)
	require.NoError(t, err)
	require.NoError(t, db.Create(prod).Error)

	var loaded Product
	require.NoError(t, db.First(&loaded, prod.ID).Error)
	assert.Equal(t, ReorderLevelUnset, loaded.ReorderLevel)
}

func TestReorderLevel_ExplicitZeroSurvives(t *testing.T) {
	db := openTestDB(t)

	prod, err := NewProduct("SKU-31", "Steel nut", 1.10)
	require.NoError(t, err)
	require.NoError(t, db.Create(prod).Error)

	// A plain Save would let the zero value fall back to the column
	// default, so the column is updated by name.
	require.NoError(t, db.Model(prod).
		Update("reorder_level", ReorderLevel(0)).Error)

	var loaded Product
	require.NoError(t, db.First(&loaded, prod.ID).Error)
	assert.Equal(t, ReorderLevel(0), loaded.ReorderLevel)
	assert.True(t, loaded.ReorderLevel.Configured())
}

func TestReorderLevel_QueryBySentinel(t *testing.T) {
	db := openTestDB(t)

	unset, err := NewProduct("SKU-32", "Washer", 0.10)
	require.NoError(t, err)
	require.NoError(t, db.Create(unset).Error)

	set, err := NewProduct("SKU-33", "Spring", 0.90)
	require.NoError(t, err)
	set.ReorderLevel = 40
	require.NoError(t, db.Create(set).Error)

	var count int64
	require.NoError(t, db.Model(&Product{}).
		Where("reorder_level = ?", ReorderLevelUnset).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
