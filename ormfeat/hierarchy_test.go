package ormfeat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedTree builds Electronics > {Computers > Laptops, Audio} on a fresh
// database, so the generated IDs are 1..4 in creation order.
func seedTree(t *testing.T, db *gorm.DB) (electronics, computers, laptops, audio *Category) {
	t.Helper()
	var err error
	electronics, err = CreateCategory(db, "Electronics", nil)
	require.NoError(t, err)
	computers, err = CreateCategory(db, "Computers", electronics)
	require.NoError(t, err)
	laptops, err = CreateCategory(db, "Laptops", computers)
	require.NoError(t, err)
	audio, err = CreateCategory(db, "Audio", electronics)
	require.NoError(t, err)
	return electronics, computers, laptops, audio
}

func TestCreateCategory_AssignsPaths(t *testing.T) {
	db := openTestDB(t)
	electronics, computers, laptops, audio := seedTree(t, db)

	assert.Equal(t, "/1/", electronics.Path)
	assert.Equal(t, "/1/2/", computers.Path)
	assert.Equal(t, "/1/2/3/", laptops.Path)
	assert.Equal(t, "/1/4/", audio.Path)

	// The persisted rows carry the same paths as the returned values.
	var stored Category
	require.NoError(t, db.First(&stored, laptops.ID).Error)
	assert.Equal(t, laptops.Path, stored.Path)
	require.NotNil(t, stored.ParentID)
	assert.Equal(t, computers.ID, *stored.ParentID)
}

func TestSubtree_PrefixQuery(t *testing.T) {
	db := openTestDB(t)
	electronics, computers, _, _ := seedTree(t, db)

	names := func(cats []Category) []string {
		out := make([]string, len(cats))
		for i, cat := range cats {
			out[i] = cat.Name
		}
		return out
	}

	whole, err := Subtree(db, electronics)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(
		[]string{"Electronics", "Computers", "Laptops", "Audio"}, names(whole)))

	mid, err := Subtree(db, computers)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]string{"Computers", "Laptops"}, names(mid)))
}

func TestDepthAndAncestry(t *testing.T) {
	db := openTestDB(t)
	electronics, computers, laptops, audio := seedTree(t, db)

	assert.Equal(t, 0, Depth(electronics))
	assert.Equal(t, 1, Depth(computers))
	assert.Equal(t, 2, Depth(laptops))
	assert.Equal(t, 1, Depth(audio))

	assert.Nil(t, AncestorIDs(electronics))
	assert.Empty(t, cmp.Diff([]uint{electronics.ID, computers.ID}, AncestorIDs(laptops)))

	chain, err := Ancestors(db, laptops)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "Electronics", chain[0].Name)
	assert.Equal(t, "Computers", chain[1].Name)

	none, err := Ancestors(db, electronics)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAncestorIDs_SkipsMalformedSegments(t *testing.T) {
	cat := &Category{Name: "odd", Path: "/1/x/9/"}
	assert.Empty(t, cmp.Diff([]uint{1}, AncestorIDs(cat)))
}
