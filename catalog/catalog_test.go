package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrastudio/vastra-backend/models"
)

func TestItemsAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range Items {
		assert.Falsef(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		assert.NotEmpty(t, item.Name, item.ID)
		assert.NotEmpty(t, item.Category, item.ID)
		assert.Greater(t, item.Price, 0, item.ID)
		assert.NotEmpty(t, item.SuitableShapes, item.ID)
	}
}

func TestItemByID(t *testing.T) {
	item, ok := ItemByID("fs-1")
	require.True(t, ok)
	assert.Equal(t, "Royal Banarasi Silk", item.Name)

	_, ok = ItemByID("nope")
	assert.False(t, ok)
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("emerald")
	require.True(t, ok)
	assert.Equal(t, "#046307", c.Hex)

	_, ok = ColorByName("chartreuse")
	assert.False(t, ok)
}

func TestColorsForFallsBackToPalette(t *testing.T) {
	withOwn, ok := ItemByID("fs-1")
	require.True(t, ok)
	require.NotEmpty(t, withOwn.AvailableColors)
	assert.Equal(t, withOwn.AvailableColors, ColorsFor(withOwn))

	withoutOwn, ok := ItemByID("ms-1")
	require.True(t, ok)
	require.Empty(t, withoutOwn.AvailableColors)
	assert.Equal(t, EthnicColors, ColorsFor(withoutOwn))
}

func TestFilterPredicatesCombineWithAnd(t *testing.T) {
	female := Filter(Items, models.GenderFemale, "", "")
	for _, item := range female {
		assert.NotEqual(t, models.GenderMale, item.Gender)
	}

	searched := Filter(Items, models.GenderFemale, "silk", "")
	assert.NotEmpty(t, searched)
	for _, item := range searched {
		assert.Contains(t, strings.ToLower(item.Name), "silk")
	}

	both := Filter(Items, models.GenderFemale, "silk", "Silk saree")
	assert.NotEmpty(t, both)
	for _, item := range both {
		assert.Equal(t, "Silk saree", item.Category)
	}

	// Unspecified gender browses everything.
	assert.Len(t, Filter(Items, models.GenderUnspecified, "", ""), len(Items))
}
