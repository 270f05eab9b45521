package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrastudio/vastra-backend/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	in := models.BodyAnalysis{Gender: models.GenderFemale, SkinTone: "Dusky", BodyShape: models.ShapePear, DetectedFeatures: []string{"slender"}}
	require.NoError(t, m.Save(ctx, "u1", KeyAnalysis, in))

	var out models.BodyAnalysis
	ok, err := m.Load(ctx, "u1", KeyAnalysis, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestLoadAbsentKey(t *testing.T) {
	m := NewMemory()
	var out models.BodyAnalysis
	ok, err := m.Load(context.Background(), "u1", KeyAnalysis, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCorruptSnapshotFallsBack(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Save(ctx, "u1", KeyCart, []models.CartItem{{CartID: "c1"}}))

	m.Corrupt("u1", KeyCart)

	var out []models.CartItem
	ok, err := m.Load(ctx, "u1", KeyCart, &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestLoadRejectsOtherSchemaVersions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	raw, err := json.Marshal(envelope{SchemaVersion: schemaVersion + 1, Payload: json.RawMessage(`{"gender":"Female"}`)})
	require.NoError(t, err)
	m.mu.Lock()
	m.snapshots[snapKey("u1", KeyAnalysis)] = raw
	m.mu.Unlock()

	var out models.BodyAnalysis
	ok, err := m.Load(ctx, "u1", KeyAnalysis, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWipeRemovesExactlyTrackedKeys(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, key := range TrackedKeys {
		require.NoError(t, m.Save(ctx, "u1", key, map[string]string{"k": key}))
	}
	// Another user's state must survive.
	require.NoError(t, m.Save(ctx, "u2", KeyCart, []models.CartItem{{CartID: "x"}}))

	require.NoError(t, m.Wipe(ctx, "u1"))

	for _, key := range TrackedKeys {
		var out map[string]string
		ok, err := m.Load(ctx, "u1", key, &out)
		require.NoError(t, err)
		assert.Falsef(t, ok, "key %s should be wiped", key)
	}
	var cart []models.CartItem
	ok, err := m.Load(ctx, "u2", KeyCart, &cart)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistrySurvivesWipe(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	u := models.User{ID: "u1", Email: "asha@example.com"}
	require.NoError(t, m.CreateUser(ctx, u))
	require.NoError(t, m.Save(ctx, "u1", KeyCurrentUser, u))
	require.NoError(t, m.Wipe(ctx, "u1"))

	found, err := m.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "asha@example.com", found.Email)
}

func TestCreateUserDuplicateEmailCaseInsensitive(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateUser(ctx, models.User{ID: "u1", Email: "asha@example.com"}))
	err := m.CreateUser(ctx, models.User{ID: "u2", Email: "ASHA@Example.com"})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	found, err := m.FindUserByEmail(ctx, "ASHA@example.COM")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)
}

func TestUpdateUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	u := models.User{ID: "u1", Email: "asha@example.com"}
	require.NoError(t, m.CreateUser(ctx, u))
	u.PhotoUploaded = true
	u.PhotoURL = "portraits/u1.png"
	require.NoError(t, m.UpdateUser(ctx, u))

	found, err := m.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, found.PhotoUploaded)
	assert.Equal(t, "portraits/u1.png", found.PhotoURL)
}
