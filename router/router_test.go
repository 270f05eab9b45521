package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vastrastudio/vastra-backend/models"
)

func TestResolveNoSession(t *testing.T) {
	f := Facts{}

	assert.Equal(t, models.ViewLanding, Initial(f))
	assert.Equal(t, models.ViewLogin, Resolve(f, models.ViewLogin))
	assert.Equal(t, models.ViewRegister, Resolve(f, models.ViewRegister))

	// Everything private collapses onto the landing page.
	for _, v := range []models.View{models.ViewHome, models.ViewCollections, models.ViewWatchlist, models.ViewProfile, models.ViewDesigner, models.ViewCart, models.ViewUpload} {
		assert.Equalf(t, models.ViewLanding, Resolve(f, v), "requested %s", v)
	}
}

func TestResolveUploadGate(t *testing.T) {
	f := Facts{SignedIn: true, PhotoUploaded: false}

	assert.Equal(t, models.ViewUpload, Initial(f))
	for _, v := range []models.View{
		models.ViewLanding, models.ViewLogin, models.ViewRegister,
		models.ViewHome, models.ViewCollections, models.ViewWatchlist,
		models.ViewProfile, models.ViewDesigner, models.ViewCart,
	} {
		assert.Equalf(t, models.ViewUpload, Resolve(f, v), "requested %s", v)
	}
}

func TestResolveFullSession(t *testing.T) {
	f := Facts{SignedIn: true, PhotoUploaded: true}

	assert.Equal(t, models.ViewHome, Initial(f))

	tests := []struct {
		requested models.View
		want      models.View
	}{
		{models.ViewHome, models.ViewHome},
		{models.ViewCollections, models.ViewCollections},
		{models.ViewWatchlist, models.ViewWatchlist},
		{models.ViewProfile, models.ViewProfile},
		{models.ViewDesigner, models.ViewDesigner},
		{models.ViewCart, models.ViewCart},
		// Upload stays reachable so the portrait can be redone.
		{models.ViewUpload, models.ViewUpload},
		// Public screens bounce back to the studio home.
		{models.ViewLanding, models.ViewHome},
		{models.ViewLogin, models.ViewHome},
		{models.ViewRegister, models.ViewHome},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Resolve(f, tt.requested), "requested %s", tt.requested)
	}
}

func TestParseViewClosetAlias(t *testing.T) {
	v, ok := models.ParseView("closet")
	assert.True(t, ok)
	assert.Equal(t, models.ViewWatchlist, v)

	v, ok = models.ParseView("somewhere-else")
	assert.False(t, ok)
	assert.Equal(t, models.ViewHome, v)
}
