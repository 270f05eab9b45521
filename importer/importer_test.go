package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrastudio/vastra-backend/models"
)

type fakeRenderer struct {
	prompts []string
	colors  []string
	err     error
}

func (r *fakeRenderer) GenerateGarmentImage(ctx context.Context, prompt, colorPrompt string) ([]byte, error) {
	r.prompts = append(r.prompts, prompt)
	r.colors = append(r.colors, colorPrompt)
	if r.err != nil {
		return nil, r.err
	}
	return []byte("studio-shot"), nil
}

func newTestImporter(renderer *fakeRenderer) *Importer {
	return &Importer{
		renderer: renderer,
		upload: func(ctx context.Context, image []byte) (string, error) {
			return "catalog_imports/" + string(image) + ".png", nil
		},
	}
}

func TestFinalizeRendersImagelessListing(t *testing.T) {
	renderer := &fakeRenderer{}
	imp := newTestImporter(renderer)

	item := imp.finalize(context.Background(), models.ClothingItem{
		ID:          "imp-abc",
		Name:        "Chanderi Saree",
		Description: "Handwoven with zari border.",
	})

	assert.Equal(t, "catalog_imports/studio-shot.png", item.ImageURL)
	require.Len(t, renderer.prompts, 1)
	assert.Equal(t, "Chanderi Saree. Handwoven with zari border.", renderer.prompts[0])
	assert.NotEmpty(t, renderer.colors[0])
}

func TestFinalizePromptWithoutDescription(t *testing.T) {
	renderer := &fakeRenderer{}
	imp := newTestImporter(renderer)

	imp.finalize(context.Background(), models.ClothingItem{ID: "imp-abc", Name: "Chanderi Saree"})

	require.Len(t, renderer.prompts, 1)
	assert.Equal(t, "Chanderi Saree", renderer.prompts[0])
}

func TestFinalizeRenderFailureLeavesEntryUsable(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("prompt restricted")}
	imp := newTestImporter(renderer)

	item := imp.finalize(context.Background(), models.ClothingItem{ID: "imp-abc", Name: "Chanderi Saree"})

	assert.Empty(t, item.ImageURL)
}

func TestFinalizeUploadFailureLeavesEntryUsable(t *testing.T) {
	renderer := &fakeRenderer{}
	imp := &Importer{
		renderer: renderer,
		upload: func(ctx context.Context, image []byte) (string, error) {
			return "", errors.New("bucket unavailable")
		},
	}

	item := imp.finalize(context.Background(), models.ClothingItem{ID: "imp-abc", Name: "Chanderi Saree"})

	assert.Empty(t, item.ImageURL)
}
