package importer

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/vastrastudio/vastra-backend/catalog"
	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/utils"
)

// Renderer produces a studio catalog shot for listings that carry no
// usable imagery of their own.
type Renderer interface {
	GenerateGarmentImage(ctx context.Context, prompt, colorPrompt string) ([]byte, error)
}

// Importer turns a merchant listing URL into a catalog entry with the
// garment image mirrored into our own bucket.
type Importer struct {
	fetcher  *Fetcher
	renderer Renderer
	upload   func(ctx context.Context, image []byte) (string, error)
}

func New() *Importer {
	return &Importer{
		fetcher:  NewFetcher(),
		renderer: utils.Gemini{},
		upload:   uploadRender,
	}
}

func uploadRender(ctx context.Context, image []byte) (string, error) {
	key := fmt.Sprintf("catalog_imports/%s.png", uuid.NewString())
	return utils.UploadFileToS3(ctx, bytes.NewReader(image), key, "image/png")
}

// Import fetches, parses and mirrors one listing. Shortened share links
// are resolved first so the fetch ladder sees the real merchant domain.
func (imp *Importer) Import(ctx context.Context, url string) (models.ClothingItem, error) {
	if resolved, err := utils.ResolveShortenedURL(url); err == nil {
		url = resolved
	}

	doc, err := imp.fetcher.Fetch(url, func(doc *goquery.Document) bool {
		if looksBlocked(doc) {
			return false
		}
		return doc.Find("h1").Length() > 0 || doc.Find(`meta[property="og:title"]`).Length() > 0
	})
	if err != nil {
		return models.ClothingItem{}, fmt.Errorf("failed to fetch listing: %w", err)
	}

	item, err := ParseGarmentPage(doc)
	if err != nil {
		return models.ClothingItem{}, fmt.Errorf("failed to parse listing: %w", err)
	}
	item.ID = "imp-" + strings.SplitN(uuid.NewString(), "-", 2)[0]

	return imp.finalize(ctx, item), nil
}

// finalize settles the entry's image: listings with a photo get it
// mirrored into our bucket, listings without one get a studio render.
// Both paths are best effort; a failure leaves the parsed URL as is.
func (imp *Importer) finalize(ctx context.Context, item models.ClothingItem) models.ClothingItem {
	if item.ImageURL != "" {
		// Mirror the garment image; merchant CDNs expire and hotlink-block.
		if keys, err := utils.UploadImagesToS3(ctx, []string{item.ImageURL}, "catalog_imports"); err == nil {
			if key, ok := keys[item.ImageURL]; ok {
				item.ImageURL = key
			}
		}
		return item
	}

	prompt := strings.TrimSpace(strings.TrimSuffix(item.Name+". "+item.Description, ". "))
	img, err := imp.renderer.GenerateGarmentImage(ctx, prompt, catalog.EthnicColors[0].Prompt)
	if err != nil {
		fmt.Printf("[Importer] Studio render failed for %s: %v\n", item.ID, err)
		return item
	}
	key, err := imp.upload(ctx, img)
	if err != nil {
		fmt.Printf("[Importer] Render upload failed for %s: %v\n", item.ID, err)
		return item
	}
	item.ImageURL = key
	return item
}
