// Package catalog holds the immutable garment reference data and the
// browse-time filtering over it.
package catalog

import (
	"strings"

	"github.com/vastrastudio/vastra-backend/models"
)

// EthnicColors is the default swatch palette offered when an item does not
// declare its own color availability.
var EthnicColors = []models.ColorSwatch{
	{Name: "Deep Maroon", Hex: "#5b0000", Prompt: "royal deep maroon"},
	{Name: "Royal Blue", Hex: "#002366", Prompt: "majestic royal blue"},
	{Name: "Emerald", Hex: "#046307", Prompt: "rich emerald green"},
	{Name: "Mustard", Hex: "#daa520", Prompt: "traditional mustard yellow gold"},
	{Name: "Peach", Hex: "#ffccb3", Prompt: "soft pastel peach"},
	{Name: "Gold", Hex: "#cfb53b", Prompt: "antique metallic gold"},
	{Name: "Jet Black", Hex: "#1a1a1a", Prompt: "jet black with subtle sheen"},
	{Name: "Ivory", Hex: "#fffff0", Prompt: "elegant ivory cream"},
}

// ColorByName resolves a palette swatch case-insensitively.
func ColorByName(name string) (models.ColorSwatch, bool) {
	for _, c := range EthnicColors {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return models.ColorSwatch{}, false
}

// ItemByID looks an item up in the static database.
func ItemByID(id string) (models.ClothingItem, bool) {
	for _, item := range Items {
		if item.ID == id {
			return item, true
		}
	}
	return models.ClothingItem{}, false
}

// ColorsFor returns the swatches offered for an item: its own availability
// when declared, otherwise the full palette.
func ColorsFor(item models.ClothingItem) []models.ColorSwatch {
	if len(item.AvailableColors) > 0 {
		return item.AvailableColors
	}
	return EthnicColors
}

// Filter applies the browse predicates with AND semantics: gender match (the
// item's gender equals the requested one or is unspecified), case-insensitive
// substring search on the name, and optional category equality. Requesting
// the unspecified gender skips the gender predicate entirely.
func Filter(items []models.ClothingItem, gender models.Gender, search, category string) []models.ClothingItem {
	search = strings.ToLower(strings.TrimSpace(search))
	gendered := gender != "" && gender != models.GenderUnspecified
	out := make([]models.ClothingItem, 0, len(items))
	for _, item := range items {
		if gendered && item.Gender != gender && item.Gender != models.GenderUnspecified {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Categories returns the distinct categories in database order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range Items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
