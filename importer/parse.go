package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vastrastudio/vastra-backend/models"
)

// categoryKeywords maps listing-text keywords onto our catalog categories.
// First hit wins, so the more specific names come first.
var categoryKeywords = []struct {
	keyword  string
	category string
	gender   models.Gender
}{
	{"lehenga", "Bridal lehenga", models.GenderFemale},
	{"saree", "Silk saree", models.GenderFemale},
	{"sari", "Silk saree", models.GenderFemale},
	{"anarkali", "Anarkali gown", models.GenderFemale},
	{"gown", "Anarkali gown", models.GenderFemale},
	{"salwar", "Daily wear salwar suit", models.GenderFemale},
	{"kurti", "Daily wear salwar suit", models.GenderFemale},
	{"sherwani", "Wedding sherwani", models.GenderMale},
	{"nehru", "Nehru jacket set", models.GenderMale},
	{"pathani", "Pathani suit", models.GenderMale},
	{"dhoti", "Dhoti kurta", models.GenderMale},
	{"kurta", "Silk kurta", models.GenderMale},
}

// shapeDefaults gives imported items a plausible silhouette fit per
// category until a stylist curates them.
var shapeDefaults = map[string][]models.BodyShape{
	"Silk saree":             {models.ShapeHourglass, models.ShapePear, models.ShapeRectangle},
	"Bridal lehenga":         {models.ShapeHourglass, models.ShapePear},
	"Anarkali gown":          {models.ShapePear, models.ShapeApple, models.ShapeRectangle},
	"Daily wear salwar suit": {models.ShapeRectangle, models.ShapeApple, models.ShapeAthletic},
	"Wedding sherwani":       {models.ShapeRectangle, models.ShapeAthletic},
	"Nehru jacket set":       {models.ShapeRectangle, models.ShapeInvertedTriangle},
	"Pathani suit":           {models.ShapeAthletic, models.ShapeRectangle},
	"Dhoti kurta":            {models.ShapeRectangle, models.ShapeApple},
	"Silk kurta":             {models.ShapeRectangle, models.ShapeAthletic, models.ShapeApple},
}

var priceDigits = regexp.MustCompile(`[\d,]+`)

// ParseGarmentPage extracts a catalog entry from a merchant product page.
// It leans on OpenGraph metadata first and falls back to common markup.
func ParseGarmentPage(doc *goquery.Document) (models.ClothingItem, error) {
	item := models.ClothingItem{}

	item.Name = strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	if item.Name == "" {
		item.Name = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if item.Name == "" {
		item.Name = strings.TrimSpace(doc.Find("title").Text())
	}
	if item.Name == "" {
		return item, fmt.Errorf("no garment title found on page")
	}

	item.Description = strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
	if item.Description == "" {
		item.Description = strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	}

	if img := strings.TrimSpace(doc.Find(`meta[property="og:image"]`).AttrOr("content", "")); img != "" {
		item.ImageURL = img
	} else if img := doc.Find("img").FilterFunction(func(i int, s *goquery.Selection) bool {
		src := s.AttrOr("src", "")
		return strings.HasPrefix(src, "http")
	}).First().AttrOr("src", ""); img != "" {
		item.ImageURL = img
	}

	item.Price = parsePrice(doc)
	item.Category, item.Gender = classify(item.Name + " " + item.Description)
	item.SuitableShapes = shapeDefaults[item.Category]

	return item, nil
}

// parsePrice pulls the first rupee amount it can find.
func parsePrice(doc *goquery.Document) int {
	candidates := []string{
		doc.Find(`meta[property="product:price:amount"]`).AttrOr("content", ""),
		doc.Find(`meta[itemprop="price"]`).AttrOr("content", ""),
		doc.Find(`[class*="price"]`).First().Text(),
	}
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		digits := priceDigits.FindString(c)
		if digits == "" {
			continue
		}
		if n, err := strconv.Atoi(strings.ReplaceAll(digits, ",", "")); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func classify(text string) (string, models.Gender) {
	lower := strings.ToLower(text)
	for _, ck := range categoryKeywords {
		if strings.Contains(lower, ck.keyword) {
			gender := ck.gender
			// "kurta for women" style listings override the keyword default.
			if strings.Contains(lower, "women") || strings.Contains(lower, "ladies") {
				gender = models.GenderFemale
			}
			return ck.category, gender
		}
	}
	return "Imported", models.GenderUnspecified
}
