package importer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastrastudio/vastra-backend/models"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseGarmentPageOpenGraph(t *testing.T) {
	doc := docFromHTML(t, `<html><head>
		<meta property="og:title" content="Kanjeevaram Silk Saree with Temple Border">
		<meta property="og:description" content="Handwoven pure silk saree in emerald green.">
		<meta property="og:image" content="https://cdn.example.com/saree.jpg">
		<meta property="product:price:amount" content="18499">
	</head><body><h1>ignored</h1></body></html>`)

	item, err := ParseGarmentPage(doc)
	require.NoError(t, err)
	assert.Equal(t, "Kanjeevaram Silk Saree with Temple Border", item.Name)
	assert.Equal(t, "https://cdn.example.com/saree.jpg", item.ImageURL)
	assert.Equal(t, 18499, item.Price)
	assert.Equal(t, "Silk saree", item.Category)
	assert.Equal(t, models.GenderFemale, item.Gender)
	assert.NotEmpty(t, item.SuitableShapes)
}

func TestParseGarmentPageMarkupFallbacks(t *testing.T) {
	doc := docFromHTML(t, `<html><head><title>store</title></head><body>
		<h1> Royal Wedding Sherwani </h1>
		<div class="product-price">Rs. 32,999</div>
		<img src="/relative.jpg"><img src="https://cdn.example.com/sherwani.jpg">
	</body></html>`)

	item, err := ParseGarmentPage(doc)
	require.NoError(t, err)
	assert.Equal(t, "Royal Wedding Sherwani", item.Name)
	assert.Equal(t, "https://cdn.example.com/sherwani.jpg", item.ImageURL)
	assert.Equal(t, 32999, item.Price)
	assert.Equal(t, "Wedding sherwani", item.Category)
	assert.Equal(t, models.GenderMale, item.Gender)
}

func TestParseGarmentPageNoTitle(t *testing.T) {
	doc := docFromHTML(t, `<html><head></head><body><p>nothing here</p></body></html>`)
	_, err := ParseGarmentPage(doc)
	assert.Error(t, err)
}

func TestClassifyWomenOverride(t *testing.T) {
	category, gender := classify("Chikankari Kurta for Women")
	assert.Equal(t, "Silk kurta", category)
	assert.Equal(t, models.GenderFemale, gender)

	category, gender = classify("plain cotton shirt")
	assert.Equal(t, "Imported", category)
	assert.Equal(t, models.GenderUnspecified, gender)
}

func TestLooksBlocked(t *testing.T) {
	blocked := docFromHTML(t, `<html><head><title>Robot Check</title></head><body>`+strings.Repeat("x", 300)+`</body></html>`)
	assert.True(t, looksBlocked(blocked))

	thin := docFromHTML(t, `<html><head><title>ok</title></head><body>tiny</body></html>`)
	assert.True(t, looksBlocked(thin))

	fine := docFromHTML(t, `<html><head><title>Saree Shop</title></head><body>`+strings.Repeat("content ", 50)+`</body></html>`)
	assert.False(t, looksBlocked(fine))
}
