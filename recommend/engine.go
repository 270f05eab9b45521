// Package recommend scores catalog garments against a body analysis.
// Scoring is pure arithmetic over the analysis and the garment's static
// description text, so rankings are reproducible.
package recommend

import (
	"sort"
	"strings"

	"github.com/vastrastudio/vastra-backend/models"
)

// Keyword sets for tone compatibility. Cool jewel tones flatter fair and
// light skin; warm pastels and golds flatter wheatish through deep tones.
var (
	coolKeywords = []string{"emerald", "ruby", "navy", "maroon", "royal", "indigo", "burgundy"}
	warmKeywords = []string{"peach", "ivory", "mint", "pastel", "saffron", "gold", "tangerine"}
)

const (
	genderMismatchScore = 15
	shapeMatchBonus     = 60
	shapeMissBonus      = 25
	toneMatchBonus      = 20
	toneBaseline        = 12
	maxScore            = 99
)

// MatchScore rates a garment for the analyzed body, 0 to 99. A nil
// analysis gives every garment a flat zero. Cross-gender garments are
// pinned to a low floor rather than hidden.
func MatchScore(item models.ClothingItem, analysis *models.BodyAnalysis) int {
	if analysis == nil {
		return 0
	}
	if genderMismatch(item.Gender, analysis.Gender) {
		return genderMismatchScore
	}

	score := shapeMissBonus
	if item.SuitsShape(analysis.BodyShape) {
		score = shapeMatchBonus
	}

	tone := strings.ToLower(analysis.SkinTone)
	desc := strings.ToLower(item.Description)
	switch {
	case containsAny(tone, "fair", "light") && containsAny(desc, coolKeywords...):
		score += toneMatchBonus
	case containsAny(tone, "dusky", "deep", "wheatish") && containsAny(desc, warmKeywords...):
		score += toneMatchBonus
	default:
		score += toneBaseline
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

func genderMismatch(item, analyzed models.Gender) bool {
	if item == "" || item == models.GenderUnspecified {
		return false
	}
	return item != analyzed
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Scored pairs a garment with its match score for ranked views.
type Scored struct {
	Item  models.ClothingItem `json:"item"`
	Score int                 `json:"score"`
}

// Rank filters the catalog to garments wearable by the analyzed gender
// (or unspecified) and sorts them best match first. The sort is stable,
// so equal scores keep catalog order.
func Rank(items []models.ClothingItem, analysis *models.BodyAnalysis) []Scored {
	ranked := make([]Scored, 0, len(items))
	for _, item := range items {
		if analysis != nil && genderMismatch(item.Gender, analysis.Gender) {
			continue
		}
		ranked = append(ranked, Scored{Item: item, Score: MatchScore(item, analysis)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
