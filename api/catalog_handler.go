package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vastrastudio/vastra-backend/catalog"
	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/recommend"
	"github.com/vastrastudio/vastra-backend/utils"
)

// CatalogHandler serves the browsable collections view with search and
// category filters applied on top of the analyzed gender.
func (s *Server) CatalogHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Catalog API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	analysis, err := s.Sessions.Analysis(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load analysis", http.StatusInternalServerError)
		return
	}

	gender := models.GenderUnspecified
	if analysis != nil {
		gender = analysis.Gender
	}
	search := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	items := catalog.Filter(catalog.Items, gender, search, category)
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Catalog filtered to %d items", len(items)))

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"items":      items,
		"categories": catalog.Categories(),
		"palette":    catalog.EthnicColors,
	})
}

// RecommendationsHandler serves the ranked home feed for the analyzed body.
func (s *Server) RecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Recommendations API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	analysis, err := s.Sessions.Analysis(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load analysis", http.StatusInternalServerError)
		return
	}

	ranked := recommend.Rank(catalog.Items, analysis)
	// The home screen shows only the best few; ?limit=4 there.
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit < len(ranked) {
			ranked = ranked[:limit]
		}
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Ranked %d items", len(ranked)))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"analysis": analysis,
		"items":    ranked,
	})
}
