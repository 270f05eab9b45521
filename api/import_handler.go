package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vastrastudio/vastra-backend/importer"
	"github.com/vastrastudio/vastra-backend/utils"
)

// ImportHandler pulls a merchant listing into a catalog entry. The fetch
// ladder can take a while when merchant sites force a full browser, so
// clients should treat this as a slow endpoint.
func (s *Server) ImportHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Import API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if _, err := GetUserIDFromContext(r.Context()); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	listingURL := r.URL.Query().Get("url")
	if listingURL == "" {
		var req struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			listingURL = req.URL
		}
	}
	if listingURL == "" {
		utils.RespondError(w, &logMessageBuilder, "Please provide a 'url' query parameter or JSON body", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Importing listing: %s", listingURL))
	item, err := importer.New().Import(r.Context(), listingURL)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Import failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, fmt.Sprintf("Import failed: %v", err), http.StatusBadGateway)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Imported %s (%s)", item.ID, item.Name))
	item.ImageURL = utils.PresignImageURL(r.Context(), item.ImageURL)
	utils.RespondJSON(w, http.StatusCreated, item)
}
