package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vastrastudio/vastra-backend/catalog"
	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/tryon"
	"github.com/vastrastudio/vastra-backend/utils"
)

func respondFittingError(w http.ResponseWriter, logger *strings.Builder, err error) {
	switch {
	case errors.Is(err, models.ErrNoPortrait):
		utils.RespondError(w, logger, "Upload a portrait before trying on garments", http.StatusPreconditionFailed)
	case errors.Is(err, models.ErrNoGarment):
		utils.RespondError(w, logger, "Select a garment first", http.StatusPreconditionFailed)
	case errors.Is(err, models.ErrTryOnFailed):
		utils.RespondError(w, logger, err.Error(), http.StatusBadGateway)
	default:
		utils.RespondError(w, logger, "Try-on failed", http.StatusInternalServerError)
	}
}

// presignFitting resolves cached result keys into viewable URLs.
func presignFitting(r *http.Request, st tryon.FittingState) tryon.FittingState {
	for angle, result := range st.Results {
		result.Image = utils.PresignImageURL(r.Context(), result.Image)
		st.Results[angle] = result
	}
	return st
}

// SelectGarmentHandler starts a fitting for one garment and renders the
// front view immediately.
func (s *Server) SelectGarmentHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Select Garment API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	item, ok := catalog.ItemByID(req.ItemID)
	if !ok {
		utils.RespondError(w, &logMessageBuilder, "Unknown garment", http.StatusNotFound)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Fitting %s for %s", item.ID, userID))
	st, err := s.Fittings.SelectGarment(r.Context(), userID, item)
	if err != nil {
		respondFittingError(w, &logMessageBuilder, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"fitting": presignFitting(r, st),
		"colors":  catalog.ColorsFor(item),
	})
}

// RequestAngleHandler renders one camera angle for the active fitting.
func (s *Server) RequestAngleHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Request Angle API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Angle string `json:"angle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}
	angle, ok := models.ParseAngle(req.Angle)
	if !ok {
		utils.RespondError(w, &logMessageBuilder, "Unknown camera angle", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Rendering %s for %s", angle, userID))
	st, err := s.Fittings.RequestTryOn(r.Context(), userID, angle, nil, nil)
	if err != nil {
		respondFittingError(w, &logMessageBuilder, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"fitting": presignFitting(r, st)})
}

// ChangeColorHandler re-renders the active angle in a new swatch.
func (s *Server) ChangeColorHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Change Color API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Color string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	swatch, ok := catalog.ColorByName(req.Color)
	if !ok {
		// Fall back to the selected garment's own availability.
		for _, item := range s.Fittings.State(userID).Selection {
			for _, c := range catalog.ColorsFor(item) {
				if strings.EqualFold(c.Name, req.Color) {
					swatch, ok = c, true
				}
			}
		}
	}
	if !ok {
		utils.RespondError(w, &logMessageBuilder, "Unknown color", http.StatusBadRequest)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Recoloring active angle to %s", swatch.Name))
	st, err := s.Fittings.ChangeColor(r.Context(), userID, swatch)
	if err != nil {
		respondFittingError(w, &logMessageBuilder, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"fitting": presignFitting(r, st)})
}

// FittingStateHandler returns the current fitting without rendering.
func (s *Server) FittingStateHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if angle, ok := models.ParseAngle(r.URL.Query().Get("view")); ok {
		utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"fitting": presignFitting(r, s.Fittings.SetActiveAngle(userID, angle))})
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"fitting": presignFitting(r, s.Fittings.State(userID))})
}

// SaveLookHandler snapshots the active angle's render into the closet.
func (s *Server) SaveLookHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Save Look API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Notes string   `json:"notes"`
		Tags  []string `json:"tags"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	look, err := s.Fittings.SaveToCloset(r.Context(), userID, req.Notes, req.Tags)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoGarment):
			utils.RespondError(w, &logMessageBuilder, "Select a garment first", http.StatusPreconditionFailed)
		case errors.Is(err, models.ErrLookNotFound):
			utils.RespondError(w, &logMessageBuilder, "No render cached for the active angle", http.StatusPreconditionFailed)
		default:
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Save failed: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Failed to save look", http.StatusInternalServerError)
		}
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Saved look %s", look.ID))
	look.ResultImage = utils.PresignImageURL(r.Context(), look.ResultImage)
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"look": look})
}

// DesignerHandler renders a bespoke garment from a designer prompt and
// returns it as a one-off catalog entry ready for fitting.
func (s *Server) DesignerHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Designer API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Prompt string `json:"prompt"`
		Color  string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		utils.RespondError(w, &logMessageBuilder, "A design prompt is required", http.StatusBadRequest)
		return
	}

	colorPrompt := ""
	if swatch, ok := catalog.ColorByName(req.Color); ok {
		colorPrompt = swatch.Prompt
	}

	image, err := s.Gemini.GenerateGarmentImage(r.Context(), req.Prompt, colorPrompt)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Designer render failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, err.Error(), http.StatusBadGateway)
		return
	}

	key, err := utils.UploadFileToS3(r.Context(), bytes.NewReader(image), fmt.Sprintf("designs/%s/%s.png", userID, uuid.NewString()), "image/png")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to store design", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Design stored at %s", key))
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"item": models.ClothingItem{
			ID:          "custom-" + uuid.NewString()[:8],
			Name:        req.Prompt,
			Category:    "Designer",
			Gender:      models.GenderUnspecified,
			ImageURL:    key,
			Description: req.Prompt,
		},
		"imageUrl": utils.PresignImageURL(r.Context(), key),
	})
}
