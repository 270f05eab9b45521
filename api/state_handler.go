package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/router"
	"github.com/vastrastudio/vastra-backend/utils"
)

func (s *Server) initialView(user models.User) models.View {
	return router.Resolve(router.Facts{SignedIn: true, PhotoUploaded: user.PhotoUploaded}, models.ViewHome)
}

// StateHandler returns the full client bootstrap state: user, analysis,
// resolved view, fitting snapshot and collection counts.
func (s *Server) StateHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[State API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := s.Sessions.CurrentUser(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load session", http.StatusInternalServerError)
		return
	}

	facts := router.Facts{SignedIn: user != nil}
	if user != nil {
		facts.PhotoUploaded = user.PhotoUploaded
		user.PhotoURL = utils.PresignImageURL(r.Context(), user.PhotoURL)
	}

	analysis, err := s.Sessions.Analysis(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load analysis", http.StatusInternalServerError)
		return
	}
	cart, err := s.Sessions.Cart(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load cart", http.StatusInternalServerError)
		return
	}
	looks, err := s.Sessions.Looks(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load closet", http.StatusInternalServerError)
		return
	}
	history, err := s.Sessions.History(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load history", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("State loaded for %s", userID))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user":         user,
		"analysis":     analysis,
		"view":         router.Initial(facts),
		"fitting":      s.Fittings.State(userID),
		"cartCount":    len(cart),
		"closetCount":  len(looks),
		"historyCount": len(history),
	})
}

// NavigateHandler resolves a requested view against the session facts.
func (s *Server) NavigateHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Navigate API]")

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
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := s.Sessions.CurrentUser(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load session", http.StatusInternalServerError)
		return
	}
	facts := router.Facts{SignedIn: user != nil}
	if user != nil {
		facts.PhotoUploaded = user.PhotoUploaded
	}

	requested, known := models.ParseView(req.View)
	resolved := router.Resolve(facts, requested)
	if !known {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Unknown view %q, falling back", req.View))
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Resolved %q -> %s", req.View, resolved))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"view": string(resolved)})
}
