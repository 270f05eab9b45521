package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/utils"
)

const defaultPageSize = 12

func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	return page, limit
}

func lookMatches(look models.SavedLook, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(look.ClothingItem.Name), query) ||
		strings.Contains(strings.ToLower(look.Notes), query) {
		return true
	}
	for _, tag := range look.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// ClosetHandler lists saved looks newest first, with text search over the
// garment name, notes and tags, and page/limit pagination.
func (s *Server) ClosetHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Closet API]")

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	looks, err := s.Sessions.Looks(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to load closet", http.StatusInternalServerError)
		return
	}

	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	filtered := looks[:0:0]
	for _, look := range looks {
		if lookMatches(look, query) {
			filtered = append(filtered, look)
		}
	}

	page, limit := pageParams(r)
	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	pageLooks := filtered[start:end]
	for i := range pageLooks {
		pageLooks[i].ResultImage = utils.PresignImageURL(r.Context(), pageLooks[i].ResultImage)
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Closet page %d (%d of %d looks)", page, len(pageLooks), len(filtered)))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"looks": pageLooks,
		"page":  page,
		"limit": limit,
		"total": len(filtered),
	})
}

// UpdateLookHandler edits the notes and tags on a saved look.
func (s *Server) UpdateLookHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Update Look API]")

	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ID    string   `json:"id"`
		Notes string   `json:"notes"`
		Tags  []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		utils.RespondError(w, &logMessageBuilder, "Look id is required", http.StatusBadRequest)
		return
	}

	look, err := s.Sessions.UpdateLook(r.Context(), userID, req.ID, req.Notes, req.Tags)
	if err != nil {
		if errors.Is(err, models.ErrLookNotFound) {
			utils.RespondError(w, &logMessageBuilder, "Look not found", http.StatusNotFound)
			return
		}
		utils.RespondError(w, &logMessageBuilder, "Failed to update look", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Updated look %s", look.ID))
	look.ResultImage = utils.PresignImageURL(r.Context(), look.ResultImage)
	utils.RespondJSON(w, http.StatusOK, look)
}

// DeleteLookHandler removes a saved look.
func (s *Server) DeleteLookHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Delete Look API]")

	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		var req struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			id = req.ID
		}
	}
	if id == "" {
		utils.RespondError(w, &logMessageBuilder, "Look id is required", http.StatusBadRequest)
		return
	}

	if err := s.Sessions.DeleteLook(r.Context(), userID, id); err != nil {
		if errors.Is(err, models.ErrLookNotFound) {
			utils.RespondError(w, &logMessageBuilder, "Look not found", http.StatusNotFound)
			return
		}
		utils.RespondError(w, &logMessageBuilder, "Failed to delete look", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Deleted look %s", id))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}

// HistoryHandler lists past try-on sessions newest first.
func (s *Server) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	history, err := s.Sessions.History(r.Context(), userID)
	if err != nil {
		utils.RespondError(w, nil, "Failed to load history", http.StatusInternalServerError)
		return
	}
	keys := make([]string, len(history))
	for i := range history {
		keys[i] = history[i].ResultImage
	}
	for i, url := range utils.PresignImageURLs(r.Context(), keys) {
		history[i].ResultImage = url
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"sessions": history})
}

// ClearHistoryHandler empties the history feed.
func (s *Server) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, nil, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, nil, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := s.Sessions.ClearHistory(r.Context(), userID); err != nil {
		utils.RespondError(w, nil, "Failed to clear history", http.StatusInternalServerError)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "History cleared"})
}
