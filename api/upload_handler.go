package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/utils"
)

// UploadPortraitHandler stores the portrait, records it on the session and
// runs the body analysis. The portrait sticks even when analysis fails so
// the client can retry analysis without re-uploading.
func (s *Server) UploadPortraitHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Upload Portrait API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// 10 MB cap on portrait uploads
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("portrait")
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Missing 'portrait' file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key, err := s.Media.SavePortrait(r.Context(), userID, file, contentType)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to store portrait: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to store portrait", http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Portrait stored at %s", key))

	user, analysis, err := s.Sessions.CompleteUpload(r.Context(), userID, key)
	if err != nil {
		if errors.Is(err, models.ErrNoSession) {
			utils.RespondError(w, &logMessageBuilder, "No active session", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, models.ErrAnalysisFailed) {
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Analysis failed: %v", err))
			user.PhotoURL = utils.PresignImageURL(r.Context(), user.PhotoURL)
			utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
				"user":  user,
				"error": "Biometric scan failed. You can retry the analysis.",
			})
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Upload failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to complete upload", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Portrait analyzed")
	user.PhotoURL = utils.PresignImageURL(r.Context(), user.PhotoURL)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user":     user,
		"analysis": analysis,
		"view":     string(models.ViewHome),
	})
}
