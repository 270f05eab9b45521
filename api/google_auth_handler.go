package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vastrastudio/vastra-backend/config"
	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/store"
	"github.com/vastrastudio/vastra-backend/utils"
)

func getOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		RedirectURL:  config.GoogleRedirectURL,
		ClientID:     config.GoogleClientID,
		ClientSecret: config.GoogleClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleLoginHandler handles the login request by redirecting to Google
func (s *Server) GoogleLoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Google Login API]")

	oauthConfig := getOauthConfig()
	// State should be randomized for security in production
	url := oauthConfig.AuthCodeURL("random-state")

	utils.AddToLogMessage(&logMessageBuilder, "Redirecting to Google Auth")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GoogleCallbackHandler handles the callback from Google, signing the user
// in (creating the account on first visit) and minting a session token.
func (s *Server) GoogleCallbackHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Google Callback API]")

	state := r.FormValue("state")
	if state != "random-state" {
		utils.RespondError(w, &logMessageBuilder, "State invalid", http.StatusBadRequest)
		return
	}

	code := r.FormValue("code")
	if code == "" {
		utils.RespondError(w, &logMessageBuilder, "Code not found", http.StatusBadRequest)
		return
	}

	oauthConfig := getOauthConfig()
	oauthToken, err := oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to exchange token: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + oauthToken.AccessToken)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to read user info", http.StatusInternalServerError)
		return
	}

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(content, &info); err != nil || info.Email == "" {
		utils.RespondError(w, &logMessageBuilder, "Unexpected user info response", http.StatusInternalServerError)
		return
	}

	user, err := s.Store.FindUserByEmail(r.Context(), info.Email)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to look up user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		now := time.Now()
		created := models.User{
			ID:        uuid.NewString(),
			Name:      info.Name,
			Email:     strings.ToLower(info.Email),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Store.CreateUser(r.Context(), created); err != nil {
			utils.RespondError(w, &logMessageBuilder, "Failed to create user", http.StatusInternalServerError)
			return
		}
		user = &created
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Created account for %s via Google", created.Email))
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to mint session token", http.StatusInternalServerError)
		return
	}
	if err := s.Store.Save(r.Context(), user.ID, store.KeyCurrentUser, user); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Failed to open session", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Google sign-in complete")
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
		"view":  s.initialView(*user),
	})
}
