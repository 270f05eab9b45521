package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/utils"
)

// SignupRequest represents the payload for user registration
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest represents the payload for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler handles user registration
func (s *Server) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Signup API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.AddToLogMessage(&logMessageBuilder, "Missing required fields (Name, Email, Password)")
		utils.RespondError(w, &logMessageBuilder, "Name, Email and Password are required", http.StatusBadRequest)
		return
	}

	user, err := s.Sessions.SignUp(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPasswordMismatch):
			utils.RespondError(w, &logMessageBuilder, "Passwords do not match", http.StatusBadRequest)
		case errors.Is(err, models.ErrDuplicateEmail):
			utils.RespondError(w, &logMessageBuilder, "User with this email already exists", http.StatusConflict)
		default:
			utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to create user: %v", err))
			utils.RespondError(w, &logMessageBuilder, "Failed to create user", http.StatusInternalServerError)
		}
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User %s registered", user.Email))
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully. Please sign in.",
		"user":    user,
	})
}

// LoginHandler handles user login and opens a session
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Login API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := s.Sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			utils.RespondError(w, &logMessageBuilder, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Login failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Login failed", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User %s signed in", user.Email))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
		"view":  s.initialView(user),
	})
}

// LogoutHandler wipes all session state for the authenticated user
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Logout API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := s.Sessions.SignOut(r.Context(), userID); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Failed to wipe session state: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to sign out", http.StatusInternalServerError)
		return
	}
	s.Fittings.Drop(userID)

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("User %s signed out", userID))
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Signed out",
		"view":    string(models.ViewLanding),
	})
}
