// Package session owns the per-user application state: who is signed in,
// their analysis, cart, closet and history. Every mutation is routed
// through a named operation and synchronously persisted as a full snapshot.
package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vastrastudio/vastra-backend/models"
	"github.com/vastrastudio/vastra-backend/store"
)

// Analyzer is the portrait analysis collaborator. photo is a stored object
// key, URL or data URI; the implementation resolves it.
type Analyzer interface {
	AnalyzePortrait(ctx context.Context, photo string) (models.BodyAnalysis, error)
}

// Mailer sends best-effort account mail. May be nil.
type Mailer interface {
	SendEmail(toName, toEmail, subject, textContent, htmlContent string) error
}

// Service exposes the session operations over a Store.
type Service struct {
	store     store.Store
	analyzer  Analyzer
	mailer    Mailer
	mintToken func(userID string) (string, error)
}

func NewService(st store.Store, analyzer Analyzer, mailer Mailer, mintToken func(string) (string, error)) *Service {
	return &Service{store: st, analyzer: analyzer, mailer: mailer, mintToken: mintToken}
}

// SignUp registers a new account. It does not start a session; the caller
// still signs in afterwards, as in the studio client.
func (s *Service) SignUp(ctx context.Context, name, email, secret, confirm string) (models.User, error) {
	if secret != confirm {
		return models.User{}, models.ErrPasswordMismatch
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now()
	u := models.User{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Password:      string(hashed),
		PhotoUploaded: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return models.User{}, err
	}
	if s.mailer != nil {
		if err := s.mailer.SendEmail(u.Name, u.Email, "Welcome to Vastra Studio",
			fmt.Sprintf("Hi %s, your studio profile is ready. Sign in and upload a portrait to begin.", u.Name),
			fmt.Sprintf("<h1>Welcome, %s</h1><p>Your studio profile is ready. Sign in and upload a portrait to begin.</p>", u.Name)); err != nil {
			log.Printf("welcome email to %s failed: %v", u.Email, err)
		}
	}
	return u, nil
}

// SignIn authenticates against the registry and opens a session: the user
// snapshot is written under the current_user key and a session token is
// minted. The token is an opaque handle, not a security boundary.
func (s *Service) SignIn(ctx context.Context, email, secret string) (models.User, string, error) {
	u, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	if u == nil {
		return models.User{}, "", models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(secret)); err != nil {
		return models.User{}, "", models.ErrInvalidCredentials
	}
	token, err := s.mintToken(u.ID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("mint session token: %w", err)
	}
	if err := s.store.Save(ctx, u.ID, store.KeyCurrentUser, u); err != nil {
		return models.User{}, "", err
	}
	return *u, token, nil
}

// SignOut wipes all tracked state for the user: session pointer, analysis,
// cart, closet and history. The account registry itself is untouched.
func (s *Service) SignOut(ctx context.Context, userID string) error {
	return s.store.Wipe(ctx, userID)
}

// CurrentUser returns the active session's user snapshot, or nil when no
// session state exists.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	ok, err := s.store.Load(ctx, userID, store.KeyCurrentUser, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// CompleteUpload records the portrait on the active user and triggers the
// analysis collaborator. The portrait mutation sticks even when analysis
// fails; the failure is reported as ErrAnalysisFailed so the client can
// offer a retry.
func (s *Service) CompleteUpload(ctx context.Context, userID, photo string) (models.User, *models.BodyAnalysis, error) {
	u, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return models.User{}, nil, err
	}
	if u == nil {
		return models.User{}, nil, models.ErrNoSession
	}
	u.PhotoURL = photo
	u.PhotoUploaded = true
	u.UpdatedAt = time.Now()
	if err := s.store.UpdateUser(ctx, *u); err != nil {
		return models.User{}, nil, err
	}
	if err := s.store.Save(ctx, userID, store.KeyCurrentUser, u); err != nil {
		return models.User{}, nil, err
	}

	analysis, err := s.analyzer.AnalyzePortrait(ctx, photo)
	if err != nil {
		return *u, nil, fmt.Errorf("%w: %v", models.ErrAnalysisFailed, err)
	}
	if err := s.store.Save(ctx, userID, store.KeyAnalysis, analysis); err != nil {
		return *u, nil, err
	}
	return *u, &analysis, nil
}

// Analysis returns the active analysis, or nil when none exists.
func (s *Service) Analysis(ctx context.Context, userID string) (*models.BodyAnalysis, error) {
	var a models.BodyAnalysis
	ok, err := s.store.Load(ctx, userID, store.KeyAnalysis, &a)
	if err != nil || !ok {
		return nil, err
	}
	return &a, nil
}

// Portrait returns the stored portrait reference for the active session.
func (s *Service) Portrait(ctx context.Context, userID string) (string, error) {
	u, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if u == nil || u.PhotoURL == "" {
		return "", nil
	}
	return u.PhotoURL, nil
}
