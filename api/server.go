// Package api exposes the studio's state machine over HTTP. Handlers
// follow one shape: decode, call the owning service, respond with
// utils.RespondJSON, and flush a per-request log on exit.
package api

import (
	"github.com/vastrastudio/vastra-backend/session"
	"github.com/vastrastudio/vastra-backend/store"
	"github.com/vastrastudio/vastra-backend/tryon"
	"github.com/vastrastudio/vastra-backend/utils"
)

// Server bundles the services the handlers dispatch into.
type Server struct {
	Sessions *session.Service
	Fittings *tryon.Orchestrator
	Store    store.Store
	Media    utils.MediaStore
	Gemini   utils.Gemini
}

func NewServer(sessions *session.Service, fittings *tryon.Orchestrator, st store.Store) *Server {
	return &Server{
		Sessions: sessions,
		Fittings: fittings,
		Store:    st,
	}
}
