// Package router decides which screen the client may show. Navigation is
// a pure function of the session facts, so a stale or hand-crafted view
// request can never skip the portrait gate.
package router

import "github.com/vastrastudio/vastra-backend/models"

// Facts is the session summary the resolver works from.
type Facts struct {
	SignedIn      bool
	PhotoUploaded bool
}

// Initial is the view for a fresh visitor with no session.
func Initial(f Facts) models.View {
	return Resolve(f, models.ViewLanding)
}

// Resolve maps a requested view onto the one the session actually permits.
//
// Without a session only the public screens are reachable. With a session
// but no portrait, every request lands on the upload gate. Once the
// portrait exists the request is honored; the public screens redirect to
// the studio home, while Upload stays reachable for re-calibration.
func Resolve(f Facts, requested models.View) models.View {
	if !f.SignedIn {
		switch requested {
		case models.ViewLogin, models.ViewRegister:
			return requested
		default:
			return models.ViewLanding
		}
	}
	if !f.PhotoUploaded {
		return models.ViewUpload
	}
	switch requested {
	case models.ViewLanding, models.ViewLogin, models.ViewRegister:
		return models.ViewHome
	default:
		return requested
	}
}
