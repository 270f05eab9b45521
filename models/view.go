package models

import "strings"

// View identifies a screen of the studio client.
type View string

const (
	ViewLanding     View = "LANDING"
	ViewLogin       View = "LOGIN"
	ViewRegister    View = "REGISTER"
	ViewUpload      View = "UPLOAD"
	ViewHome        View = "HOME"
	ViewCollections View = "COLLECTIONS"
	ViewWatchlist   View = "WATCHLIST" // the closet
	ViewProfile     View = "PROFILE"
	ViewDesigner    View = "DESIGNER"
	ViewCart        View = "CART"
)

// ParseView maps a navigation target to a known view. "CLOSET" is accepted
// as an alias for WATCHLIST. The second return is false for unknown targets.
func ParseView(s string) (View, bool) {
	switch View(strings.ToUpper(strings.TrimSpace(s))) {
	case ViewLanding:
		return ViewLanding, true
	case ViewLogin:
		return ViewLogin, true
	case ViewRegister:
		return ViewRegister, true
	case ViewUpload:
		return ViewUpload, true
	case ViewHome:
		return ViewHome, true
	case ViewCollections:
		return ViewCollections, true
	case ViewWatchlist, View("CLOSET"):
		return ViewWatchlist, true
	case ViewProfile:
		return ViewProfile, true
	case ViewDesigner:
		return ViewDesigner, true
	case ViewCart:
		return ViewCart, true
	}
	return ViewHome, false
}

// CameraAngle is one of the five fixed try-on perspectives.
type CameraAngle string

const (
	AngleFront   CameraAngle = "Front"
	AngleSide    CameraAngle = "Side"
	AngleBack    CameraAngle = "Back"
	AngleCloseUp CameraAngle = "Close-up Detail"
	Angle360     CameraAngle = "360 View"
)

// CameraAngles lists the supported perspectives in display order.
var CameraAngles = []CameraAngle{AngleFront, AngleSide, AngleBack, AngleCloseUp, Angle360}

// ParseAngle matches an angle case-insensitively.
func ParseAngle(s string) (CameraAngle, bool) {
	for _, a := range CameraAngles {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, true
		}
	}
	return AngleFront, false
}
