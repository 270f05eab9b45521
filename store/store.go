// Package store is the durable snapshot layer. Each user owns five logical
// keys; every mutation rewrites the whole snapshot for its key, and loading
// is best effort: absent, corrupt or version-mismatched data yields the
// caller's zero value instead of an error the user would see.
package store

import (
	"context"
	"encoding/json"

	"github.com/vastrastudio/vastra-backend/models"
)

// Logical snapshot keys tracked per user. SignOut wipes exactly this set.
const (
	KeyCurrentUser = "current_user"
	KeyAnalysis    = "analysis"
	KeyCart        = "cart"
	KeySavedLooks  = "saved_looks"
	KeyHistory     = "history"
)

// TrackedKeys is the full wipe set, in no particular order.
var TrackedKeys = []string{KeyCurrentUser, KeyAnalysis, KeyCart, KeySavedLooks, KeyHistory}

// schemaVersion guards every stored envelope. A bumped version invalidates
// old snapshots on load (they fall back to defaults) instead of failing.
const schemaVersion = 1

// envelope wraps each persisted snapshot with its schema version.
type envelope struct {
	SchemaVersion int             `json:"schema_version" bson:"schema_version"`
	Payload       json.RawMessage `json:"payload" bson:"payload"`
}

// Store persists per-user snapshots and the account registry.
type Store interface {
	// Save rewrites the full snapshot under (userID, key).
	Save(ctx context.Context, userID, key string, v any) error
	// Load unmarshals the snapshot into out. The boolean is false when the
	// key is absent, unparseable or from another schema version; out is
	// left untouched in that case.
	Load(ctx context.Context, userID, key string, out any) (bool, error)
	// Wipe removes every tracked key for the user.
	Wipe(ctx context.Context, userID string) error

	Registry
}

// Registry is the durable account store. It survives Wipe: accounts are not
// session state.
type Registry interface {
	// CreateUser fails with models.ErrDuplicateEmail when the email is taken.
	CreateUser(ctx context.Context, u models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, u models.User) error
}

func seal(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{SchemaVersion: schemaVersion, Payload: payload})
}

// open validates an envelope and unmarshals its payload into out. A false
// return means "treat as absent".
func open(raw []byte, out any) bool {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	if env.SchemaVersion != schemaVersion || len(env.Payload) == 0 {
		return false
	}
	return json.Unmarshal(env.Payload, out) == nil
}
