package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vastrastudio/vastra-backend/models"
)

// Two signups for the same address can race past the FindOne pre-check;
// the unique email index then rejects the loser and that rejection must
// surface as the duplicate-email sentinel, not an internal error.
func TestInsertUserErrMapsUniqueIndexViolation(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	assert.ErrorIs(t, insertUserErr(dup), models.ErrDuplicateEmail)
}

func TestInsertUserErrWrapsOtherFailures(t *testing.T) {
	cause := errors.New("connection reset")
	err := insertUserErr(cause)
	assert.NotErrorIs(t, err, models.ErrDuplicateEmail)
	assert.ErrorIs(t, err, cause)
}
