package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vastrastudio/vastra-backend/models"
)

const (
	stateCollection = "state"
	userCollection  = "users"
)

// stateDoc is one snapshot row in the state collection.
type stateDoc struct {
	ID       string `bson:"_id"` // userID + "/" + key
	UserID   string `bson:"user_id"`
	Key      string `bson:"key"`
	Snapshot string `bson:"snapshot"` // JSON envelope
}

// Mongo is the production Store, one document per (user, key) snapshot.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// EnsureIndexes creates the unique email index the registry relies on to
// reject concurrent signups for the same address. Call once at startup.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

func (s *Mongo) Save(ctx context.Context, userID, key string, v any) error {
	raw, err := seal(v)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", key, err)
	}
	doc := stateDoc{ID: snapKey(userID, key), UserID: userID, Key: key, Snapshot: string(raw)}
	_, err = s.db.Collection(stateCollection).ReplaceOne(ctx,
		bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("persist snapshot %s: %w", key, err)
	}
	return nil
}

func (s *Mongo) Load(ctx context.Context, userID, key string, out any) (bool, error) {
	var doc stateDoc
	err := s.db.Collection(stateCollection).
		FindOne(ctx, bson.M{"_id": snapKey(userID, key)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	return open([]byte(doc.Snapshot), out), nil
}

func (s *Mongo) Wipe(ctx context.Context, userID string) error {
	_, err := s.db.Collection(stateCollection).DeleteMany(ctx,
		bson.M{"user_id": userID, "key": bson.M{"$in": TrackedKeys}})
	if err != nil {
		return fmt.Errorf("wipe state for %s: %w", userID, err)
	}
	return nil
}

func (s *Mongo) CreateUser(ctx context.Context, u models.User) error {
	users := s.db.Collection(userCollection)
	err := users.FindOne(ctx, bson.M{"email": strings.ToLower(u.Email)}).Err()
	if err == nil {
		return models.ErrDuplicateEmail
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check existing user: %w", err)
	}
	u.Email = strings.ToLower(u.Email)
	if _, err := users.InsertOne(ctx, u); err != nil {
		return insertUserErr(err)
	}
	return nil
}

// insertUserErr maps the unique-index violation onto the registry sentinel
// so a signup racing past the pre-check still reads as a duplicate.
func insertUserErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateEmail
	}
	return fmt.Errorf("insert user: %w", err)
}

func (s *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.Collection(userCollection).
		FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *Mongo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (s *Mongo) UpdateUser(ctx context.Context, u models.User) error {
	u.Email = strings.ToLower(u.Email)
	_, err := s.db.Collection(userCollection).ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
