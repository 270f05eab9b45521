package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/vastrastudio/vastra-backend/models"
)

// Redis is an alternative Store for deployments that keep session state in
// Redis. Snapshots and registry entries are JSON values; keys are
// namespaced under "vastra:".
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func stateRedisKey(userID, key string) string {
	return "vastra:state:" + userID + ":" + key
}

func userEmailKey(email string) string {
	return "vastra:user:email:" + strings.ToLower(email)
}

func userIDKey(id string) string {
	return "vastra:user:id:" + id
}

func (r *Redis) Save(ctx context.Context, userID, key string, v any) error {
	raw, err := seal(v)
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", key, err)
	}
	if err := r.client.Set(ctx, stateRedisKey(userID, key), raw, 0).Err(); err != nil {
		return fmt.Errorf("persist snapshot %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Load(ctx context.Context, userID, key string, out any) (bool, error) {
	raw, err := r.client.Get(ctx, stateRedisKey(userID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load snapshot %s: %w", key, err)
	}
	return open(raw, out), nil
}

func (r *Redis) Wipe(ctx context.Context, userID string) error {
	keys := make([]string, 0, len(TrackedKeys))
	for _, key := range TrackedKeys {
		keys = append(keys, stateRedisKey(userID, key))
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("wipe state for %s: %w", userID, err)
	}
	return nil
}

func (r *Redis) CreateUser(ctx context.Context, u models.User) error {
	u.Email = strings.ToLower(u.Email)
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, userEmailKey(u.Email), raw, 0).Result()
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if !ok {
		return models.ErrDuplicateEmail
	}
	if err := r.client.Set(ctx, userIDKey(u.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("index user by id: %w", err)
	}
	return nil
}

func (r *Redis) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, userEmailKey(email))
}

func (r *Redis) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.findUser(ctx, userIDKey(id))
}

func (r *Redis) findUser(ctx context.Context, key string) (*models.User, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}

func (r *Redis) UpdateUser(ctx context.Context, u models.User) error {
	u.Email = strings.ToLower(u.Email)
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, userEmailKey(u.Email), raw, 0)
	pipe.Set(ctx, userIDKey(u.ID), raw, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
