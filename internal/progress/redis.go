package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	fieldData      = "data"
	fieldStep      = "step"
	fieldSessionID = "session_id"
	fieldEmail     = "email"
	fieldSavedAt   = "saved_at"
)

// RedisStore keeps one hash per user so multi-device resume can share
// progress across service instances. All fields are written and cleared
// together, mirroring the single-row sqlite backend.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "sondera"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (store *RedisStore) key(userID uint) string {
	return fmt.Sprintf("%s:onboarding:%d", store.prefix, userID)
}

func (store *RedisStore) Save(ctx context.Context, userID uint, snapshot Snapshot) error {
	encoded, err := json.Marshal(snapshot.Data)
	if err != nil {
		return fmt.Errorf("encode snapshot data: %w", err)
	}

	fields := map[string]any{
		fieldData:      string(encoded),
		fieldStep:      snapshot.Step,
		fieldSessionID: snapshot.SessionID,
		fieldEmail:     snapshot.Email,
		fieldSavedAt:   snapshot.SavedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := store.client.HSet(ctx, store.key(userID), fields).Err(); err != nil {
		return fmt.Errorf("write snapshot hash: %w", err)
	}
	return nil
}

func (store *RedisStore) Load(ctx context.Context, userID uint) (Snapshot, error) {
	values, err := store.client.HGetAll(ctx, store.key(userID)).Result()
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot hash: %w", err)
	}
	if len(values) == 0 {
		return Snapshot{}, ErrNoSnapshot
	}

	snapshot := Snapshot{
		SessionID: values[fieldSessionID],
		Email:     values[fieldEmail],
	}
	step, err := strconv.Atoi(values[fieldStep])
	if err != nil {
		return Snapshot{}, ErrCorruptSnapshot
	}
	snapshot.Step = step
	if err := json.Unmarshal([]byte(values[fieldData]), &snapshot.Data); err != nil {
		return Snapshot{}, ErrCorruptSnapshot
	}
	if raw := values[fieldSavedAt]; raw != "" {
		if savedAt, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			snapshot.SavedAt = savedAt
		}
	}
	return snapshot, nil
}

func (store *RedisStore) Clear(ctx context.Context, userID uint) error {
	if err := store.client.Del(ctx, store.key(userID)).Err(); err != nil {
		return fmt.Errorf("clear snapshot hash: %w", err)
	}
	return nil
}
