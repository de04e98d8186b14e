package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
)

const (
	sessionKeyPrefix = "geoprofit:compare:" // geoprofit:compare:{session_id}
	sessionTTL       = 24 * time.Hour
)

// SessionRepository stores comparison sessions in Redis. A session is only
// the project selection; metric bundles are recomputed per request and
// never persisted.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create stores a new session for the given selection.
func (r *SessionRepository) Create(ctx context.Context, projectIDs []int) (*domain.Session, error) {
	session := &domain.Session{
		ID:         uuid.New().String(),
		ProjectIDs: projectIDs,
		CreatedAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// Get loads a session by id.
func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting an unknown id reports
// domain.ErrSessionNotFound.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
