package inquiry

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/FaizBuildsStuff/matera-media/internal/common/database"
	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
)

// DraftTTL bounds how long an abandoned form session survives.
const DraftTTL = 24 * time.Hour

// DraftStore persists in-progress form state between flow requests,
// keyed by the opaque session token handed to the client.
type DraftStore interface {
	Save(ctx context.Context, token string, form *Form) error
	Load(ctx context.Context, token string) (*Form, error)
	Delete(ctx context.Context, token string) error
}

// RedisDraftStore keeps drafts in redis with a TTL, refreshed on every
// save so active sessions never expire mid-form.
type RedisDraftStore struct {
	redis *database.RedisClient
	ttl   time.Duration
}

func NewRedisDraftStore(client *database.RedisClient) *RedisDraftStore {
	return &RedisDraftStore{redis: client, ttl: DraftTTL}
}

func draftKey(token string) string {
	return "inquiry:draft:" + token
}

func (s *RedisDraftStore) Save(ctx context.Context, token string, form *Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return apperrors.NewDraftStoreFailedError(err)
	}
	if err := s.redis.Set(ctx, draftKey(token), data, s.ttl); err != nil {
		return apperrors.NewDraftStoreFailedError(err)
	}
	return nil
}

func (s *RedisDraftStore) Load(ctx context.Context, token string) (*Form, error) {
	data, err := s.redis.Get(ctx, draftKey(token))
	if err == redis.Nil {
		return nil, apperrors.NewDraftNotFoundError(token)
	}
	if err != nil {
		return nil, apperrors.NewDraftStoreFailedError(err)
	}

	var form Form
	if err := json.Unmarshal([]byte(data), &form); err != nil {
		return nil, apperrors.NewDraftStoreFailedError(err)
	}
	return &form, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, token string) error {
	if err := s.redis.Del(ctx, draftKey(token)); err != nil {
		return apperrors.NewDraftStoreFailedError(err)
	}
	return nil
}

// MemoryDraftStore is the fallback when redis is not configured. Drafts
// expire lazily on load.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]memoryDraft
	ttl    time.Duration
}

type memoryDraft struct {
	form      Form
	expiresAt time.Time
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{
		drafts: make(map[string]memoryDraft),
		ttl:    DraftTTL,
	}
}

func (s *MemoryDraftStore) Save(_ context.Context, token string, form *Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[token] = memoryDraft{form: *form, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryDraftStore) Load(_ context.Context, token string) (*Form, error) {
	s.mu.RLock()
	entry, ok := s.drafts[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, apperrors.NewDraftNotFoundError(token)
	}
	form := entry.form
	return &form, nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, token)
	return nil
}
