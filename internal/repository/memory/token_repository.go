package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// TokenRepository stores refresh tokens in process memory. Tokens expire on
// their own; a restart simply forces clients to log in again.
type TokenRepository struct {
	store *cache.Cache
	ttl   time.Duration
}

func NewTokenRepository(ttl time.Duration) *TokenRepository {
	return &TokenRepository{
		store: cache.New(ttl, time.Hour),
		ttl:   ttl,
	}
}

func (r *TokenRepository) Store(token string, userId uuid.UUID) {
	r.store.Set(token, userId, r.ttl)
}

func (r *TokenRepository) Get(token string) (uuid.UUID, bool) {
	v, found := r.store.Get(token)
	if !found {
		return uuid.Nil, false
	}
	userId, ok := v.(uuid.UUID)
	return userId, ok
}

func (r *TokenRepository) Delete(token string) {
	r.store.Delete(token)
}
