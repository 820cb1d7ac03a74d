package memory

import (
	"time"

	"ai-research-be/pkg/research"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps snapshots of research sessions in process
// memory so status queries never touch the record store. Sessions expire
// an hour after their last update.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *research.Session) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId uuid.UUID) (*research.Session, bool) {
	if x, found := r.cache.Get(sessionId.String()); found {
		return x.(*research.Session), true
	}
	return nil, false
}

func (r *SessionRepository) All() []*research.Session {
	items := r.cache.Items()
	sessions := make([]*research.Session, 0, len(items))
	for _, item := range items {
		sessions = append(sessions, item.Object.(*research.Session))
	}
	return sessions
}

func (r *SessionRepository) Delete(sessionId uuid.UUID) {
	r.cache.Delete(sessionId.String())
}
