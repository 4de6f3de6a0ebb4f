package v1

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type download struct {
	filePath    string
	filename    string // attachment name shown to the operator
	contentType string
	expiresAt   time.Time
}

type downloadStore struct {
	mu    sync.Mutex
	items map[string]download
}

func newDownloadStore() *downloadStore {
	return &downloadStore{
		items: make(map[string]download),
	}
}

func (s *downloadStore) put(filePath, filename, contentType string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = uuid.NewString()
	s.items[token] = download{
		filePath:    filePath,
		filename:    filename,
		contentType: contentType,
		expiresAt:   time.Now().Add(ttl),
	}
	return token
}

func (s *downloadStore) get(token string) (download, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return download{}, false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return download{}, false
	}
	return v, true
}

func (s *downloadStore) delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *downloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}
