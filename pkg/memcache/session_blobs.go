// pkg/mem/session_blobs.go
package mem

import (
	"sync"
	"time"
)

// BlobStore is the process-external face of the session cache: opaque
// string-keyed blobs with a TTL. The planner never treats it as a source of
// truth; a miss just means the session starts empty.
type BlobStore interface {
	Set(key string, blob []byte, ttl time.Duration)

	// Get returns the blob for key if present and not expired.
	Get(key string) ([]byte, bool)

	Delete(key string)
}

type blobEntry struct {
	blob      []byte
	expiresAt time.Time
}

type SessionBlobs struct {
	mu   sync.RWMutex
	data map[string]blobEntry
	// optional: a background janitor could be added if you want
}

func NewSessionBlobs() *SessionBlobs {
	return &SessionBlobs{
		data: make(map[string]blobEntry),
	}
}

func (s *SessionBlobs) Set(key string, blob []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = blobEntry{
		blob:      blob,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *SessionBlobs) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.Delete(key) // cleanup expired
		return nil, false
	}
	return e.blob, true
}

func (s *SessionBlobs) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
