package session

import (
	"sync"
	"time"

	Config "crypto-sweep/config"
	"crypto-sweep/utility/logger"

	"github.com/robfig/cron/v3"
	uuid "github.com/satori/go.uuid"
)

// Store ... Owns every live sweep session. Sessions exist only in memory for
// the lifetime of the process; a janitor purges sessions idle past the
// configured timeout.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	janitor     *cron.Cron
}

// NewStore ... The janitor only runs when an idle timeout is configured.
func NewStore(config Config.Data) *Store {
	store := &Store{
		sessions:    map[string]*Session{},
		idleTimeout: config.SessionIdleTimeout * time.Second,
	}
	if store.idleTimeout > 0 {
		store.janitor = cron.New()
		store.janitor.AddFunc("@every 5m", func() {
			purged := store.PurgeIdle()
			if purged > 0 {
				logger.Info("Purged %d idle sweep sessions", purged)
			}
		})
		store.janitor.Start()
	}
	return store
}

// Connect ... Creates a fresh session for a connected wallet set
func (store *Store) Connect(wallets []string) *Session {
	newSession := newSession(uuid.NewV4().String(), wallets)

	store.mu.Lock()
	defer store.mu.Unlock()
	store.sessions[newSession.ID()] = newSession
	return newSession
}

// Get ...
func (store *Store) Get(id string) (*Session, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	existing, ok := store.sessions[id]
	return existing, ok
}

// Disconnect ... Drops the session on wallet disconnect
func (store *Store) Disconnect(id string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.sessions, id)
}

// Count ...
func (store *Store) Count() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.sessions)
}

// PurgeIdle ... Removes sessions untouched past the idle timeout and returns
// how many were dropped
func (store *Store) PurgeIdle() int {
	if store.idleTimeout <= 0 {
		return 0
	}
	cutoff := time.Now().Add(-store.idleTimeout)

	store.mu.Lock()
	defer store.mu.Unlock()
	purged := 0
	for id, existing := range store.sessions {
		if existing.LastTouched().Before(cutoff) {
			delete(store.sessions, id)
			purged++
		}
	}
	return purged
}

// Close ... Stops the janitor
func (store *Store) Close() {
	if store.janitor != nil {
		store.janitor.Stop()
	}
}
