package store

import "time"

func NewSessionStoreWithClock(ttl time.Duration, now func() time.Time) SessionStore {
	return newSessionStore(ttl, now)
}
