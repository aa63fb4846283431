package vault

import (
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewTransactionID returns a timestamp-based identifier that is strictly
// increasing within a session, so rapid successive calls never collide.
func NewTransactionID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
