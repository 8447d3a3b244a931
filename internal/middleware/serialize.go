package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v3"
)

// SerializePerUser creates middleware that processes one update at a
// time per user. Events from different users still run concurrently;
// two rapid taps from the same user cannot interleave their
// load-modify-save cycles or race on the session state.
func SerializePerUser() tele.MiddlewareFunc {
	var (
		mux   sync.Mutex
		locks = make(map[int64]*sync.Mutex)
	)

	userLock := func(userID int64) *sync.Mutex {
		mux.Lock()
		defer mux.Unlock()

		lock, exists := locks[userID]
		if !exists {
			lock = &sync.Mutex{}
			locks[userID] = lock
		}
		return lock
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			lock := userLock(sender.ID)
			lock.Lock()
			defer lock.Unlock()

			return next(c)
		}
	}
}
