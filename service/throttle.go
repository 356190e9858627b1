package service

import (
	"math"
	"sync"
	"time"

	"github.com/dilshat/lead-store/dao"
	"github.com/dilshat/lead-store/log"
	"golang.org/x/time/rate"
)

// Throttle is a token bucket whose level survives process restarts, so
// separate one-shot runs share the same submission budget.
type Throttle struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	dao     dao.ThrottleDao
	now     func() time.Time
}

// NewThrottle restores the bucket from throttleDao. A limit of rate.Inf
// never throttles.
func NewThrottle(limit rate.Limit, burst int, throttleDao dao.ThrottleDao, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	limiter := rate.NewLimiter(limit, burst)

	if state, ok := throttleDao.Load(); ok {
		// a fresh limiter starts full; spend what was already spent at that moment
		spent := burst - int(math.Floor(state.Tokens))
		if spent > burst {
			spent = burst
		}
		if spent > 0 {
			limiter.AllowN(state.At, spent)
		}
	}

	return &Throttle{limiter: limiter, dao: throttleDao, now: now}
}

func (t *Throttle) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	allowed := t.limiter.AllowN(now, 1)
	log.WarnIfErr("Error saving intake throttle", t.dao.Save(dao.ThrottleState{
		Tokens: t.limiter.TokensAt(now),
		At:     now,
	}))
	return allowed
}
