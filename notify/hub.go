package notify

import (
	"sync"

	"github.com/cskr/pubsub"
	"github.com/dilshat/lead-store/service/dto"
)

const (
	NOTICES = "notices"
)

// Hub fans toast notices out to every consumer. Publishing blocks once a
// consumer falls more than the configured buffer behind.
type Hub interface {
	Notify(notice dto.Notice)
	// Consume runs handler for every notice until the hub is closed.
	Consume(handler func(dto.Notice))
	Close()
}

type hub struct {
	ps *pubsub.PubSub
	wg sync.WaitGroup
}

func NewHub(capacity int) Hub {
	return &hub{ps: pubsub.New(capacity)}
}

func (h *hub) Notify(notice dto.Notice) {
	h.ps.Pub(notice, NOTICES)
}

func (h *hub) Consume(handler func(dto.Notice)) {
	ch := h.ps.Sub(NOTICES)
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for val := range ch {
			if notice, ok := val.(dto.Notice); ok {
				handler(notice)
			}
		}
	}()
}

// Close shuts the hub down after already published notices are delivered,
// then waits for Consume handlers to finish.
func (h *hub) Close() {
	h.ps.Shutdown()
	h.wg.Wait()
}
