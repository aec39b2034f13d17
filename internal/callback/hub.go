package callback

import "sync"

// Result is what a third-party login redirect delivers. Either field may
// be empty when the redirect was malformed; the consumer decides.
type Result struct {
	Token string
	Name  string
}

// Hub fans redirect results out to subscribers. Only the latest redirect
// matters for a sign-in: if a subscriber hasn't picked up a result yet,
// a new one replaces it rather than queueing behind it.
type Hub struct {
	mu      sync.Mutex
	clients map[chan Result]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan Result]struct{})}
}

func (h *Hub) Subscribe() chan Result {
	ch := make(chan Result, 1)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan Result) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(res Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- res:
		default:
			// evict the stale result, then deliver
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- res:
			default:
			}
		}
	}
}
