package grpc

import (
	"sync"

	pb "github.com/avolkov/walletkeeper/internal/proto"
)

const subscriberBuffer = 8

// hub fans auth state changes out to the user's active WatchAuthState
// streams. A slow stream drops events rather than blocking publishers.
type hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan *pb.AuthStateEvent
}

func newHub() *hub {
	return &hub{subs: map[string]map[int]chan *pb.AuthStateEvent{}}
}

func (h *hub) subscribe(userID string) (<-chan *pb.AuthStateEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan *pb.AuthStateEvent, subscriberBuffer)

	if h.subs[userID] == nil {
		h.subs[userID] = map[int]chan *pb.AuthStateEvent{}
	}
	h.subs[userID][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if chans, ok := h.subs[userID]; ok {
			delete(chans, id)
			if len(chans) == 0 {
				delete(h.subs, userID)
			}
		}
	}
	return ch, cancel
}

func (h *hub) publish(userID string, ev *pb.AuthStateEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[userID] {
		select {
		case ch <- ev:
		default:
		}
	}
}
