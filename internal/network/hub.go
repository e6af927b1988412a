package network

import (
	"sync"

	"github.com/kilian1103/gattaca-game/pkg/api"
)

// Broadcaster занимается только рассылкой событий симуляции зрителям
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID сессии -> Личный канал
	subscribers map[string]chan api.ServerEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerEvent),
	}
}

// Register создает личный канал для сессии зрителя
func (b *Broadcaster) Register(sessionID string) chan api.ServerEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerEvent, 100)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// Broadcast отправляет событие всем зрителям.
// Медленный зритель события теряет, но оркестратор не блокируется.
func (b *Broadcaster) Broadcast(ev api.ServerEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных зрителей.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
