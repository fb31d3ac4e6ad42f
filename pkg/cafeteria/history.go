package cafeteria

import (
	"slices"
	"sync"
	"time"
)

// OrderEventType says what happened to an order.
type OrderEventType string

const (
	OrderCooked OrderEventType = "cooking"
	OrderServed OrderEventType = "serving"
)

// OrderEvent is one entry of an OrderHistory.
type OrderEvent struct {
	Type    OrderEventType `json:"type"`
	Date    time.Time      `json:"date"`
	Details string         `json:"details"`
}

// OrderHistory records the cooking and serving of one dish.
type OrderHistory struct {
	mu     sync.Mutex
	events []OrderEvent
}

// RecordCooking appends a cooking event for the named dish.
func (h *OrderHistory) RecordCooking(name string) {
	h.record(OrderCooked, name+" cooked")
}

// RecordServing appends a serving event for the named dish.
func (h *OrderHistory) RecordServing(name string) {
	h.record(OrderServed, name+" served")
}

func (h *OrderHistory) record(t OrderEventType, details string) {
	h.mu.Lock()
	h.events = append(h.events, OrderEvent{Type: t, Date: time.Now(), Details: details})
	h.mu.Unlock()
}

// Events returns a copy of the recorded events, oldest first.
func (h *OrderHistory) Events() []OrderEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.events)
}

// orderBook keeps one OrderHistory per dish.
type orderBook struct {
	mu      sync.Mutex
	records map[Food]*OrderHistory
}

func (b *orderBook) history(f Food) *OrderHistory {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.records == nil {
		b.records = make(map[Food]*OrderHistory)
	}
	h, ok := b.records[f]
	if !ok {
		h = &OrderHistory{}
		b.records[f] = h
	}
	return h
}

// History returns the events recorded for f.
func (b *orderBook) History(f Food) []OrderEvent {
	return b.history(f).Events()
}
