package testutil

import (
	"sync"
	"time"

	"github.com/yungbote/quizhub-backend/internal/data/aggregates"
)

type HookEvent struct {
	Op     string
	Status string
	Took   time.Duration
}

// HookLog records what aggregate writes report to their hooks.
type HookLog struct {
	mu        sync.Mutex
	events    []HookEvent
	conflicts map[string]int
	retries   map[string]int
}

var _ aggregates.Hooks = (*HookLog)(nil)

func (h *HookLog) Observe(op, status string, took time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, HookEvent{Op: op, Status: status, Took: took})
}

func (h *HookLog) Conflict(op string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conflicts == nil {
		h.conflicts = map[string]int{}
	}
	h.conflicts[op]++
}

func (h *HookLog) Retry(op string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.retries == nil {
		h.retries = map[string]int{}
	}
	h.retries[op]++
}

func (h *HookLog) Events() []HookEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]HookEvent(nil), h.events...)
}

// Statuses lists the statuses reported for op, oldest first.
func (h *HookLog) Statuses(op string) []string {
	var out []string
	for _, ev := range h.Events() {
		if ev.Op == op {
			out = append(out, ev.Status)
		}
	}
	return out
}

func (h *HookLog) Conflicts(op string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.conflicts[op]
}

func (h *HookLog) Retries(op string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.retries[op]
}
