// Package memory provides the bounded conversation transcript.
//
// Information Hiding:
// - Eviction policy (strict FIFO) hidden behind Add
// - Callers get copies, never the backing slice
package memory

import "github.com/richinex/persona/llm"

// DefaultCapacity is the default transcript bound.
const DefaultCapacity = 10

// Memory is a capacity-bounded FIFO transcript of chat messages. The
// oldest messages are evicted first once the bound is reached. Not safe
// for concurrent use; each agent owns exactly one Memory.
type Memory struct {
	history  []llm.ChatMessage
	capacity int
}

// New creates a Memory with the given capacity. Non-positive capacities
// fall back to DefaultCapacity.
func New(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memory{capacity: capacity}
}

// Add appends a message, evicting the oldest entries once over capacity.
func (m *Memory) Add(msg llm.ChatMessage) {
	m.history = append(m.history, msg)
	if len(m.history) > m.capacity {
		m.history = m.history[len(m.history)-m.capacity:]
	}
}

// History returns a copy of the transcript, oldest first.
func (m *Memory) History() []llm.ChatMessage {
	out := make([]llm.ChatMessage, len(m.history))
	copy(out, m.history)
	return out
}

// Len returns the number of stored messages.
func (m *Memory) Len() int {
	return len(m.history)
}

// Capacity returns the transcript bound.
func (m *Memory) Capacity() int {
	return m.capacity
}
