package registration

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	userIDSpace          = 100000 // 5-digit ids, zero-padded
	maxRandomAttempts    = 1000
	conversationIDLength = 12
	conversationAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Generator issues member and conversation identifiers. User ids are
// collision-checked against every id issued in this process; conversation
// ids are random with negligible collision odds and not tracked.
type Generator struct {
	mu   sync.Mutex
	used map[string]struct{}
	next int // deterministic fallback cursor
}

func NewGenerator() *Generator {
	return &Generator{used: make(map[string]struct{})}
}

// UserID draws a fresh 5-digit id. Random draws are bounded; when they
// exhaust, the generator walks a monotonic counter so a unique id is still
// found deterministically while free ids remain.
func (g *Generator) UserID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for range maxRandomAttempts {
		candidate := fmt.Sprintf("%05d", rand.IntN(userIDSpace))
		if _, taken := g.used[candidate]; !taken {
			g.used[candidate] = struct{}{}
			return candidate
		}
	}

	for range userIDSpace {
		candidate := fmt.Sprintf("%05d", g.next%userIDSpace)
		g.next++
		if _, taken := g.used[candidate]; !taken {
			g.used[candidate] = struct{}{}
			return candidate
		}
	}

	// Id space fully exhausted; hand back the cursor position.
	candidate := fmt.Sprintf("%05d", g.next%userIDSpace)
	g.next++
	return candidate
}

// ConversationID returns a random lowercase-alphanumeric id.
func (g *Generator) ConversationID() string {
	var b strings.Builder
	b.Grow(conversationIDLength)
	for range conversationIDLength {
		b.WriteByte(conversationAlphabet[rand.IntN(len(conversationAlphabet))])
	}
	return b.String()
}
