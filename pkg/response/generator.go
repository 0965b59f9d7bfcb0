package response

import (
	"math/rand"

	"grams-mcp-be/internal/persona"
	"grams-mcp-be/pkg/intent"
)

// fallbackLine is returned when a personality has no table at all for the
// resolved key or the general fallback.
const fallbackLine = "Tell me more, dear."

// usedSetLimit bounds repeat-avoidance memory. Once exceeded, the set is
// reset wholesale rather than evicted per entry.
const usedSetLimit = 50

// Generator selects template replies for a single personality, biasing away
// from immediate repeats. It is rebuilt whenever the session's personality
// changes, which also forgets the repeat memory. Not safe for concurrent use;
// the chat service serializes draws.
type Generator struct {
	personality persona.Personality
	table       map[string][]string
	rng         *rand.Rand
	used        map[string]struct{}
}

// NewGenerator creates a generator for one personality. The randomness source
// is injected so tests can assert exact selection sequences.
func NewGenerator(p persona.Personality, rng *rand.Rand) *Generator {
	return &Generator{
		personality: p,
		table:       templates[p.ID],
		rng:         rng,
		used:        make(map[string]struct{}),
	}
}

// Personality returns the personality this generator speaks as.
func (g *Generator) Personality() persona.Personality {
	return g.personality
}

// Generate classifies the message and selects a reply. Convenience wrapper
// around Classify + Select.
func (g *Generator) Generate(userMessage string) string {
	return g.Select(intent.Classify(userMessage))
}

// Select picks one line from the pool for the given intent. The composed key
// falls back to the general pool, then to a hardcoded neutral line. Never
// returns an empty string.
func (g *Generator) Select(it intent.Intent) string {
	options := g.table[it.PoolKey()]
	if len(options) == 0 {
		options = g.table["general"]
	}
	if len(options) == 0 {
		return fallbackLine
	}

	// Prefer lines not seen recently; once every candidate has been used the
	// whole pool is eligible again.
	unused := make([]string, 0, len(options))
	for _, opt := range options {
		if _, seen := g.used[opt]; !seen {
			unused = append(unused, opt)
		}
	}
	pool := options
	if len(unused) > 0 {
		pool = unused
	}

	selected := pool[g.rng.Intn(len(pool))]

	g.used[selected] = struct{}{}
	if len(g.used) > usedSetLimit {
		g.used = make(map[string]struct{})
	}

	return selected
}

// UsedCount reports the current repeat-avoidance set size.
func (g *Generator) UsedCount() int {
	return len(g.used)
}
