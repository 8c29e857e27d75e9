package model

import (
	"os"
	"sync"
)

// KeyPool holds the fixed, ordered set of interchangeable credentials used
// to spread quota across the model service. The rotation cursor advances
// on every selection, success or not, and is guarded by a mutex so
// concurrent calls stay race-free. Load spreading is a heuristic only:
// two concurrent calls may still land on adjacent keys.
type KeyPool struct {
	mu     sync.Mutex
	keys   []string
	cursor int
}

func NewKeyPool(keys []string) *KeyPool {
	filtered := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			filtered = append(filtered, k)
		}
	}
	return &KeyPool{keys: filtered}
}

// KeyPoolFromEnv reads GEMINI_API_KEY plus the numbered spares, filtering
// out unset entries.
func KeyPoolFromEnv() *KeyPool {
	return NewKeyPool([]string{
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("GEMINI_API_KEY1"),
		os.Getenv("GEMINI_API_KEY2"),
		os.Getenv("GEMINI_API_KEY3"),
	})
}

func (p *KeyPool) Len() int {
	return len(p.keys)
}

// Next returns the key under the cursor and advances it unconditionally.
// The second return is false when the pool is empty.
func (p *KeyPool) Next() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) == 0 {
		return "", false
	}
	key := p.keys[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.keys)
	return key, true
}
