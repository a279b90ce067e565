package research

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/grabgifts/seo-analyst/internal/models"
)

// SuggestionCache keeps provider responses in memory so repeated research
// runs over the same seeds do not hit the external APIs again.
type SuggestionCache struct {
	data    map[string]cachedSuggestions
	mu      sync.RWMutex
	ttl     time.Duration
	maxSize int
}

type cachedSuggestions struct {
	records   []models.KeywordRecord
	timestamp time.Time
}

func NewSuggestionCache(ttl time.Duration, maxSize int) *SuggestionCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxSize <= 0 {
		maxSize = 500
	}
	return &SuggestionCache{
		data:    make(map[string]cachedSuggestions),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get returns the cached records for a key, or nil when absent or expired.
func (c *SuggestionCache) Get(key string) []models.KeywordRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if cached, ok := c.data[key]; ok {
		if time.Since(cached.timestamp) < c.ttl {
			return cached.records
		}
	}
	return nil
}

// Set stores records under a key, evicting expired entries when full.
func (c *SuggestionCache) Set(key string, records []models.KeywordRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.data) >= c.maxSize {
		c.cleanup()
	}

	c.data[key] = cachedSuggestions{
		records:   records,
		timestamp: time.Now(),
	}
}

// Key derives a stable cache key from a provider name and its input terms.
func (c *SuggestionCache) Key(provider string, terms []string) string {
	hash := sha256.Sum256([]byte(provider + "|" + strings.Join(terms, "|")))
	return hex.EncodeToString(hash[:16])
}

func (c *SuggestionCache) cleanup() {
	now := time.Now()
	for key, cached := range c.data {
		if now.Sub(cached.timestamp) > c.ttl {
			delete(c.data, key)
		}
	}

	// Still full: drop the oldest entry.
	if len(c.data) >= c.maxSize {
		oldest := time.Now()
		oldestKey := ""
		for key, cached := range c.data {
			if cached.timestamp.Before(oldest) {
				oldest = cached.timestamp
				oldestKey = key
			}
		}
		if oldestKey != "" {
			delete(c.data, oldestKey)
		}
	}
}
