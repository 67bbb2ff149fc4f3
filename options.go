package conserve

import (
	"time"

	recommenduc "github.com/LanceGerbec/ConServe-Repository-sub000/internal/usecase/recommend"
	searchuc "github.com/LanceGerbec/ConServe-Repository-sub000/internal/usecase/search"
)

// clientConfig collects Client construction parameters.
type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	defaultLimit      int
	maxLimit          int
	fetchLimit        int
	keyTermCount      int
	viewHistoryWindow int
	topKeywordCount   int

	readinessTimeout time.Duration
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		defaultLimit:      searchuc.DefaultLimit,
		maxLimit:          searchuc.DefaultMaxLimit,
		fetchLimit:        searchuc.DefaultFetchLimit,
		keyTermCount:      searchuc.DefaultKeyTermCount,
		viewHistoryWindow: recommenduc.DefaultViewHistoryWindow,
		topKeywordCount:   recommenduc.DefaultTopKeywordCount,
		readinessTimeout:  10 * time.Second,
	}
}

// Option configures a Client.
type Option func(*clientConfig)

// WithRedis sets the Redis addresses.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithCredentials sets the database username and password.
func WithCredentials(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the Redis logical database.
func WithDB(db int) Option {
	return func(c *clientConfig) { c.db = db }
}

// WithSearchLimits overrides the default and maximum result limits.
func WithSearchLimits(defaultLimit, maxLimit int) Option {
	return func(c *clientConfig) {
		c.defaultLimit = defaultLimit
		c.maxLimit = maxLimit
	}
}

// WithCandidateFetchLimit bounds the candidate pool fetched before ranking.
func WithCandidateFetchLimit(n int) Option {
	return func(c *clientConfig) { c.fetchLimit = n }
}

// WithKeyTermCount sets how many key terms seed a "find similar" filter.
func WithKeyTermCount(n int) Option {
	return func(c *clientConfig) { c.keyTermCount = n }
}

// WithViewHistoryWindow sets how many recent view events feed an interest
// profile.
func WithViewHistoryWindow(n int) Option {
	return func(c *clientConfig) { c.viewHistoryWindow = n }
}

// WithTopKeywordCount sets how many keywords an interest profile keeps.
func WithTopKeywordCount(n int) Option {
	return func(c *clientConfig) { c.topKeywordCount = n }
}

// WithReadinessTimeout bounds the initial wait for the database.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.readinessTimeout = d }
}
