package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// CacheConfig defines settings for the public page cache middleware.
// When Enabled is false or no Redis client is configured, caching is
// disabled.  Only anonymous GET/HEAD requests are ever cached because signed
// in visitors see personalised chrome.  TTL defines the lifetime of cache
// entries, KeyStrategy which parts of the request form the key, Prefix the
// Redis namespace and MaxBodyBytes the largest page that is stored.
type CacheConfig struct {
	Enabled      bool
	Methods      map[string]bool
	TTL          time.Duration
	KeyStrategy  string
	Prefix       string
	MaxBodyBytes int
	// SkipCookies lists cookie names whose presence bypasses the cache.
	SkipCookies []string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.  Defaults
// are used when variables are not set.  All methods are upper-cased.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("PAGE_CACHE_ENABLED", "true") == "true",
		Methods:      parseMethods(getenv("PAGE_CACHE_METHODS", "GET,HEAD")),
		TTL:          parseDur(getenv("PAGE_CACHE_TTL", "5m")),
		KeyStrategy:  getenv("PAGE_CACHE_KEY_STRATEGY", "route_query"),
		Prefix:       getenv("PAGE_CACHE_PREFIX", "page"),
		MaxBodyBytes: atoi(getenv("PAGE_CACHE_MAX_BODY_BYTES", "524288")),
		SkipCookies:  []string{"access_token"},
	}
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}

// Helper functions reused from redis.go and config.go
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Minute
	}
	return d
}
