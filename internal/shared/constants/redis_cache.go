package constants

import "time"

// Redis cache configuration.
// This file centralizes cache keys and TTL values for the Stagely application.
// Pattern: stagely:{module}:{operation}:{identifier}:{params?}
//
// Availability counts are never cached: tickets_available must always reflect
// the latest committed reservations.

// ================== CACHE TTL DURATIONS ==================

const (
	// Static catalog data, changes rarely
	TTL_HALL   = 12 * time.Hour
	TTL_GENRES = 12 * time.Hour
	TTL_ACTORS = 12 * time.Hour

	// Semi-static catalog data
	TTL_PLAY       = 2 * time.Hour
	TTL_PLAYS_LIST = 1 * time.Hour
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "stagely"
)

const (
	CACHE_KEY_HALL       = CACHE_PREFIX + ":halls:detail:" // + :id
	CACHE_KEY_GENRES     = CACHE_PREFIX + ":genres:list"
	CACHE_KEY_ACTORS     = CACHE_PREFIX + ":actors:list"
	CACHE_KEY_PLAY       = CACHE_PREFIX + ":plays:detail:" // + :id
	CACHE_KEY_PLAYS_LIST = CACHE_PREFIX + ":plays:list"    // + :title:X:genres:Y:actors:Z
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_HALLS_ALL  = CACHE_PREFIX + ":halls:*"
	PATTERN_INVALIDATE_GENRES_ALL = CACHE_PREFIX + ":genres:*"
	PATTERN_INVALIDATE_ACTORS_ALL = CACHE_PREFIX + ":actors:*"
	PATTERN_INVALIDATE_PLAYS_ALL  = CACHE_PREFIX + ":plays:*"
)
