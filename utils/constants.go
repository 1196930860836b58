package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// DashboardCachePrefix is the prefix for cached dashboard aggregates.
const DashboardCachePrefix = "dashboard:"

// DashboardCacheTTL keeps dashboard aggregates fresh enough for a reception desk.
const DashboardCacheTTL = time.Minute
