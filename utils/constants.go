// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis booking-session keys.
const SessionCachePrefix = "bookingSession:"

// SessionCacheTTL is the time-to-live for a booking hold. A hold that is
// not confirmed within this window is released.
const SessionCacheTTL = 10 * time.Minute

// DayCachePrefix is the prefix used for cached day-availability answers.
const DayCachePrefix = "daySlots:"

// DayCacheTTL keeps cached availability short-lived; confirmation never
// trusts it.
const DayCacheTTL = 30 * time.Second
