// File: utils/constants.go
package utils

import "time"

// PayloadCachePrefix is the prefix used for Redis daily-payload cache keys.
const PayloadCachePrefix = "panchang:payload:"

// PayloadCacheTTL is the time-to-live for cached daily payloads. Payloads are
// keyed by civil date, so a little over a day keeps yesterday around for
// windows that cross midnight.
const PayloadCacheTTL = 26 * time.Hour
