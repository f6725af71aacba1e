// Package cache provides process-lifetime memoization with single-flight
// deduplication.
//
// A Memo runs a fetch function at most once per key: concurrent callers for
// the same key share one in-flight call, and the outcome (value or error) is
// stored in a Store and returned to every later caller. Entries are never
// evicted or refreshed.
package cache
